// Copyright (c) 2026 Apollo. All rights reserved.

package collection

import (
	"context"

	"github.com/taibuivan/apollo/internal/objekt"
)

// # Catalog Data Access

// Repository defines read access to the mirrored catalog.
type Repository interface {

	// FindBySlug returns a collection by its unique slug.
	FindBySlug(context context.Context, slug string) (*objekt.Collection, error)

	/*
		FindBySerial returns one serialised objekt of a collection.

		Parameters:
		  - context: context.Context
		  - slug: string (Collection slug)
		  - serial: int

		Returns:
		  - *objekt.Item: The collection with its objekt attached
		  - error: dberr.ErrNotFound if either is missing
	*/
	FindBySerial(context context.Context, slug string, serial int) (*objekt.Item, error)

	// FilterRows returns the distinct categorical combinations in release order.
	FilterRows(context context.Context) ([]FilterRow, error)
}

// Cache is the read-through store for filter metadata.
type Cache interface {
	GetJSON(context context.Context, key string, target any) error
	SetJSON(context context.Context, key string, value any) error
}
