// Copyright (c) 2026 Apollo. All rights reserved.

package list

import "context"

// # List Data Access

// Repository defines the data access contract for objekt lists.
type Repository interface {

	/*
		FindByID returns the list with the given ID, including its entry count.

		Returns:
		  - *List: The list
		  - error: dberr.ErrNotFound if missing
	*/
	FindByID(context context.Context, id string) (*List, error)

	/*
		ListByUser returns a user's lists, newest first.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - includePrivate: bool (Only true for the owner)
	*/
	ListByUser(context context.Context, userID string, includePrivate bool) ([]*List, error)

	// Create persists a new list. A duplicate slug for the same user is a conflict.
	Create(context context.Context, list *List) error

	// Update persists the mutable fields (name, slug, visibility).
	Update(context context.Context, list *List) error

	// Delete removes a list and, by cascade, its entries.
	Delete(context context.Context, id string) error

	// AddEntry saves a collection into a list.
	AddEntry(context context.Context, listID, collectionID string) (*Entry, error)

	// RemoveEntry removes a collection from a list.
	RemoveEntry(context context.Context, listID, collectionID string) error

	// CollectionIDs returns the collection ids saved in a list in insertion order.
	CollectionIDs(context context.Context, listID string) ([]string, error)
}
