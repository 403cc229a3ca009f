// Copyright (c) 2026 Apollo. All rights reserved.

package collection

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"

	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/internal/platform/redis"
	"github.com/taibuivan/apollo/internal/platform/validate"
)

// filterDataKey is the cache key for the full filter metadata document.
const filterDataKey = "all"

// # Service Layer

// Service reads catalog details and filter metadata.
type Service struct {
	repo   Repository
	cache  Cache
	logger *slog.Logger
}

// NewService constructs a new [Service]. The cache may be nil.
func NewService(repo Repository, cache Cache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Get returns a collection by slug.
func (service *Service) Get(context context.Context, slug string) (*objekt.Collection, error) {
	if err := (&validate.Validator{}).Slug("slug", slug).Err(); err != nil {
		return nil, err
	}
	return service.repo.FindBySlug(context, slug)
}

/*
Objekt returns one serialised objekt of a collection.

Parameters:
  - context: context.Context
  - slug: string
  - rawSerial: string (Path segment, must be a positive integer)

Returns:
  - *objekt.Item: The collection with its objekt attached
  - error: VALIDATION_ERROR or NOT_FOUND
*/
func (service *Service) Objekt(context context.Context, slug, rawSerial string) (*objekt.Item, error) {
	serial, err := strconv.Atoi(rawSerial)
	if err != nil {
		return nil, validate.RequiredError("serial", "Must be a positive integer")
	}

	validator := &validate.Validator{}
	validator.
		Slug("slug", slug).
		Range("serial", serial, 1, math.MaxInt32)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.repo.FindBySerial(context, slug, serial)
}

/*
Filters returns the filter metadata for every artist.

Description: Reads through the cache. Cache failures are logged and fall
back to the database; they never fail the request.
*/
func (service *Service) Filters(context context.Context) (*FilterData, error) {
	if service.cache != nil {
		var cached FilterData
		err := service.cache.GetJSON(context, filterDataKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, redis.ErrCacheMiss) {
			service.logger.WarnContext(context, "filter_cache_read_failed", slog.Any("error", err))
		}
	}

	rows, err := service.repo.FilterRows(context)
	if err != nil {
		return nil, err
	}
	data := buildFilterData(rows)

	if service.cache != nil {
		if err := service.cache.SetJSON(context, filterDataKey, data); err != nil {
			service.logger.WarnContext(context, "filter_cache_write_failed", slog.Any("error", err))
		}
	}
	return data, nil
}
