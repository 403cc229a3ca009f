// Copyright (c) 2026 Apollo. All rights reserved.

package objekt

import (
	"context"
	"log/slog"

	"github.com/taibuivan/apollo/internal/platform/apperr"
	"github.com/taibuivan/apollo/internal/platform/validate"
	"github.com/taibuivan/apollo/pkg/pagination"
)

// # Service Layer

// Service resolves a query against exactly one [Source].
//
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	relational Source
	search     Source
	lists      MembershipResolver
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its strategies and list resolver.
func NewService(relational, search Source, lists MembershipResolver, logger *slog.Logger) *Service {
	return &Service{
		relational: relational,
		search:     search,
		lists:      lists,
		logger:     logger,
	}
}

/*
Query returns one page of objekts or collections.

Description: The request context supplies the artist selection when the
query names no artist. A list id is resolved to its members before any
source runs; an empty list short-circuits to an empty page. The remaining
query is routed to the search strategy when free text is present and to
the relational strategy otherwise.

Parameters:
  - context: context.Context
  - request: RequestContext (Session and artist selection)
  - query: Query

Returns:
  - *Page: The requested page
  - error: INVALID_FILTER, NOT_FOUND (list) or SOURCE_UNAVAILABLE
*/
func (service *Service) Query(context context.Context, request RequestContext, query Query) (*Page, error) {
	if err := service.check(query); err != nil {
		return nil, err
	}

	// 1. Ambient artist selection
	if len(query.Filters.Artists) == 0 && len(request.Artists) > 0 {
		query.Filters.Artists = request.Artists
	}

	// 2. List membership is a precondition, not a soft filter
	if query.Filters.ListID != "" {
		members, err := service.lists.Members(context, query.Filters.ListID, request.Session)
		if err != nil {
			return nil, err
		}
		if len(members) == 0 {
			return emptyPage(), nil
		}
		query.Members = members
	}

	// 3. One strategy per query
	source, name := service.selectSource(query)
	page, err := source.Execute(context, query, query.Scope.PageSize())
	if err != nil {
		service.logger.WarnContext(context, "objekt_query_failed",
			slog.String("source", name),
			slog.String("scope", query.Scope.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return page, nil
}

// selectSource picks the strategy for a query.
func (service *Service) selectSource(query Query) (Source, string) {
	if query.Filters.SearchText != "" {
		return service.search, "search"
	}
	return service.relational, "relational"
}

// check validates the parts of a query that depend on its scope.
func (service *Service) check(query Query) error {
	if !query.Sort.AllowedIn(query.Scope) {
		return apperr.InvalidFilter("Invalid filter value", apperr.FieldError{
			Field:   ParamSort,
			Message: "Serial sorting is only available for an address",
		})
	}

	if query.Cursor < 0 || query.Cursor > pagination.MaxPage {
		return apperr.InvalidFilter("Invalid filter value", apperr.FieldError{
			Field:   ParamPage,
			Message: "Must be an integer between 0 and 100000",
		})
	}

	if query.Scope == ScopeList && query.Filters.ListID == "" {
		return validate.RequiredError(ParamList, "This field is required")
	}

	if query.Scope == ScopeOwnership {
		return (&validate.Validator{}).Address("address", query.Address).Err()
	}

	return nil
}
