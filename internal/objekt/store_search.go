// Copyright (c) 2026 Apollo. All rights reserved.

package objekt

import (
	"context"
	"fmt"

	"github.com/taibuivan/apollo/internal/platform/database/schema"
	"github.com/taibuivan/apollo/internal/platform/postgres"
)

// # Full-Text Strategy

// SearchSource answers free-text queries from the tsvector index, which may
// live on a dedicated search replica.
//
// It applies every active filter plus a prefix match on every search token.
// In ownership scope the statement joins the objekt table, so transferable
// and gridable narrow the result exactly as they do for the relational store.
type SearchSource struct {
	db postgres.DB
}

// NewSearchSource constructs the search strategy over the given pool.
func NewSearchSource(db postgres.DB) *SearchSource {
	return &SearchSource{db: db}
}

// Execute implements [Source].
func (source *SearchSource) Execute(context context.Context, query Query, pageSize int) (*Page, error) {

	// Punctuation-only text cannot match any indexed token
	tsQuery := prefixQuery(query.Filters.SearchText)
	if tsQuery == "" {
		return emptyPage(), nil
	}

	predicates := lower(query)
	predicates.add(fmt.Sprintf("c.%s @@ to_tsquery('simple', $%%d)", schema.Collection.SearchVector), tsQuery)

	return fetchPage(context, source.db, searchSourceName, query, pageSize, predicates)
}
