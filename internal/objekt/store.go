// Copyright (c) 2026 Apollo. All rights reserved.

package objekt

import (
	"context"

	"github.com/taibuivan/apollo/internal/platform/sec"
)

// # Query Strategies

// Source executes a query against one backing store.
type Source interface {
	/*
		Execute fetches one page of the query.

		Parameters:
		  - context: context.Context
		  - query: Query (Scope, filters, sort, cursor and resolved members)
		  - pageSize: int (Fixed by the scope)

		Returns:
		  - *Page: Items in sort order with cursor metadata
		  - error: apperr.SourceUnavailable when the store fails
	*/
	Execute(context context.Context, query Query, pageSize int) (*Page, error)
}

// MembershipResolver resolves an objekt list to its collection ids.
type MembershipResolver interface {
	/*
		Members returns the collection ids saved in a list.

		Parameters:
		  - context: context.Context
		  - listID: string (UUID)
		  - session: *sec.AuthClaims (nil when anonymous)

		Returns:
		  - []string: Collection ids, empty when the list has no entries
		  - error: apperr.NotFound for missing lists and private lists of other users
	*/
	Members(context context.Context, listID string, session *sec.AuthClaims) ([]string, error)
}
