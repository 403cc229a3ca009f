// Copyright (c) 2026 Apollo. All rights reserved.

package objekt

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/taibuivan/apollo/internal/platform/database/schema"
	"github.com/taibuivan/apollo/pkg/pagination"
	"github.com/taibuivan/apollo/pkg/slice"
)

// predicates accumulates conjoined WHERE clauses and their positional arguments.
type predicates struct {
	clauses []string
	args    []any
}

// add appends a clause whose single %d verb is replaced by the next argument
// position.
func (p *predicates) add(format string, value any) {
	p.args = append(p.args, value)
	p.clauses = append(p.clauses, fmt.Sprintf(format, len(p.args)))
}

// where renders the conjunction, or nothing when no predicate is active.
func (p *predicates) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// page appends LIMIT/OFFSET arguments and returns their clause.
func (p *predicates) page(cursor, pageSize int) string {
	p.args = append(p.args, pageSize, pagination.Offset(cursor, pageSize))
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(p.args)-1, len(p.args))
}

/*
lower translates a query into conjoined predicates.

Description: Each non-empty filter contributes exactly one predicate. List
membership is applied as a collection id set. Ownership scope always binds
the owning address first; transferable and gridable only exist on the
objekt join and are ignored in the other scopes.
*/
func lower(query Query) *predicates {
	p := &predicates{}
	collection := schema.Collection
	objekt := schema.Objekt
	filters := query.Filters

	if query.Scope == ScopeOwnership {
		p.add(fmt.Sprintf("o.%s = $%%d", objekt.Owner), strings.ToLower(query.Address))
	}

	if query.Members != nil {
		p.add(fmt.Sprintf("c.%s = ANY($%%d)", collection.ID), query.Members)
	}

	if len(filters.Artists) > 0 {
		p.add(fmt.Sprintf("c.%s = ANY($%%d)", collection.Artist), slice.Map(filters.Artists, func(a Artist) string { return string(a) }))
	}

	if len(filters.Seasons) > 0 {
		p.add(fmt.Sprintf("c.%s = ANY($%%d)", collection.Season), slice.Map(filters.Seasons, func(s Season) string { return string(s) }))
	}

	if len(filters.Classes) > 0 {
		p.add(fmt.Sprintf("c.%s = ANY($%%d)", collection.Class), slice.Map(filters.Classes, func(c Class) string { return string(c) }))
	}

	if filters.Member != "" {
		p.add(fmt.Sprintf("c.%s = $%%d", collection.Member), filters.Member)
	}

	if len(filters.OnlineTypes) > 0 {
		p.add(fmt.Sprintf("c.%s = ANY($%%d)", collection.OnlineType), slice.Map(filters.OnlineTypes, func(t OnlineType) string { return string(t) }))
	}

	if len(filters.CollectionNos) > 0 {
		p.add(fmt.Sprintf("c.%s = ANY($%%d)", collection.CollectionNo), slice.Map(filters.CollectionNos, func(n CollectionNo) string { return string(n) }))
	}

	// Ownership attributes only exist on the objekt join
	if query.Scope == ScopeOwnership {
		if filters.Transferable != nil {
			p.add(fmt.Sprintf("o.%s = $%%d", objekt.Transferable), *filters.Transferable)
		}
		if filters.Gridable != nil {
			p.add(fmt.Sprintf("o.%s = $%%d", objekt.UsedForGrid), !*filters.Gridable)
		}
	}

	return p
}

// prefixQuery turns free text into a to_tsquery expression where every
// token must match as a prefix. It returns "" when no token survives.
func prefixQuery(text string) string {
	tokens := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(tokens) == 0 {
		return ""
	}

	terms := slice.Map(slice.Unique(tokens), func(token string) string { return token + ":*" })
	return strings.Join(terms, " & ")
}
