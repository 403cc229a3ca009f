// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package objekt provides the PostgreSQL strategies behind the query service.

Both strategies share one statement shape:
  - Window Function: COUNT(*) OVER() reports the filtered total in the same round trip.
  - Set Operations: categorical filters bind arrays through ANY($n).
  - Offset Paging: LIMIT/OFFSET over an ORDER BY that always ends on a unique key.
*/
package objekt

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/apollo/internal/platform/database/schema"
	"github.com/taibuivan/apollo/internal/platform/dberr"
	"github.com/taibuivan/apollo/internal/platform/postgres"
	"github.com/taibuivan/apollo/pkg/pagination"
	"github.com/taibuivan/apollo/pkg/slice"
)

// Source names reported in SOURCE_UNAVAILABLE errors.
const (
	relationalSourceName = "Relational store"
	searchSourceName     = "Search index"
)

// # Relational Strategy

// RelationalSource answers queries without free text from the primary database.
type RelationalSource struct {
	db postgres.DB
}

// NewRelationalSource constructs the relational strategy.
func NewRelationalSource(db postgres.DB) *RelationalSource {
	return &RelationalSource{db: db}
}

// Execute implements [Source].
func (source *RelationalSource) Execute(context context.Context, query Query, pageSize int) (*Page, error) {
	predicates := lower(query)
	return fetchPage(context, source.db, relationalSourceName, query, pageSize, predicates)
}

// # Statement Assembly

// selectClause returns the SELECT ... FROM part for a scope.
func selectClause(scope Scope) string {
	columns := slice.Map(schema.Collection.Columns(), func(column string) string { return "c." + column })

	if scope != ScopeOwnership {
		return fmt.Sprintf("SELECT %s, COUNT(*) OVER() AS total_count FROM %s c",
			strings.Join(columns, ", "), schema.Collection.Table)
	}

	columns = append(columns, slice.Map(schema.Objekt.Columns(), func(column string) string { return "o." + column })...)
	return fmt.Sprintf("SELECT %s, COUNT(*) OVER() AS total_count FROM %s o JOIN %s c ON c.%s = o.%s",
		strings.Join(columns, ", "),
		schema.Objekt.Table,
		schema.Collection.Table,
		schema.Collection.ID, schema.Objekt.CollectionID,
	)
}

/*
fetchPage runs one page statement and scans it.

Parameters:
  - context: context.Context
  - db: postgres.DB
  - name: string (Source name for error reporting)
  - query: Query
  - pageSize: int
  - predicates: *predicates (Already lowered for the source)

Returns:
  - *Page: Hydrated items with cursor metadata
  - error: apperr.SourceUnavailable on any database failure
*/
func fetchPage(context context.Context, db postgres.DB, name string, query Query, pageSize int, predicates *predicates) (*Page, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectClause(query.Scope))
	queryBuilder.WriteString(predicates.where())
	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(orderBy(query.Scope, query.Sort))
	queryBuilder.WriteString(predicates.page(query.Cursor, pageSize))

	rows, err := db.Query(context, queryBuilder.String(), predicates.args...)
	if err != nil {
		return nil, dberr.Unavailable(err, name)
	}
	defer rows.Close()

	items := make([]Item, 0, pageSize)
	total := 0
	for rows.Next() {
		item, err := scanItem(rows, query.Scope, &total)
		if err != nil {
			return nil, dberr.Unavailable(err, name)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Unavailable(err, name)
	}

	return &Page{
		Meta:  pagination.NewMeta(query.Cursor, pageSize, len(items), total),
		Items: items,
	}, nil
}

// scanItem scans one row in [selectClause] column order.
func scanItem(rows pgx.Rows, scope Scope, total *int) (Item, error) {
	var item Item
	targets := CollectionTargets(&item.Collection)

	if scope == ScopeOwnership {
		item.Objekt = &Objekt{}
		targets = append(targets, ObjektTargets(item.Objekt)...)
	}

	targets = append(targets, total)

	if err := rows.Scan(targets...); err != nil {
		return Item{}, err
	}
	return item, nil
}

// CollectionTargets returns scan destinations in [schema.CollectionTable.Columns] order.
func CollectionTargets(collection *Collection) []any {
	return []any{
		&collection.ID, &collection.Slug, &collection.Artist, &collection.Season,
		&collection.Member, &collection.Class, &collection.OnlineType, &collection.CollectionNo,
		&collection.FrontImage, &collection.BackImage, &collection.BackgroundColor,
		&collection.TextColor, &collection.CreatedAt,
	}
}

// ObjektTargets returns scan destinations in [schema.ObjektTable.Columns] order.
func ObjektTargets(objekt *Objekt) []any {
	return []any{
		&objekt.ID, &objekt.CollectionID, &objekt.Owner, &objekt.Serial,
		&objekt.Transferable, &objekt.UsedForGrid, &objekt.MintedAt, &objekt.ReceivedAt,
	}
}
