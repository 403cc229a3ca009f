// Copyright (c) 2026 Apollo. All rights reserved.

package collection

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/internal/platform/database/schema"
	"github.com/taibuivan/apollo/internal/platform/dberr"
	"github.com/taibuivan/apollo/internal/platform/postgres"
	"github.com/taibuivan/apollo/pkg/slice"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed catalog reader.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func prefixed(alias string, columns []string) string {
	return strings.Join(slice.Map(columns, func(column string) string { return alias + "." + column }), ", ")
}

// FindBySlug implements [Repository].
func (repository *PostgresRepository) FindBySlug(context context.Context, slug string) (*objekt.Collection, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1`,
		prefixed("c", schema.Collection.Columns()), schema.Collection.Table, schema.Collection.Slug)

	collection := &objekt.Collection{}
	if err := repository.db.QueryRow(context, query, slug).Scan(objekt.CollectionTargets(collection)...); err != nil {
		return nil, dberr.Wrap(err, "find_collection")
	}
	return collection, nil
}

// FindBySerial implements [Repository].
func (repository *PostgresRepository) FindBySerial(context context.Context, slug string, serial int) (*objekt.Item, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s o JOIN %s c ON c.%s = o.%s
		WHERE c.%s = $1 AND o.%s = $2`,
		prefixed("c", schema.Collection.Columns()), prefixed("o", schema.Objekt.Columns()),
		schema.Objekt.Table, schema.Collection.Table, schema.Collection.ID, schema.Objekt.CollectionID,
		schema.Collection.Slug, schema.Objekt.Serial,
	)

	item := &objekt.Item{Objekt: &objekt.Objekt{}}
	targets := append(objekt.CollectionTargets(&item.Collection), objekt.ObjektTargets(item.Objekt)...)

	if err := repository.db.QueryRow(context, query, slug, serial).Scan(targets...); err != nil {
		return nil, dberr.Wrap(err, "find_objekt_by_serial")
	}
	return item, nil
}

// FilterRows implements [Repository].
func (repository *PostgresRepository) FilterRows(context context.Context) ([]FilterRow, error) {
	c := schema.Collection
	query := fmt.Sprintf(`
		SELECT %[1]s, %[2]s, %[3]s, %[4]s, %[5]s
		FROM %[6]s
		GROUP BY %[1]s, %[2]s, %[3]s, %[4]s, %[5]s
		ORDER BY MIN(%[7]s) ASC`,
		c.Artist, c.Season, c.Class, c.Member, c.CollectionNo, c.Table, c.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_filter_rows")
	}
	defer rows.Close()

	result := make([]FilterRow, 0)
	for rows.Next() {
		var row FilterRow
		if err := rows.Scan(&row.Artist, &row.Season, &row.Class, &row.Member, &row.CollectionNo); err != nil {
			return nil, dberr.Wrap(err, "scan_filter_row")
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_filter_rows")
	}
	return result, nil
}
