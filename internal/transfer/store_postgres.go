// Copyright (c) 2026 Apollo. All rights reserved.

package transfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/internal/platform/database/schema"
	"github.com/taibuivan/apollo/internal/platform/dberr"
	"github.com/taibuivan/apollo/internal/platform/postgres"
	"github.com/taibuivan/apollo/pkg/pagination"
	"github.com/taibuivan/apollo/pkg/slice"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed transfer reader.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListByAddress implements [Repository].
func (repository *PostgresRepository) ListByAddress(context context.Context, address string, page, size int) ([]Transfer, int, error) {
	t, o, c := schema.Transfer, schema.Objekt, schema.Collection
	collectionColumns := slice.Map(c.Columns(), func(column string) string { return "c." + column })

	query := fmt.Sprintf(`
		SELECT t.%s, t.%s, t.%s, t.%s, t.%s, t.%s, o.%s, %s, COUNT(*) OVER() AS total_count
		FROM %s t
		JOIN %s o ON o.%s = t.%s
		JOIN %s c ON c.%s = o.%s
		WHERE t.%s = $1 OR t.%s = $1
		ORDER BY t.%s DESC, t.%s DESC
		LIMIT $2 OFFSET $3`,
		t.ID, t.ObjektID, t.From, t.To, t.Hash, t.Timestamp, o.Serial, strings.Join(collectionColumns, ", "),
		t.Table,
		o.Table, o.ID, t.ObjektID,
		c.Table, c.ID, o.CollectionID,
		t.From, t.To,
		t.Timestamp, t.ID,
	)

	rows, err := repository.db.Query(context, query, address, size, pagination.Offset(page, size))
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_transfers")
	}
	defer rows.Close()

	transfers := make([]Transfer, 0, size)
	total := 0
	for rows.Next() {
		var transfer Transfer
		targets := []any{
			&transfer.ID, &transfer.ObjektID, &transfer.From, &transfer.To,
			&transfer.Hash, &transfer.Timestamp, &transfer.Serial,
		}
		targets = append(targets, objekt.CollectionTargets(&transfer.Collection)...)
		targets = append(targets, &total)

		if err := rows.Scan(targets...); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_transfer")
		}
		transfers = append(transfers, transfer)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "list_transfers")
	}
	return transfers, total, nil
}
