// Copyright (c) 2026 Apollo. All rights reserved.

package list

import (
	"context"
	"fmt"

	"github.com/taibuivan/apollo/internal/platform/database/schema"
	"github.com/taibuivan/apollo/internal/platform/dberr"
	"github.com/taibuivan/apollo/internal/platform/postgres"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository constructs a PostgreSQL backed list store.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// listSelect selects a list with its entry count; callers append WHERE/ORDER BY.
var listSelect = fmt.Sprintf(`
	SELECT l.%s, l.%s, l.%s, l.%s, l.%s, l.%s, l.%s,
	       (SELECT COUNT(*) FROM %s e WHERE e.%s = l.%s) AS entry_count
	FROM %s l`,
	schema.ObjektList.ID, schema.ObjektList.UserID, schema.ObjektList.Name, schema.ObjektList.Slug,
	schema.ObjektList.Visibility, schema.ObjektList.CreatedAt, schema.ObjektList.UpdatedAt,
	schema.ObjektListEntry.Table, schema.ObjektListEntry.ListID, schema.ObjektList.ID,
	schema.ObjektList.Table,
)

// scanner is satisfied by pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanList(row scanner) (*List, error) {
	list := &List{}
	err := row.Scan(
		&list.ID, &list.UserID, &list.Name, &list.Slug,
		&list.Visibility, &list.CreatedAt, &list.UpdatedAt, &list.EntryCount,
	)
	return list, err
}

// FindByID implements [Repository].
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*List, error) {
	query := listSelect + fmt.Sprintf(" WHERE l.%s = $1", schema.ObjektList.ID)

	list, err := scanList(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_list")
	}
	return list, nil
}

// ListByUser implements [Repository].
func (repository *PostgresRepository) ListByUser(context context.Context, userID string, includePrivate bool) ([]*List, error) {
	query := listSelect + fmt.Sprintf(" WHERE l.%s = $1", schema.ObjektList.UserID)
	args := []any{userID}

	if !includePrivate {
		query += fmt.Sprintf(" AND l.%s = $2", schema.ObjektList.Visibility)
		args = append(args, string(VisibilityPublic))
	}
	query += fmt.Sprintf(" ORDER BY l.%s DESC, l.%s DESC", schema.ObjektList.CreatedAt, schema.ObjektList.ID)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_lists")
	}
	defer rows.Close()

	lists := make([]*List, 0)
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_list")
		}
		lists = append(lists, list)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_lists")
	}
	return lists, nil
}

// Create implements [Repository].
func (repository *PostgresRepository) Create(context context.Context, list *List) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s`,
		schema.ObjektList.Table,
		schema.ObjektList.ID, schema.ObjektList.UserID, schema.ObjektList.Name,
		schema.ObjektList.Slug, schema.ObjektList.Visibility,
		schema.ObjektList.CreatedAt, schema.ObjektList.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		list.ID, list.UserID, list.Name, list.Slug, string(list.Visibility),
	).Scan(&list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_list")
	}
	return nil
}

// Update implements [Repository].
func (repository *PostgresRepository) Update(context context.Context, list *List) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s`,
		schema.ObjektList.Table,
		schema.ObjektList.Name, schema.ObjektList.Slug, schema.ObjektList.Visibility, schema.ObjektList.UpdatedAt,
		schema.ObjektList.ID,
		schema.ObjektList.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		list.ID, list.Name, list.Slug, string(list.Visibility),
	).Scan(&list.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_list")
	}
	return nil
}

// Delete implements [Repository].
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.ObjektList.Table, schema.ObjektList.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_list")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// AddEntry implements [Repository].
func (repository *PostgresRepository) AddEntry(context context.Context, listID, collectionID string) (*Entry, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		RETURNING %s, %s`,
		schema.ObjektListEntry.Table,
		schema.ObjektListEntry.ListID, schema.ObjektListEntry.CollectionID,
		schema.ObjektListEntry.ID, schema.ObjektListEntry.CreatedAt,
	)

	entry := &Entry{ListID: listID, CollectionID: collectionID}
	if err := repository.db.QueryRow(context, query, listID, collectionID).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, dberr.Wrap(err, "add_list_entry")
	}
	return entry, nil
}

// RemoveEntry implements [Repository].
func (repository *PostgresRepository) RemoveEntry(context context.Context, listID, collectionID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ObjektListEntry.Table, schema.ObjektListEntry.ListID, schema.ObjektListEntry.CollectionID)

	tag, err := repository.db.Exec(context, query, listID, collectionID)
	if err != nil {
		return dberr.Wrap(err, "remove_list_entry")
	}
	if tag.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// CollectionIDs implements [Repository].
func (repository *PostgresRepository) CollectionIDs(context context.Context, listID string) ([]string, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.ObjektListEntry.CollectionID, schema.ObjektListEntry.Table,
		schema.ObjektListEntry.ListID, schema.ObjektListEntry.ID)

	rows, err := repository.db.Query(context, query, listID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
