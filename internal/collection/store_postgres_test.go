// Copyright (c) 2026 Apollo. All rights reserved.

package collection_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/apollo/internal/collection"
	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/internal/platform/apperr"
	"github.com/taibuivan/apollo/internal/platform/database/schema"
)

func setupMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })
	return mock
}

func collectionRow(now time.Time) []any {
	return []any{
		"col-1", "atom01-seoyeon-101z", "tripleS", "Atom01", "SeoYeon", "First",
		"online", "101Z", "front.png", "back.png", "#ffffff", "#000000", now,
	}
}

func TestPostgresRepository_FindBySlug(t *testing.T) {
	mock := setupMock(t)
	repo := collection.NewPostgresRepository(mock)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM collection c WHERE c.slug = $1")).
		WithArgs("atom01-seoyeon-101z").
		WillReturnRows(pgxmock.NewRows(schema.Collection.Columns()).AddRow(collectionRow(now)...))

	got, err := repo.FindBySlug(context.Background(), "atom01-seoyeon-101z")
	require.NoError(t, err)
	assert.Equal(t, objekt.ArtistTripleS, got.Artist)
	assert.Equal(t, objekt.CollectionNo("101Z"), got.CollectionNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_FindBySerial(t *testing.T) {
	mock := setupMock(t)
	repo := collection.NewPostgresRepository(mock)
	now := time.Now()

	columns := append(schema.Collection.Columns(), schema.Objekt.Columns()...)
	values := append(collectionRow(now), int64(9001), "col-1", "0xabc", 42, true, false, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE c.slug = $1 AND o.serial = $2")).
		WithArgs("atom01-seoyeon-101z", 42).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(values...))

	item, err := repo.FindBySerial(context.Background(), "atom01-seoyeon-101z", 42)
	require.NoError(t, err)
	require.NotNil(t, item.Objekt)
	assert.Equal(t, int64(9001), item.Objekt.ID)
	assert.Equal(t, 42, item.Objekt.Serial)
	assert.Equal(t, "col-1", item.Collection.ID)
}

func TestPostgresRepository_FindBySerial_NotFound(t *testing.T) {
	mock := setupMock(t)
	repo := collection.NewPostgresRepository(mock)

	mock.ExpectQuery("JOIN collection c").
		WithArgs("atom01-seoyeon-101z", 7).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.FindBySerial(context.Background(), "atom01-seoyeon-101z", 7)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestPostgresRepository_FilterRows(t *testing.T) {
	mock := setupMock(t)
	repo := collection.NewPostgresRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY artist, season, class, member, collection_no")).
		WillReturnRows(pgxmock.NewRows([]string{"artist", "season", "class", "member", "collection_no"}).
			AddRow("tripleS", "Atom01", "First", "SeoYeon", "101Z").
			AddRow("artms", "Atom01", "First", "JinSoul", "100Z"))

	rows, err := repo.FilterRows(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, objekt.ArtistArtms, rows[1].Artist)
	assert.NoError(t, mock.ExpectationsWereMet())
}
