// Copyright (c) 2026 Apollo. All rights reserved.

package migration

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"postgres_scheme", "postgres://u:p@db:5432/apollo", "pgx5://u:p@db:5432/apollo"},
		{"postgresql_scheme", "postgresql://u:p@db/apollo", "pgx5://u:p@db/apollo"},
		{"already_pgx5", "pgx5://u:p@db/apollo", "pgx5://u:p@db/apollo"},
		{"keyword_dsn", "host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertToPgx5DSN(tt.in))
		})
	}
}

/*
TestEmbeddedMigrations_Paired checks every embedded up migration has a down twin.
*/
func TestEmbeddedMigrations_Paired(t *testing.T) {
	ups, err := fs.Glob(embedded, "sql/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(embedded, "sql/*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))
}
