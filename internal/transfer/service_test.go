// Copyright (c) 2026 Apollo. All rights reserved.

package transfer_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/apollo/internal/platform/apperr"
	"github.com/taibuivan/apollo/internal/transfer"
)

const address = "0x1234567890ABCDEF1234567890abcdef12345678"

// fakeRepo returns a fixed number of transfers and records each call.
type fakeRepo struct {
	rows      int
	total     int
	err       error
	addresses []string
	pages     []int
}

func (f *fakeRepo) ListByAddress(_ context.Context, address string, page, size int) ([]transfer.Transfer, int, error) {
	f.addresses = append(f.addresses, address)
	f.pages = append(f.pages, page)
	if f.err != nil {
		return nil, 0, f.err
	}

	transfers := make([]transfer.Transfer, 0, f.rows)
	for i := 0; i < f.rows && i < size; i++ {
		transfers = append(transfers, transfer.Transfer{ID: fmt.Sprintf("tx-%d", i)})
	}
	return transfers, f.total, nil
}

func TestService_History_FullPage(t *testing.T) {
	repo := &fakeRepo{rows: transfer.PageSize, total: 45}
	service := transfer.NewService(repo)

	page, err := service.History(context.Background(), address, "")
	require.NoError(t, err)

	assert.True(t, page.HasNext)
	assert.Equal(t, 1, *page.NextCursor)
	assert.Equal(t, 45, *page.Total)
	assert.Len(t, page.Transfers, transfer.PageSize)
	assert.Equal(t, []string{"0x1234567890abcdef1234567890abcdef12345678"}, repo.addresses)
}

func TestService_History_LastPage(t *testing.T) {
	repo := &fakeRepo{rows: 15, total: 45}
	service := transfer.NewService(repo)

	page, err := service.History(context.Background(), address, "1")
	require.NoError(t, err)

	assert.False(t, page.HasNext)
	assert.Nil(t, page.NextCursor)
	assert.Equal(t, []int{1}, repo.pages)
}

func TestService_History_Validation(t *testing.T) {
	repo := &fakeRepo{}
	service := transfer.NewService(repo)
	ctx := context.Background()

	_, err := service.History(ctx, "not-an-address", "")
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	for _, cursor := range []string{"-1", "307445734561825861", "9223372036854775807"} {
		_, err = service.History(ctx, address, cursor)
		assert.True(t, apperr.HasCode(err, apperr.CodeInvalidFilter), "cursor %s", cursor)
	}

	assert.Empty(t, repo.addresses)
}

func TestService_History_StoreFailure(t *testing.T) {
	repo := &fakeRepo{err: apperr.Internal(errors.New("connection reset"))}
	service := transfer.NewService(repo)

	_, err := service.History(context.Background(), address, "")
	assert.True(t, apperr.HasCode(err, apperr.CodeSourceUnavailable))
}
