// Copyright (c) 2026 Apollo. All rights reserved.

package list_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/apollo/internal/list"
	"github.com/taibuivan/apollo/internal/platform/apperr"
	"github.com/taibuivan/apollo/internal/platform/dberr"
	"github.com/taibuivan/apollo/internal/platform/sec"
	"github.com/taibuivan/apollo/pkg/pointer"
)

const (
	publicListID  = "0190f5a4-7b2c-7d3e-8f40-aaaaaaaaaaaa"
	privateListID = "0190f5a4-7b2c-7d3e-8f40-bbbbbbbbbbbb"
	missingListID = "0190f5a4-7b2c-7d3e-8f40-cccccccccccc"

	ownerID    = "user-owner"
	strangerID = "user-stranger"
)

// fakeRepo is an in-memory [list.Repository].
type fakeRepo struct {
	lists   map[string]*list.List
	entries map[string][]string

	createErr  error
	addErr     error
	entriesErr error
	findErr    error

	created []*list.List
	updated []*list.List
	deleted []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		lists: map[string]*list.List{
			publicListID:  {ID: publicListID, UserID: ownerID, Name: "Wishlist", Slug: "wishlist", Visibility: list.VisibilityPublic},
			privateListID: {ID: privateListID, UserID: ownerID, Name: "Secret", Slug: "secret", Visibility: list.VisibilityPrivate},
		},
		entries: map[string][]string{
			publicListID:  {"col-1", "col-2"},
			privateListID: {},
		},
	}
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (*list.List, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	stored, ok := f.lists[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	copied := *stored
	return &copied, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID string, includePrivate bool) ([]*list.List, error) {
	result := make([]*list.List, 0)
	for _, stored := range f.lists {
		if stored.UserID != userID {
			continue
		}
		if !includePrivate && stored.Visibility == list.VisibilityPrivate {
			continue
		}
		result = append(result, stored)
	}
	return result, nil
}

func (f *fakeRepo) Create(_ context.Context, created *list.List) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, created)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, updated *list.List) error {
	f.updated = append(f.updated, updated)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) AddEntry(_ context.Context, listID, collectionID string) (*list.Entry, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.entries[listID] = append(f.entries[listID], collectionID)
	return &list.Entry{ID: int64(len(f.entries[listID])), ListID: listID, CollectionID: collectionID}, nil
}

func (f *fakeRepo) RemoveEntry(_ context.Context, _, _ string) error {
	return nil
}

func (f *fakeRepo) CollectionIDs(_ context.Context, listID string) ([]string, error) {
	if f.entriesErr != nil {
		return nil, f.entriesErr
	}
	return f.entries[listID], nil
}

func setupService() (*list.Service, *fakeRepo) {
	repo := newFakeRepo()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return list.NewService(repo, logger), repo
}

func session(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID}
}

/*
TestService_Get_Visibility verifies private lists resolve only for the owner
and look exactly like missing lists to everyone else.
*/
func TestService_Get_Visibility(t *testing.T) {
	service, _ := setupService()
	ctx := context.Background()

	got, err := service.Get(ctx, publicListID, nil)
	require.NoError(t, err)
	assert.Equal(t, "Wishlist", got.Name)

	got, err = service.Get(ctx, privateListID, session(ownerID))
	require.NoError(t, err)
	assert.Equal(t, list.VisibilityPrivate, got.Visibility)

	_, hiddenErr := service.Get(ctx, privateListID, session(strangerID))
	_, anonymousErr := service.Get(ctx, privateListID, nil)
	_, missingErr := service.Get(ctx, missingListID, nil)

	for _, err := range []error{hiddenErr, anonymousErr, missingErr} {
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
		assert.Equal(t, missingErr.Error(), err.Error())
	}
}

func TestService_Get_InvalidID(t *testing.T) {
	service, _ := setupService()

	_, err := service.Get(context.Background(), "not-a-uuid", nil)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

func TestService_ListByUser(t *testing.T) {
	service, _ := setupService()
	ctx := context.Background()

	lists, err := service.ListByUser(ctx, ownerID, session(ownerID))
	require.NoError(t, err)
	assert.Len(t, lists, 2)

	lists, err = service.ListByUser(ctx, ownerID, session(strangerID))
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, publicListID, lists[0].ID)

	_, err = service.ListByUser(ctx, "", nil)
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestService_Members covers membership resolution for list-scoped queries:
insertion order, the empty list, hidden lists and storage failures.
*/
func TestService_Members(t *testing.T) {
	ctx := context.Background()

	t.Run("Public", func(t *testing.T) {
		service, _ := setupService()
		ids, err := service.Members(ctx, publicListID, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"col-1", "col-2"}, ids)
	})

	t.Run("EmptyForOwner", func(t *testing.T) {
		service, _ := setupService()
		ids, err := service.Members(ctx, privateListID, session(ownerID))
		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("PrivateForStranger", func(t *testing.T) {
		service, _ := setupService()
		_, err := service.Members(ctx, privateListID, session(strangerID))
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("LookupFailure", func(t *testing.T) {
		service, repo := setupService()
		repo.findErr = apperr.Internal(errors.New("connection reset"))
		_, err := service.Members(ctx, publicListID, nil)
		assert.True(t, apperr.HasCode(err, apperr.CodeSourceUnavailable))
	})

	t.Run("EntriesFailure", func(t *testing.T) {
		service, repo := setupService()
		repo.entriesErr = errors.New("connection reset")
		_, err := service.Members(ctx, publicListID, nil)
		assert.True(t, apperr.HasCode(err, apperr.CodeSourceUnavailable))
	})
}

func TestService_Create(t *testing.T) {
	service, repo := setupService()

	created, err := service.Create(context.Background(), session(ownerID), list.CreateInput{Name: "  Atom01 Wants  "})
	require.NoError(t, err)

	assert.Equal(t, "Atom01 Wants", created.Name)
	assert.Equal(t, "atom01-wants", created.Slug)
	assert.Equal(t, list.VisibilityPublic, created.Visibility)
	assert.Equal(t, ownerID, created.UserID)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, repo.created, 1)
}

func TestService_Create_Validation(t *testing.T) {
	service, repo := setupService()
	ctx := context.Background()

	cases := map[string]list.CreateInput{
		"Blank":         {Name: "   "},
		"Punctuation":   {Name: "!!!"},
		"BadVisibility": {Name: "Mine", Visibility: "friends"},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := service.Create(ctx, session(ownerID), input)
			assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
		})
	}
	assert.Empty(t, repo.created)
}

func TestService_Create_DuplicateName(t *testing.T) {
	service, repo := setupService()
	repo.createErr = apperr.Conflict("Resource already exists")

	_, err := service.Create(context.Background(), session(ownerID), list.CreateInput{Name: "Wishlist"})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Equal(t, "A list with this name already exists", err.Error())
}

/*
TestService_Update_Ownership verifies only the owner can modify a public list
and that a rename regenerates the slug.
*/
func TestService_Update_Ownership(t *testing.T) {
	service, repo := setupService()
	ctx := context.Background()

	_, err := service.Update(ctx, session(strangerID), publicListID, list.UpdateInput{Name: pointer.To("Mine now")})
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
	assert.Empty(t, repo.updated)

	private := list.VisibilityPrivate
	updated, err := service.Update(ctx, session(ownerID), publicListID, list.UpdateInput{
		Name:       pointer.To("Cosmo Haul"),
		Visibility: &private,
	})
	require.NoError(t, err)
	assert.Equal(t, "cosmo-haul", updated.Slug)
	assert.Equal(t, list.VisibilityPrivate, updated.Visibility)
	assert.Len(t, repo.updated, 1)
}

func TestService_Delete(t *testing.T) {
	service, repo := setupService()
	ctx := context.Background()

	err := service.Delete(ctx, session(strangerID), privateListID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	require.NoError(t, service.Delete(ctx, session(ownerID), privateListID))
	assert.Equal(t, []string{privateListID}, repo.deleted)
}

func TestService_AddEntry(t *testing.T) {
	service, repo := setupService()
	ctx := context.Background()

	entry, err := service.AddEntry(ctx, session(ownerID), publicListID, list.EntryInput{CollectionID: "col-3"})
	require.NoError(t, err)
	assert.Equal(t, "col-3", entry.CollectionID)
	assert.Equal(t, []string{"col-1", "col-2", "col-3"}, repo.entries[publicListID])

	_, err = service.AddEntry(ctx, session(ownerID), publicListID, list.EntryInput{})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	repo.addErr = apperr.Conflict("Resource already exists")
	_, err = service.AddEntry(ctx, session(ownerID), publicListID, list.EntryInput{CollectionID: "col-1"})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Equal(t, "Collection is already in this list", err.Error())
}

func TestService_RemoveEntry_Forbidden(t *testing.T) {
	service, _ := setupService()

	err := service.RemoveEntry(context.Background(), session(strangerID), publicListID, "col-1")
	assert.True(t, apperr.HasCode(err, apperr.CodeForbidden))
}
