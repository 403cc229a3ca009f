// Copyright (c) 2026 Apollo. All rights reserved.

package list

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/apollo/internal/platform/apperr"
	"github.com/taibuivan/apollo/internal/platform/dberr"
	"github.com/taibuivan/apollo/internal/platform/sec"
	"github.com/taibuivan/apollo/internal/platform/validate"
	"github.com/taibuivan/apollo/pkg/slug"
	"github.com/taibuivan/apollo/pkg/uuid"
)

const maxNameLength = 64

// errNotFound hides private lists behind the same error as missing ones.
var errNotFound = apperr.NotFound("List")

// # Service Layer

// Service orchestrates objekt list management and membership resolution.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// # Lookups

/*
Get returns a list if the caller may read it.

Parameters:
  - context: context.Context
  - id: string (UUID)
  - session: *sec.AuthClaims (nil when anonymous)

Returns:
  - *List: The list
  - error: NOT_FOUND when missing or private to another user
*/
func (service *Service) Get(context context.Context, id string, session *sec.AuthClaims) (*List, error) {
	if err := (&validate.Validator{}).UUID("listID", id).Err(); err != nil {
		return nil, err
	}

	list, err := service.repo.FindByID(context, id)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}

	if !list.VisibleTo(userID(session)) {
		return nil, errNotFound
	}
	return list, nil
}

// ListByUser returns a user's lists. Private lists are only included for the owner.
func (service *Service) ListByUser(context context.Context, ownerID string, session *sec.AuthClaims) ([]*List, error) {
	if err := (&validate.Validator{}).Required("userID", ownerID).Err(); err != nil {
		return nil, err
	}
	return service.repo.ListByUser(context, ownerID, userID(session) == ownerID)
}

/*
Members resolves a list to its collection ids for list-scoped objekt queries.

Description: Visibility follows [Service.Get]. Storage failures are reported
as SOURCE_UNAVAILABLE since they fail the read path that depends on them.

Returns:
  - []string: Collection ids in insertion order, empty for an empty list
  - error: NOT_FOUND or SOURCE_UNAVAILABLE
*/
func (service *Service) Members(context context.Context, listID string, session *sec.AuthClaims) ([]string, error) {
	if _, err := service.Get(context, listID, session); err != nil {
		if apperr.HasCode(err, apperr.CodeInternal) {
			return nil, apperr.SourceUnavailable("List store", err)
		}
		return nil, err
	}

	ids, err := service.repo.CollectionIDs(context, listID)
	if err != nil {
		return nil, dberr.Unavailable(err, "List store")
	}
	return ids, nil
}

// # Mutations

/*
Create saves a new list owned by the session user.

Description: The slug is derived from the name and must be unique per user.

Returns:
  - *List: The stored list
  - error: VALIDATION_ERROR or CONFLICT
*/
func (service *Service) Create(context context.Context, session *sec.AuthClaims, input CreateInput) (*List, error) {
	name := strings.TrimSpace(input.Name)
	listSlug := slug.From(name)

	if input.Visibility == "" {
		input.Visibility = VisibilityPublic
	}

	validator := &validate.Validator{}
	validator.
		Required("name", name).
		MaxLen("name", name, maxNameLength).
		Custom("name", name != "" && listSlug == "", "Must contain at least one letter or digit").
		OneOf("visibility", string(input.Visibility), string(VisibilityPublic), string(VisibilityPrivate))
	if err := validator.Err(); err != nil {
		return nil, err
	}

	list := &List{
		ID:         uuid.New(),
		UserID:     session.UserID,
		Name:       name,
		Slug:       listSlug,
		Visibility: input.Visibility,
	}

	if err := service.repo.Create(context, list); err != nil {
		return nil, duplicateName(err)
	}

	service.logger.InfoContext(context, "list_created",
		slog.String("list_id", list.ID),
		slog.String("user_id", list.UserID),
	)
	return list, nil
}

// Update renames a list or changes its visibility. Renaming regenerates the slug.
func (service *Service) Update(context context.Context, session *sec.AuthClaims, id string, input UpdateInput) (*List, error) {
	list, err := service.owned(context, session, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		list.Name = name
		list.Slug = slug.From(name)
		validator.
			Required("name", name).
			MaxLen("name", name, maxNameLength).
			Custom("name", name != "" && list.Slug == "", "Must contain at least one letter or digit")
	}
	if input.Visibility != nil {
		list.Visibility = *input.Visibility
		validator.OneOf("visibility", string(list.Visibility), string(VisibilityPublic), string(VisibilityPrivate))
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, list); err != nil {
		return nil, duplicateName(err)
	}
	return list, nil
}

// Delete removes a list owned by the session user.
func (service *Service) Delete(context context.Context, session *sec.AuthClaims, id string) error {
	if _, err := service.owned(context, session, id); err != nil {
		return err
	}
	return service.repo.Delete(context, id)
}

// AddEntry saves a collection into a list owned by the session user.
func (service *Service) AddEntry(context context.Context, session *sec.AuthClaims, listID string, input EntryInput) (*Entry, error) {
	collectionID := strings.TrimSpace(input.CollectionID)
	if err := (&validate.Validator{}).Required("collectionId", collectionID).Err(); err != nil {
		return nil, err
	}

	if _, err := service.owned(context, session, listID); err != nil {
		return nil, err
	}

	entry, err := service.repo.AddEntry(context, listID, collectionID)
	if apperr.HasCode(err, apperr.CodeConflict) {
		return nil, apperr.Conflict("Collection is already in this list")
	}
	return entry, err
}

// RemoveEntry removes a collection from a list owned by the session user.
func (service *Service) RemoveEntry(context context.Context, session *sec.AuthClaims, listID, collectionID string) error {
	if _, err := service.owned(context, session, listID); err != nil {
		return err
	}
	return service.repo.RemoveEntry(context, listID, collectionID)
}

// # Helpers

// owned loads a list and checks that the session user owns it.
func (service *Service) owned(context context.Context, session *sec.AuthClaims, id string) (*List, error) {
	list, err := service.Get(context, id, session)
	if err != nil {
		return nil, err
	}
	if list.UserID != userID(session) {
		return nil, apperr.Forbidden("Only the owner can modify this list")
	}
	return list, nil
}

func userID(session *sec.AuthClaims) string {
	if session == nil {
		return ""
	}
	return session.UserID
}

func duplicateName(err error) error {
	if apperr.HasCode(err, apperr.CodeConflict) {
		return apperr.Conflict("A list with this name already exists")
	}
	return err
}
