// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package list manages objekt lists: named, user-owned sets of collections.

Lists are the membership source for list-scoped objekt queries. A public
list is readable by anyone; a private list resolves only for its owner and
is reported as missing to everyone else.
*/
package list

import "time"

// # Domain Enums

// Visibility controls who can read a list.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// IsValid reports whether v is a recognised [Visibility] value.
func (v Visibility) IsValid() bool {
	return v == VisibilityPublic || v == VisibilityPrivate
}

// # Core Entities

// List is a named set of collections owned by one user.
type List struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Name       string     `json:"name"`
	Slug       string     `json:"slug"`
	Visibility Visibility `json:"visibility"`
	EntryCount int        `json:"entryCount"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// VisibleTo reports whether the user may read the list.
func (l *List) VisibleTo(userID string) bool {
	return l.Visibility == VisibilityPublic || (userID != "" && l.UserID == userID)
}

// Entry is one collection saved in a list.
type Entry struct {
	ID           int64     `json:"id"`
	ListID       string    `json:"listId"`
	CollectionID string    `json:"collectionId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// # Request Payloads

// CreateInput is the payload for creating a list.
type CreateInput struct {
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
}

// UpdateInput is the payload for a partial list update. Nil fields are left unchanged.
type UpdateInput struct {
	Name       *string     `json:"name"`
	Visibility *Visibility `json:"visibility"`
}

// EntryInput is the payload for saving a collection into a list.
type EntryInput struct {
	CollectionID string `json:"collectionId"`
}
