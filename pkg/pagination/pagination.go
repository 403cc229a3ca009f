// Copyright (c) 2026 Apollo. All rights reserved.

// Package pagination provides shared types and helpers for cursor-paged API
// list endpoints.
//
// # Overview
//
// A cursor is a zero-based page index. Pages are fetched with OFFSET/LIMIT and
// the response metadata reports the window total, whether another page is
// likely to exist, and the cursor that fetches it.
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

// MaxPage is the largest cursor accepted. It keeps page*size well inside the
// int range for every page size the API uses.
const MaxPage = 100_000

// ErrInvalidCursor is returned when a cursor is not an integer in [0, MaxPage].
var ErrInvalidCursor = errors.New("pagination: cursor must be an integer between 0 and 100000")

// Meta is the pagination metadata included in cursor-paged API responses.
//
// Total is nil when it could not be resolved from the returned rows, which
// happens when a page past the first one comes back empty.
type Meta struct {
	Total      *int `json:"total"`
	HasNext    bool `json:"hasNext"`
	NextCursor *int `json:"nextCursor"`
}

// ParseCursor parses a raw cursor value. An empty value is the first page.
func ParseCursor(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 || page > MaxPage {
		return 0, ErrInvalidCursor
	}

	return page, nil
}

// Offset returns the SQL OFFSET for a zero-based page. Pages beyond MaxPage
// are clamped to it.
func Offset(page, size int) int {
	if page <= 0 || size <= 0 {
		return 0
	}
	return min(page, MaxPage) * size
}

// NewMeta constructs cursor metadata for a page.
//
// # Heuristic
//
// HasNext is true when the page came back full. When the true total is an
// exact multiple of the page size, the caller will fetch one extra empty page.
// MaxPage is always the last page, so NextCursor stays a valid cursor.
//
// Parameters:
//   - page: the zero-based page that was fetched
//   - size: the page size the source used
//   - rows: the number of rows returned
//   - total: the window count reported alongside the rows
func NewMeta(page, size, rows, total int) Meta {
	meta := Meta{HasNext: size > 0 && rows == size && page < MaxPage}

	switch {
	case rows > 0:
		meta.Total = &total
	case page == 0:
		zero := 0
		meta.Total = &zero
	}

	if meta.HasNext {
		next := page + 1
		meta.NextCursor = &next
	}

	return meta
}

// Empty is the metadata of a resolved, empty result.
func Empty() Meta {
	zero := 0
	return Meta{Total: &zero}
}
