// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package objekt implements the filtered, sorted and cursor-paged read path over
the objekt catalog.

A request names a [Scope] (the whole catalog, the collections of one list, or
the objekts held by one address), a closed set of [Filters], a [Sort] and a
zero-based page cursor. The [Service] resolves list membership, applies the
caller's artist selection, and hands the [Query] to exactly one [Source]:
the full-text search index when free text is present, the relational store
otherwise.

Core Responsibility:

  - Validation: every filter value is checked against its enumeration or format.
  - Composition: active filters are lowered to conjoined SQL predicates.
  - Ordering: every sort carries a stable tie-break so offsets never skip rows.
*/
package objekt

import (
	"strings"
	"time"

	"github.com/taibuivan/apollo/internal/platform/sec"
	"github.com/taibuivan/apollo/pkg/pagination"
)

// # Domain Enums

// Artist identifies the agency roster a collection belongs to.
type Artist string

const (
	ArtistTripleS Artist = "tripleS"
	ArtistArtms   Artist = "artms"
	ArtistIdntt   Artist = "idntt"
)

// Artists lists every supported artist in display order.
var Artists = []Artist{ArtistTripleS, ArtistArtms, ArtistIdntt}

// ParseArtist matches raw case-insensitively and returns the canonical spelling.
func ParseArtist(raw string) (Artist, bool) {
	for _, artist := range Artists {
		if strings.EqualFold(raw, string(artist)) {
			return artist, true
		}
	}
	return "", false
}

// Class is the rarity tier of a collection.
type Class string

const (
	ClassFirst   Class = "First"
	ClassDouble  Class = "Double"
	ClassSpecial Class = "Special"
	ClassPremier Class = "Premier"
	ClassWelcome Class = "Welcome"
	ClassZero    Class = "Zero"
	ClassMotion  Class = "Motion"
	ClassUnit    Class = "Unit"
)

// IsValid reports whether c is a recognised [Class] value.
func (c Class) IsValid() bool {
	switch c {
	case
		ClassFirst,
		ClassDouble,
		ClassSpecial,
		ClassPremier,
		ClassWelcome,
		ClassZero,
		ClassMotion,
		ClassUnit:
		return true
	}
	return false
}

// OnlineType distinguishes digital-only collections from ones shipped with
// physical cards.
type OnlineType string

const (
	OnlineTypeOnline  OnlineType = "online"
	OnlineTypeOffline OnlineType = "offline"
)

// IsValid reports whether t is a recognised [OnlineType] value.
func (t OnlineType) IsValid() bool {
	return t == OnlineTypeOnline || t == OnlineTypeOffline
}

// Season is a release season such as "Atom01".
type Season string

// IsValid reports whether s has the <Word><2 digits> shape.
func (s Season) IsValid() bool {
	return seasonPattern.MatchString(string(s))
}

// CollectionNo is the ordinal of a collection within its season, such as "101Z".
type CollectionNo string

// IsValid reports whether n is leading digits plus an optional letter suffix.
func (n CollectionNo) IsValid() bool {
	return collectionNoPattern.MatchString(string(n))
}

// # Core Entities

// Collection is the catalog definition of a card type.
type Collection struct {
	ID              string       `json:"id"`
	Slug            string       `json:"slug"`
	Artist          Artist       `json:"artist"`
	Season          Season       `json:"season"`
	Member          string       `json:"member"`
	Class           Class        `json:"class"`
	OnlineType      OnlineType   `json:"onOffline"`
	CollectionNo    CollectionNo `json:"collectionNo"`
	FrontImage      string       `json:"frontImage"`
	BackImage       string       `json:"backImage"`
	BackgroundColor string       `json:"backgroundColor"`
	TextColor       string       `json:"textColor"`
	CreatedAt       time.Time    `json:"createdAt"`
}

// Objekt is one serialised copy of a collection held by one address.
type Objekt struct {
	ID           int64     `json:"id"`
	CollectionID string    `json:"collectionId"`
	Owner        string    `json:"owner"`
	Serial       int       `json:"serial"`
	Transferable bool      `json:"transferable"`
	UsedForGrid  bool      `json:"usedForGrid"`
	MintedAt     time.Time `json:"mintedAt"`
	ReceivedAt   time.Time `json:"receivedAt"`
}

// Item is one entry of a result page. Objekt is only set for ownership scope.
type Item struct {
	Collection Collection `json:"collection"`
	Objekt     *Objekt    `json:"objekt,omitempty"`
}

// # Query Model

// Scope selects the candidate rows of a query and fixes its page size.
type Scope int

const (
	// ScopeCollections browses the whole catalog.
	ScopeCollections Scope = iota
	// ScopeList browses the collections saved in one objekt list.
	ScopeList
	// ScopeOwnership browses the objekts currently held by one address.
	ScopeOwnership
)

// PageSize returns the fixed number of rows per page for the scope.
func (s Scope) PageSize() int {
	if s == ScopeOwnership {
		return 30
	}
	return 60
}

func (s Scope) String() string {
	switch s {
	case ScopeList:
		return "list"
	case ScopeOwnership:
		return "ownership"
	default:
		return "collections"
	}
}

// Filters is the closed set of recognised filters. A nil or empty field
// imposes no constraint.
type Filters struct {
	Artists       []Artist
	Seasons       []Season
	Classes       []Class
	Member        string
	OnlineTypes   []OnlineType
	CollectionNos []CollectionNo
	Transferable  *bool
	Gridable      *bool
	ListID        string
	SearchText    string
}

// Query is one page request.
type Query struct {
	Scope   Scope
	Address string
	Filters Filters
	Sort    Sort
	Cursor  int

	// Members is the resolved collection id set of Filters.ListID. It is
	// filled in by the service before a source runs.
	Members []string
}

// Page is one page of results together with its cursor metadata.
type Page struct {
	pagination.Meta
	Items []Item `json:"objekts"`
}

// emptyPage is the resolved, successful page for an empty candidate set.
func emptyPage() *Page {
	return &Page{Meta: pagination.Empty(), Items: []Item{}}
}

// RequestContext carries the per-request state a query depends on.
type RequestContext struct {
	// Session is the verified caller, or nil when anonymous.
	Session *sec.AuthClaims
	// Artists is the caller's artist selection, applied when the query
	// itself names no artist.
	Artists []Artist
}
