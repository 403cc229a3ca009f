// Copyright (c) 2026 Apollo. All rights reserved.

package objekt

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/apollo/internal/platform/apperr"
	"github.com/taibuivan/apollo/pkg/pagination"
	"github.com/taibuivan/apollo/pkg/query"
	"github.com/taibuivan/apollo/pkg/slice"
	"github.com/taibuivan/apollo/pkg/uuid"
)

var (
	seasonPattern       = regexp.MustCompile(`^[A-Z][A-Za-z]*[0-9]{2}$`)
	collectionNoPattern = regexp.MustCompile(`^[0-9]+[A-Za-z]*$`)
)

// Query string keys understood by [ParseFilters].
const (
	ParamArtist       = "artist"
	ParamSeason       = "season"
	ParamClass        = "class"
	ParamMember       = "member"
	ParamOnlineType   = "on_offline"
	ParamCollectionNo = "collection"
	ParamTransferable = "transferable"
	ParamGridable     = "gridable"
	ParamSearch       = "search"
	ParamSort         = "sort"
	ParamPage         = "page"
	ParamList         = "list"
)

const (
	maxMemberLength = 64
	maxSearchLength = 128
)

/*
ParseFilters decodes a query string into typed filters, a sort and a cursor.

Description: Multi-valued filters accept repeated keys and comma-separated
values. Every value outside its enumeration or format is collected, and the
call fails closed with a single INVALID_FILTER error listing each offender.

Parameters:
  - values: url.Values

Returns:
  - Filters: The decoded filter set
  - Sort: The requested order (newest when absent)
  - int: The zero-based page cursor
  - error: apperr.InvalidFilter if any value is rejected
*/
func ParseFilters(values url.Values) (Filters, Sort, int, error) {
	var (
		filters Filters
		details []apperr.FieldError
	)

	reject := func(field, format string, args ...any) {
		details = append(details, apperr.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	// Categorical filters
	for _, raw := range query.Values(values, ParamArtist) {
		artist, ok := ParseArtist(raw)
		if !ok {
			reject(ParamArtist, "Unknown artist %q", raw)
			continue
		}
		filters.Artists = append(filters.Artists, artist)
	}

	for _, raw := range query.Values(values, ParamSeason) {
		if season := Season(raw); season.IsValid() {
			filters.Seasons = append(filters.Seasons, season)
			continue
		}
		reject(ParamSeason, "Invalid season %q", raw)
	}

	for _, raw := range query.Values(values, ParamClass) {
		if class := Class(raw); class.IsValid() {
			filters.Classes = append(filters.Classes, class)
			continue
		}
		reject(ParamClass, "Unknown class %q", raw)
	}

	for _, raw := range query.Values(values, ParamOnlineType) {
		if onlineType := OnlineType(strings.ToLower(raw)); onlineType.IsValid() {
			filters.OnlineTypes = append(filters.OnlineTypes, onlineType)
			continue
		}
		reject(ParamOnlineType, "Must be online or offline, got %q", raw)
	}

	for _, raw := range query.Values(values, ParamCollectionNo) {
		if number := CollectionNo(strings.ToUpper(raw)); number.IsValid() {
			filters.CollectionNos = append(filters.CollectionNos, number)
			continue
		}
		reject(ParamCollectionNo, "Invalid collection number %q", raw)
	}

	filters.Artists = slice.Unique(filters.Artists)
	filters.Seasons = slice.Unique(filters.Seasons)
	filters.Classes = slice.Unique(filters.Classes)
	filters.OnlineTypes = slice.Unique(filters.OnlineTypes)
	filters.CollectionNos = slice.Unique(filters.CollectionNos)

	// Scalar filters
	filters.Member = strings.TrimSpace(values.Get(ParamMember))
	if utf8.RuneCountInString(filters.Member) > maxMemberLength {
		reject(ParamMember, "Maximum %d characters", maxMemberLength)
	}

	var err error
	if filters.Transferable, err = query.Bool(values, ParamTransferable); err != nil {
		reject(ParamTransferable, "Must be true or false")
	}
	if filters.Gridable, err = query.Bool(values, ParamGridable); err != nil {
		reject(ParamGridable, "Must be true or false")
	}

	filters.ListID = strings.TrimSpace(values.Get(ParamList))
	if filters.ListID != "" && !uuid.Valid(filters.ListID) {
		reject(ParamList, "Must be a valid list id")
	}

	filters.SearchText = strings.Join(strings.Fields(values.Get(ParamSearch)), " ")
	if utf8.RuneCountInString(filters.SearchText) > maxSearchLength {
		reject(ParamSearch, "Maximum %d characters", maxSearchLength)
	}

	// Ordering and position
	sort, err := ParseSort(values.Get(ParamSort))
	if err != nil {
		reject(ParamSort, "Must be one of: newest, oldest, noAscending, noDescending, serialAsc, serialDesc")
	}

	cursor, err := pagination.ParseCursor(values.Get(ParamPage))
	if err != nil {
		reject(ParamPage, "Must be an integer between 0 and 100000")
	}

	if len(details) > 0 {
		return Filters{}, "", 0, apperr.InvalidFilter("Invalid filter value", details...)
	}

	return filters, sort, cursor, nil
}

// ParseArtists canonicalises a client-side artist selection. Unknown codes
// are dropped, since the selection is ambient state rather than a filter
// the caller typed.
func ParseArtists(raw []string) []Artist {
	var artists []Artist
	for _, value := range raw {
		if artist, ok := ParseArtist(value); ok {
			artists = append(artists, artist)
		}
	}
	return slice.Unique(artists)
}
