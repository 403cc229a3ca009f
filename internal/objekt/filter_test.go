// Copyright (c) 2026 Apollo. All rights reserved.

package objekt_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/internal/platform/apperr"
)

/*
TestParseFilters_Defaults verifies that an empty query string imposes no constraint.
*/
func TestParseFilters_Defaults(t *testing.T) {
	filters, sort, cursor, err := objekt.ParseFilters(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, objekt.Filters{}, filters)
	assert.Equal(t, objekt.SortNewest, sort)
	assert.Equal(t, 0, cursor)
}

/*
TestParseFilters_Valid checks canonicalisation of every recognised parameter.
*/
func TestParseFilters_Valid(t *testing.T) {
	values := url.Values{
		"artist":       {"TRIPLES,artms"},
		"season":       {"Atom01", "Binary01,Atom01"},
		"class":        {"First,Special"},
		"member":       {" HeeJin "},
		"on_offline":   {"Offline"},
		"collection":   {"101z,9Z"},
		"transferable": {"true"},
		"gridable":     {"false"},
		"search":       {"  heejin   101z "},
		"sort":         {"noAscending"},
		"page":         {"2"},
		"list":         {"0190f5a4-7b2c-7d3e-8f40-112233445566"},
	}

	filters, sort, cursor, err := objekt.ParseFilters(values)
	require.NoError(t, err)

	assert.Equal(t, []objekt.Artist{objekt.ArtistTripleS, objekt.ArtistArtms}, filters.Artists)
	assert.Equal(t, []objekt.Season{"Atom01", "Binary01"}, filters.Seasons)
	assert.Equal(t, []objekt.Class{objekt.ClassFirst, objekt.ClassSpecial}, filters.Classes)
	assert.Equal(t, "HeeJin", filters.Member)
	assert.Equal(t, []objekt.OnlineType{objekt.OnlineTypeOffline}, filters.OnlineTypes)
	assert.Equal(t, []objekt.CollectionNo{"101Z", "9Z"}, filters.CollectionNos)
	require.NotNil(t, filters.Transferable)
	assert.True(t, *filters.Transferable)
	require.NotNil(t, filters.Gridable)
	assert.False(t, *filters.Gridable)
	assert.Equal(t, "heejin 101z", filters.SearchText)
	assert.Equal(t, "0190f5a4-7b2c-7d3e-8f40-112233445566", filters.ListID)
	assert.Equal(t, objekt.SortNoAscending, sort)
	assert.Equal(t, 2, cursor)
}

/*
TestParseFilters_FailsClosed verifies every out-of-range value is reported.
*/
func TestParseFilters_FailsClosed(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown_artist", "artist", "loona"},
		{"bad_season", "season", "atom1"},
		{"unknown_class", "class", "Legendary"},
		{"class_is_case_sensitive", "class", "first"},
		{"bad_online_type", "on_offline", "hybrid"},
		{"bad_collection_no", "collection", "Z101"},
		{"bad_transferable", "transferable", "sometimes"},
		{"bad_gridable", "gridable", "2"},
		{"unknown_sort", "sort", "popular"},
		{"negative_page", "page", "-1"},
		{"non_numeric_page", "page", "next"},
		{"page_offset_overflow", "page", "307445734561825861"},
		{"page_max_int", "page", "9223372036854775807"},
		{"bad_list", "list", "my-list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := objekt.ParseFilters(url.Values{tt.key: {tt.value}})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeInvalidFilter, ae.Code)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.key, ae.Details[0].Field)
		})
	}
}

func TestParseFilters_CollectsAllErrors(t *testing.T) {
	_, _, _, err := objekt.ParseFilters(url.Values{
		"artist": {"tripleS,unknown"},
		"class":  {"Nope"},
		"sort":   {"sideways"},
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}

func TestParseArtists(t *testing.T) {
	got := objekt.ParseArtists([]string{"ARTMS", "nobody", "artms", "idntt"})
	assert.Equal(t, []objekt.Artist{objekt.ArtistArtms, objekt.ArtistIdntt}, got)
	assert.Nil(t, objekt.ParseArtists(nil))
}
