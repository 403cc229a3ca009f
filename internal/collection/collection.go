// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package collection serves catalog details: one collection by slug, one
serialised objekt within it, and the filter metadata that drives the
browse UI.

Filter metadata changes only when the ingestion worker adds collections,
so it is read through a short-lived cache.
*/
package collection

import (
	"slices"

	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/pkg/slice"
)

// # Filter Metadata

// FilterRow is one distinct combination of categorical values in the catalog.
type FilterRow struct {
	Artist       objekt.Artist
	Season       objekt.Season
	Class        objekt.Class
	Member       string
	CollectionNo objekt.CollectionNo
}

// ArtistFilters lists the values that can be selected for one artist.
type ArtistFilters struct {
	Artist        objekt.Artist         `json:"artist"`
	Seasons       []objekt.Season       `json:"seasons"`
	Classes       []objekt.Class        `json:"classes"`
	Members       []string              `json:"members"`
	CollectionNos []objekt.CollectionNo `json:"collectionNos"`
}

// FilterData is the filter metadata for every supported artist.
type FilterData struct {
	Artists []ArtistFilters `json:"artists"`
}

// classOrder is the display order of classes.
var classOrder = []objekt.Class{
	objekt.ClassFirst, objekt.ClassDouble, objekt.ClassSpecial, objekt.ClassPremier,
	objekt.ClassWelcome, objekt.ClassZero, objekt.ClassMotion, objekt.ClassUnit,
}

/*
buildFilterData groups rows by artist.

Rows arrive in release order, so seasons and members keep first-seen order.
Classes follow [classOrder]; unknown classes are dropped. Collection numbers
are ordered by [objekt.CompareCollectionNo].
*/
func buildFilterData(rows []FilterRow) *FilterData {
	data := &FilterData{Artists: make([]ArtistFilters, 0, len(objekt.Artists))}

	for _, artist := range objekt.Artists {
		owned := slice.Filter(rows, func(row FilterRow) bool { return row.Artist == artist })

		classes := slice.Unique(slice.Map(owned, func(row FilterRow) objekt.Class { return row.Class }))
		numbers := slice.Unique(slice.Map(owned, func(row FilterRow) objekt.CollectionNo { return row.CollectionNo }))
		slices.SortFunc(numbers, objekt.CompareCollectionNo)

		data.Artists = append(data.Artists, ArtistFilters{
			Artist:  artist,
			Seasons: nonNil(slice.Unique(slice.Map(owned, func(row FilterRow) objekt.Season { return row.Season }))),
			Classes: nonNil(slice.Filter(classOrder, func(class objekt.Class) bool {
				return slices.Contains(classes, class)
			})),
			Members:       nonNil(slice.Unique(slice.Map(owned, func(row FilterRow) string { return row.Member }))),
			CollectionNos: nonNil(numbers),
		})
	}

	return data
}

// nonNil keeps empty groups encoded as [] rather than null.
func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
