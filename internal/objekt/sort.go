// Copyright (c) 2026 Apollo. All rights reserved.

package objekt

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"github.com/taibuivan/apollo/internal/platform/database/schema"
)

// Sort is the requested result order.
type Sort string

const (
	SortNewest       Sort = "newest"
	SortOldest       Sort = "oldest"
	SortNoAscending  Sort = "noAscending"
	SortNoDescending Sort = "noDescending"
	SortSerialAsc    Sort = "serialAsc"
	SortSerialDesc   Sort = "serialDesc"
)

// ErrUnknownSort is returned by [ParseSort] for a value outside the enumeration.
var ErrUnknownSort = errors.New("objekt: unknown sort")

// ParseSort validates raw. An empty value selects [SortNewest].
func ParseSort(raw string) (Sort, error) {
	switch sort := Sort(strings.TrimSpace(raw)); sort {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortNoAscending, SortNoDescending, SortSerialAsc, SortSerialDesc:
		return sort, nil
	}
	return "", ErrUnknownSort
}

// bySerial reports whether the sort orders by objekt serial.
func (s Sort) bySerial() bool {
	return s == SortSerialAsc || s == SortSerialDesc
}

// AllowedIn reports whether the sort is meaningful for the scope. Serial
// sorts need an ownership record and are rejected elsewhere.
func (s Sort) AllowedIn(scope Scope) bool {
	return !s.bySerial() || scope == ScopeOwnership
}

// # Collection Number Ordering

// collectionNoKey is the numeric leading part used to order collection numbers.
// numeric has arbitrary precision, so long digit runs never overflow.
var collectionNoKey = fmt.Sprintf(
	"COALESCE(NULLIF(substring(c.%s FROM '^[0-9]+'), ''), '0')::numeric",
	schema.Collection.CollectionNo,
)

// leadingDigits returns the leading digit run of n without leading zeros.
// A number with no leading digits yields "".
func leadingDigits(n CollectionNo) string {
	end := 0
	for end < len(n) && n[end] >= '0' && n[end] <= '9' {
		end++
	}
	return strings.TrimLeft(string(n[:end]), "0")
}

// CompareCollectionNo orders collection numbers by their leading digits
// numerically, then by the full value lexicographically. It matches the SQL
// ordering used for the noAscending sort for digit runs of any length.
func CompareCollectionNo(a, b CollectionNo) int {
	left, right := leadingDigits(a), leadingDigits(b)
	if len(left) != len(right) {
		return cmp.Compare(len(left), len(right))
	}
	if order := strings.Compare(left, right); order != 0 {
		return order
	}
	return strings.Compare(string(a), string(b))
}

// # ORDER BY Lowering

/*
orderBy lowers a sort into an ORDER BY clause for the scope.

Every clause ends on a unique key so offset pages are stable. Collection
aliases are "c", ownership aliases are "o".
*/
func orderBy(scope Scope, sort Sort) string {
	collection := schema.Collection
	objekt := schema.Objekt

	// Timestamp used by newest/oldest differs per scope
	timeColumn := fmt.Sprintf("c.%s", collection.CreatedAt)
	idColumn := fmt.Sprintf("c.%s", collection.ID)
	if scope == ScopeOwnership {
		timeColumn = fmt.Sprintf("o.%s", objekt.ReceivedAt)
		idColumn = fmt.Sprintf("o.%s", objekt.ID)
	}

	switch sort {
	case SortOldest:
		return fmt.Sprintf("%s ASC, %s ASC", timeColumn, idColumn)

	case SortNoAscending, SortNoDescending:
		dir := "ASC"
		if sort == SortNoDescending {
			dir = "DESC"
		}
		clause := fmt.Sprintf("%s %s, c.%s %s, c.%s %s",
			collectionNoKey, dir, collection.CollectionNo, dir, collection.ID, dir)
		if scope == ScopeOwnership {
			clause += fmt.Sprintf(", o.%s %s", objekt.ID, dir)
		}
		return clause

	case SortSerialAsc:
		return fmt.Sprintf("o.%s ASC, o.%s ASC", objekt.Serial, objekt.ID)

	case SortSerialDesc:
		return fmt.Sprintf("o.%s DESC, o.%s DESC", objekt.Serial, objekt.ID)

	default:
		return fmt.Sprintf("%s DESC, %s DESC", timeColumn, idColumn)
	}
}
