// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package uuid provides time-ordered unique identifiers for Apollo records.

Version 7 values sort by creation time, which keeps B-tree inserts on list
primary keys append-mostly.
*/
package uuid

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
func New() string {

	// Entropy failure is an unrecoverable system-level error
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
