// Copyright (c) 2026 Apollo. All rights reserved.

/*
Package transfer serves the transfer history of an address: every objekt
movement where the address was the sender or the recipient, newest first.
*/
package transfer

import (
	"time"

	"github.com/taibuivan/apollo/internal/objekt"
	"github.com/taibuivan/apollo/pkg/pagination"
)

// PageSize is the number of transfers per page.
const PageSize = 30

// Transfer is one objekt movement between two addresses.
type Transfer struct {
	ID         string            `json:"id"`
	ObjektID   int64             `json:"objektId"`
	From       string            `json:"from"`
	To         string            `json:"to"`
	Hash       string            `json:"hash"`
	Timestamp  time.Time         `json:"timestamp"`
	Serial     int               `json:"serial"`
	Collection objekt.Collection `json:"collection"`
}

// Page is one page of transfer history.
type Page struct {
	pagination.Meta
	Transfers []Transfer `json:"transfers"`
}
