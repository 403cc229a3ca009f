// Copyright (c) 2026 Apollo. All rights reserved.

package transfer

import "context"

// Repository defines read access to transfer history.
type Repository interface {

	/*
		ListByAddress returns a page of transfers involving the address.

		Parameters:
		  - context: context.Context
		  - address: string (Lowercased)
		  - page: int (Zero-based)
		  - size: int

		Returns:
		  - []Transfer: Newest first
		  - int: Window total
		  - error: Store failure
	*/
	ListByAddress(context context.Context, address string, page, size int) ([]Transfer, int, error)
}
