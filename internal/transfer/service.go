// Copyright (c) 2026 Apollo. All rights reserved.

package transfer

import (
	"context"
	"strings"

	"github.com/taibuivan/apollo/internal/platform/apperr"
	"github.com/taibuivan/apollo/internal/platform/validate"
	"github.com/taibuivan/apollo/pkg/pagination"
)

// Service reads transfer history.
type Service struct {
	repo Repository
}

// NewService constructs a new [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

/*
History returns one page of transfers for an address.

Parameters:
  - context: context.Context
  - address: string (0x-prefixed, any case)
  - rawCursor: string (Zero-based page, empty for the first)

Returns:
  - *Page: Transfers newest first
  - error: VALIDATION_ERROR, INVALID_FILTER or SOURCE_UNAVAILABLE
*/
func (service *Service) History(context context.Context, address, rawCursor string) (*Page, error) {
	if err := (&validate.Validator{}).Address("address", address).Err(); err != nil {
		return nil, err
	}

	page, err := pagination.ParseCursor(rawCursor)
	if err != nil {
		return nil, apperr.InvalidFilter("Invalid filter value", apperr.FieldError{
			Field:   "page",
			Message: "Must be an integer between 0 and 100000",
		})
	}

	transfers, total, err := service.repo.ListByAddress(context, strings.ToLower(address), page, PageSize)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeInternal) {
			return nil, apperr.SourceUnavailable("Relational store", err)
		}
		return nil, err
	}

	return &Page{
		Meta:      pagination.NewMeta(page, PageSize, len(transfers), total),
		Transfers: transfers,
	}, nil
}
