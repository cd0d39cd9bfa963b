// Package service holds use-case orchestration between the handlers and the calculators.
// Kept intentionally lean: input validation, defaults, logging and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/model"
)

var (
	// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
	// Field-level details are retrieved via FieldErrors(err).
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a lookup has no result, e.g. an auction without a winning bid.
	ErrNotFound = errors.New("not found")
)

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError lets transport code report malformed parameters the same way services do.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return ErrInvalidInput
	}
	return newInvalidInput(fe)
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// CountdownService computes auction countdowns against the service clock.
type CountdownService interface {
	Compute(ctx context.Context, rawEnd string) (model.CountdownView, error)
	ForItem(ctx context.Context, item model.Item) (model.CountdownView, error)
}

// PaginationService computes pager windows for listings.
type PaginationService interface {
	// Window uses the configured window size.
	Window(ctx context.Context, current, total int) (display.PageWindow, error)
	// WindowSize uses maxVisible as given; a non-positive size is display.ErrInvalidConfiguration.
	WindowSize(ctx context.Context, current, total, maxVisible int) (display.PageWindow, error)
	ListingWindow(ctx context.Context, page model.Page, totalItems int) (model.ListingPage, error)
}

// AuctionService settles auctions from already-fetched items and bids.
type AuctionService interface {
	Winner(ctx context.Context, itemID string, bids []model.Bid) (model.Bid, error)
	DueForSettlement(ctx context.Context, items []model.Item) ([]model.Item, error)
}
