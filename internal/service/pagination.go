package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/model"
)

type paginationService struct {
	maxVisible int
	log        zerolog.Logger
}

// NewPaginationService wires a pagination service whose windows default to maxVisible pages.
// A non-positive maxVisible falls back to display.DefaultMaxVisiblePages.
func NewPaginationService(maxVisible int, logger zerolog.Logger) PaginationService {
	if maxVisible <= 0 {
		maxVisible = display.DefaultMaxVisiblePages
	}
	l := logger.With().Str("module", "service").Str("component", "pagination").Logger()
	return &paginationService{maxVisible: maxVisible, log: l}
}

// Window computes the pager window with the configured size.
func (s *paginationService) Window(ctx context.Context, current, total int) (display.PageWindow, error) {
	return s.WindowSize(ctx, current, total, s.maxVisible)
}

// WindowSize validates caller input and computes the pager window. current outside
// [1,total] is tolerated but logged, since it usually points at a stale page index
// on the caller side.
func (s *paginationService) WindowSize(_ context.Context, current, total, maxVisible int) (display.PageWindow, error) {
	if total < 0 {
		ferrs := []FieldError{{Field: "total", Message: "must be >= 0"}}
		s.log.Debug().Interface("field_errors", ferrs).Msg("page window validation failed")
		return display.PageWindow{}, newInvalidInput(ferrs)
	}

	if total > 0 && (current < 1 || current > total) {
		s.log.Warn().Int("current", current).Int("total", total).Msg("current page outside range, window clamped")
	}
	w, err := display.ComputePageWindowSize(current, total, maxVisible)
	if err != nil {
		s.log.Debug().Err(err).Int("max", maxVisible).Msg("page window size rejected")
		return display.PageWindow{}, err
	}
	return w, nil
}

// ListingWindow locates a limit/offset page among all pages of the listing.
func (s *paginationService) ListingWindow(ctx context.Context, page model.Page, totalItems int) (model.ListingPage, error) {
	if totalItems < 0 {
		return model.ListingPage{}, newInvalidInput([]FieldError{{Field: "total_items", Message: "must be >= 0"}})
	}
	p := normalizePage(page)
	current := p.Offset / p.Limit
	if current < math.MaxInt {
		current++
	}
	total := display.TotalPages(totalItems, p.Limit)

	w, err := s.Window(ctx, current, total)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("listing window failed")
		return model.ListingPage{}, err
	}
	return model.ListingPage{
		CurrentPage: current,
		TotalPages:  total,
		PerPage:     p.Limit,
		TotalItems:  totalItems,
		Window:      w,
	}, nil
}
