package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/auction-display-service/internal/auction"
	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/model"
)

type auctionService struct {
	clock display.Clock
	loc   *time.Location
	log   zerolog.Logger
}

// NewAuctionService wires auction settlement. Calendar days are evaluated in loc (UTC when nil).
func NewAuctionService(clock display.Clock, loc *time.Location, logger zerolog.Logger) AuctionService {
	if clock == nil {
		clock = display.SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	l := logger.With().Str("module", "service").Str("component", "auction").Logger()
	return &auctionService{clock: clock, loc: loc, log: l}
}

func (s *auctionService) Winner(_ context.Context, itemID string, bids []model.Bid) (model.Bid, error) {
	start := time.Now()
	itemID = strings.TrimSpace(itemID)

	var ferrs []FieldError
	if itemID == "" {
		ferrs = append(ferrs, FieldError{Field: "item_id", Message: "must not be empty"})
	}
	for i, b := range bids {
		prefix := fmt.Sprintf("bids[%d]", i)
		ferrs = append(ferrs, structFieldErrors(prefix, b)...)
		if itemID != "" && b.ItemID != "" && b.ItemID != itemID {
			ferrs = append(ferrs, FieldError{Field: prefix + ".item_id", Message: "belongs to another item"})
		}
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("item_id", itemID).Interface("field_errors", ferrs).Msg("winner validation failed")
		return model.Bid{}, err
	}

	winner, ok := auction.SelectWinner(bids)
	if !ok {
		s.log.Info().Str("item_id", itemID).Int("bids", len(bids)).Msg("no qualifying bid")
		return model.Bid{}, ErrNotFound
	}
	s.log.Info().Dur("took", time.Since(start)).Str("item_id", itemID).Int64("bid_id", winner.ID).Msg("winner selected")
	return winner, nil
}

// DueForSettlement returns the unsettled items whose auction ends today.
func (s *auctionService) DueForSettlement(_ context.Context, items []model.Item) ([]model.Item, error) {
	var ferrs []FieldError
	for i, it := range items {
		ferrs = append(ferrs, structFieldErrors(fmt.Sprintf("items[%d]", i), it)...)
	}
	if err := newInvalidInput(ferrs); err != nil {
		return nil, err
	}
	due := auction.EndingOn(items, s.clock(), s.loc)
	s.log.Debug().Int("items", len(items)).Int("due", len(due)).Msg("settlement candidates")
	return due, nil
}
