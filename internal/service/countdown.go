package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/model"
)

type countdownService struct {
	clock display.Clock
	log   zerolog.Logger
}

// NewCountdownService wires a countdown service. A nil clock reads the wall clock.
func NewCountdownService(clock display.Clock, logger zerolog.Logger) CountdownService {
	if clock == nil {
		clock = display.SystemClock
	}
	l := logger.With().Str("module", "service").Str("component", "countdown").Logger()
	return &countdownService{clock: clock, log: l}
}

// Compute parses rawEnd and returns the countdown to it. Unparseable input
// surfaces display.ErrInvalidInstant to the caller rather than reading as "ended".
func (s *countdownService) Compute(_ context.Context, rawEnd string) (model.CountdownView, error) {
	end, err := display.ParseInstant(rawEnd)
	if err != nil {
		s.log.Debug().Str("end_raw", rawEnd).Err(err).Msg("countdown target rejected")
		return model.CountdownView{}, err
	}
	return s.view("", end), nil
}

func (s *countdownService) ForItem(_ context.Context, item model.Item) (model.CountdownView, error) {
	if item.AuctionEndDate.IsZero() {
		s.log.Debug().Str("item_id", item.ID).Msg("item has no auction end date")
		return model.CountdownView{}, errors.Join(
			display.ErrInvalidInstant,
			newInvalidInput([]FieldError{{Field: "auction_end_date", Message: "must be set"}}),
		)
	}
	return s.view(item.ID, item.AuctionEndDate), nil
}

func (s *countdownService) view(itemID string, end time.Time) model.CountdownView {
	c := display.CountdownUntil(end, s.clock)
	return model.CountdownView{
		ItemID:    itemID,
		EndsAt:    end,
		Ended:     c.Ended(),
		Remaining: c,
		Padded:    c.Padded(),
	}
}
