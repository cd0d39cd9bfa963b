// Package model contains the DTOs passed between the handler, service and calculator layers.
// I keep it lean and focused on data shapes; the only behavior is JSON decoding.
package model

import (
	"encoding/json"
	"time"

	"github.com/maxviazov/auction-display-service/internal/display"
)

// Item is an auction listing as the storefront API returns it.
type Item struct {
	ID             string    `json:"id"`
	Title          string    `json:"title" validate:"required"`
	Description    string    `json:"description"`
	MinimumBid     float64   `json:"minimum_bid" validate:"gte=0"`
	CurrentBid     float64   `json:"current_bid" validate:"gte=0"`
	AuctionEndDate time.Time `json:"auction_end_date"`
	CreatedAt      time.Time `json:"created_at"`
	ItemImage      string    `json:"item_image,omitempty"`
	// WinnerID is set once the auction has been settled.
	WinnerID *int64 `json:"auction_winner,omitempty"`
}

// UnmarshalJSON accepts auction_end_date in any form display.ParseInstant
// understands, so date-only values from the storefront API decode too.
// An absent, null or empty value leaves the zero time.
func (it *Item) UnmarshalJSON(data []byte) error {
	type plain Item
	aux := struct {
		*plain
		AuctionEndDate *string `json:"auction_end_date"`
	}{plain: (*plain)(it)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	it.AuctionEndDate = time.Time{}
	if aux.AuctionEndDate == nil || *aux.AuctionEndDate == "" {
		return nil
	}
	end, err := display.ParseInstant(*aux.AuctionEndDate)
	if err != nil {
		return err
	}
	it.AuctionEndDate = end
	return nil
}

// Bid is a single offer on an item. BidderID is nil when the bidder account is gone.
type Bid struct {
	ID        int64     `json:"id"`
	ItemID    string    `json:"item_id"`
	BidderID  *int64    `json:"bidder_id"`
	Amount    float64   `json:"bid_amount" validate:"gte=0"`
	CreatedAt time.Time `json:"created_at"`
}

// Page represents a simple limit/offset window for listing operations.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// CountdownView is what an item card renders: the raw breakdown plus padded strings.
type CountdownView struct {
	ItemID    string                  `json:"item_id,omitempty"`
	EndsAt    time.Time               `json:"ends_at"`
	Ended     bool                    `json:"ended"`
	Remaining display.Countdown       `json:"remaining"`
	Padded    display.PaddedCountdown `json:"padded"`
}

// ListingPage describes where a limit/offset listing sits among its pages.
type ListingPage struct {
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	PerPage     int                `json:"per_page"`
	TotalItems  int                `json:"total_items"`
	Window      display.PageWindow `json:"window"`
}
