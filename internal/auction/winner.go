// Package auction settles closed auctions from bids the caller has already loaded.
package auction

import (
	"time"

	"github.com/maxviazov/auction-display-service/internal/model"
)

// SelectWinner picks the highest bid, equal amounts going to the earliest one.
// The second result is false when there are no bids or when that top bid no
// longer has a bidder; a lower bid never inherits the item.
func SelectWinner(bids []model.Bid) (model.Bid, bool) {
	if len(bids) == 0 {
		return model.Bid{}, false
	}
	best := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > best.Amount || (b.Amount == best.Amount && b.CreatedAt.Before(best.CreatedAt)) {
			best = b
		}
	}
	if best.BidderID == nil {
		return model.Bid{}, false
	}
	return best, true
}

// EndingOn returns the unsettled items whose auction closes on the calendar
// day of day, as seen in loc. A nil loc means UTC.
func EndingOn(items []model.Item, day time.Time, loc *time.Location) []model.Item {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := day.In(loc).Date()

	var out []model.Item
	for _, it := range items {
		if it.WinnerID != nil || it.AuctionEndDate.IsZero() {
			continue
		}
		iy, im, id := it.AuctionEndDate.In(loc).Date()
		if iy == y && im == m && id == d {
			out = append(out, it)
		}
	}
	return out
}
