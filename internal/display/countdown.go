package display

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Countdown is the remaining time until an auction closes, split into whole units.
// Hours, Minutes and Seconds are always within a single unit of the next field.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// PaddedCountdown holds every field of a Countdown as a two-digit string.
type PaddedCountdown struct {
	Days    string `json:"days"`
	Hours   string `json:"hours"`
	Minutes string `json:"minutes"`
	Seconds string `json:"seconds"`
}

// ComputeCountdown returns the time left from reference until target.
// A target at or before reference yields the zero Countdown; sub-second
// remainders are floored.
func ComputeCountdown(target, reference time.Time) Countdown {
	rem := target.Sub(reference).Milliseconds()
	if rem <= 0 {
		return Countdown{}
	}

	days := rem / msPerDay
	rem %= msPerDay
	hours := rem / msPerHour
	rem %= msPerHour
	minutes := rem / msPerMinute
	rem %= msPerMinute
	seconds := rem / msPerSecond

	return Countdown{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(seconds),
	}
}

// CountdownUntil computes the countdown against clock. A nil clock reads the wall clock.
func CountdownUntil(target time.Time, clock Clock) Countdown {
	return ComputeCountdown(target, clock.now())
}

// CountdownFromString parses raw with ParseInstant and computes the countdown against clock.
func CountdownFromString(raw string, clock Clock) (Countdown, error) {
	target, err := ParseInstant(raw)
	if err != nil {
		return Countdown{}, err
	}
	return CountdownUntil(target, clock), nil
}

// instantLayouts are tried in order. Layouts without a zone are read as UTC.
// Fractional seconds are accepted after any seconds field.
var instantLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseInstant resolves the string forms an auction end date arrives in:
// RFC 3339 timestamps, zone-less date-times and bare dates (midnight UTC).
func ParseInstant(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidInstant)
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, raw)
}

// Ended reports whether every field is zero.
func (c Countdown) Ended() bool {
	return c == Countdown{}
}

// Padded formats every field with FormatField.
func (c Countdown) Padded() PaddedCountdown {
	return PaddedCountdown{
		Days:    FormatField(c.Days),
		Hours:   FormatField(c.Hours),
		Minutes: FormatField(c.Minutes),
		Seconds: FormatField(c.Seconds),
	}
}

// String renders the countdown as DD:HH:MM:SS.
func (c Countdown) String() string {
	p := c.Padded()
	return p.Days + ":" + p.Hours + ":" + p.Minutes + ":" + p.Seconds
}

// FormatField zero-pads n to two digits. Values outside [0,99] are returned
// as their plain decimal form, never truncated or clamped.
func FormatField(n int) string {
	if n >= 0 && n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
