// Package display turns raw values the storefront already has (an auction
// end instant, a page index) into bounded structures ready for rendering.
// Everything here is a pure function of its arguments; the only ambient
// input is the Clock, which callers can replace.
package display

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInstant means a countdown target could not be resolved to a point in time.
	ErrInvalidInstant = errors.New("invalid instant")
	// ErrInvalidConfiguration means a window was requested with a non-positive size.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// Clock provides the current instant.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time { return time.Now() }

// FixedClock always reports t. Handy in tests and for replaying a render tick.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func (c Clock) now() time.Time {
	if c == nil {
		return SystemClock()
	}
	return c()
}
