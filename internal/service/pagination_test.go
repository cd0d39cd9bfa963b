package service_test

import (
	"context"
	"io"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/model"
	"github.com/maxviazov/auction-display-service/internal/service"
)

func TestPaginationService_Window(t *testing.T) {
	svc := service.NewPaginationService(3, zerolog.New(io.Discard))

	tests := []struct {
		name           string
		current, total int
		want           display.PageWindow
	}{
		{"configured size", 5, 10, display.PageWindow{Pages: []int{5, 6, 7}, ShowTrailingEllipsis: true}},
		{"slides near end", 9, 10, display.PageWindow{Pages: []int{8, 9, 10}}},
		{"out of range current is clamped", 40, 10, display.PageWindow{Pages: []int{8, 9, 10}}},
		{"max int current stays on the right edge", math.MaxInt, 10, display.PageWindow{Pages: []int{8, 9, 10}}},
		{"no pages", 1, 0, display.PageWindow{Pages: []int{}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.Window(context.Background(), tc.current, tc.total)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPaginationService_WindowSize(t *testing.T) {
	svc := service.NewPaginationService(3, zerolog.New(io.Discard))

	got, err := svc.WindowSize(context.Background(), 2, 10, 4)
	require.NoError(t, err)
	assert.Equal(t, display.PageWindow{Pages: []int{2, 3, 4, 5}, ShowTrailingEllipsis: true}, got)

	for _, size := range []int{0, -2} {
		_, err := svc.WindowSize(context.Background(), 1, 10, size)
		assert.ErrorIs(t, err, display.ErrInvalidConfiguration, "size %d", size)
	}
}

func TestPaginationService_Window_Validation(t *testing.T) {
	svc := service.NewPaginationService(3, zerolog.New(io.Discard))

	_, err := svc.WindowSize(context.Background(), 1, -1, 3)
	require.ErrorIs(t, err, service.ErrInvalidInput)

	fields := service.FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "total", fields[0].Field)
}

func TestPaginationService_DefaultSizeFallback(t *testing.T) {
	svc := service.NewPaginationService(0, zerolog.New(io.Discard))

	got, err := svc.Window(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, got.Pages, display.DefaultMaxVisiblePages)
}

func TestPaginationService_ListingWindow(t *testing.T) {
	svc := service.NewPaginationService(3, zerolog.New(io.Discard))

	got, err := svc.ListingWindow(context.Background(), model.Page{Limit: 20, Offset: 40}, 95)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CurrentPage)
	assert.Equal(t, 5, got.TotalPages)
	assert.Equal(t, 20, got.PerPage)
	assert.Equal(t, 95, got.TotalItems)
	assert.Equal(t, []int{3, 4, 5}, got.Window.Pages)
	assert.False(t, got.Window.ShowTrailingEllipsis)
}

func TestPaginationService_ListingWindow_NormalizesPage(t *testing.T) {
	svc := service.NewPaginationService(3, zerolog.New(io.Discard))

	got, err := svc.ListingWindow(context.Background(), model.Page{Limit: -5, Offset: -10}, 500)
	require.NoError(t, err)
	assert.Equal(t, 50, got.PerPage) // default limit
	assert.Equal(t, 1, got.CurrentPage)
	assert.Equal(t, 10, got.TotalPages)
	assert.Equal(t, []int{1, 2, 3}, got.Window.Pages)
	assert.True(t, got.Window.ShowTrailingEllipsis)
}

func TestPaginationService_ListingWindow_HugeLimitAndOffset(t *testing.T) {
	svc := service.NewPaginationService(3, zerolog.New(io.Discard))

	got, err := svc.ListingWindow(context.Background(), model.Page{Limit: math.MaxInt}, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalPages)
	assert.Equal(t, []int{1}, got.Window.Pages)

	got, err = svc.ListingWindow(context.Background(), model.Page{Limit: 1, Offset: math.MaxInt}, 10)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got.CurrentPage)
	assert.Equal(t, []int{8, 9, 10}, got.Window.Pages)
}

func TestPaginationService_ListingWindow_NegativeTotal(t *testing.T) {
	svc := service.NewPaginationService(3, zerolog.New(io.Discard))

	_, err := svc.ListingWindow(context.Background(), model.Page{Limit: 10}, -1)
	require.ErrorIs(t, err, service.ErrInvalidInput)
	fields := service.FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "total_items", fields[0].Field)
}
