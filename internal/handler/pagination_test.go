package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/auction-display-service/internal/display"
	"github.com/maxviazov/auction-display-service/internal/model"
)

func TestPaginationHandler_Window(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		target   string
		pages    []int
		ellipsis bool
	}{
		{"/api/v1/pages?current=1&total=2", []int{1, 2}, false},
		{"/api/v1/pages?current=5&total=10", []int{5, 6, 7}, true},
		{"/api/v1/pages?current=9&total=10", []int{8, 9, 10}, false},
		{"/api/v1/pages?total=10&max=5", []int{1, 2, 3, 4, 5}, true},
		{"/api/v1/pages?current=1&total=0", []int{}, false},
		{"/api/v1/pages?current=9223372036854775807&total=10", []int{8, 9, 10}, false},
		{"/api/v1/pages?current=3&total=10&max=", []int{3, 4, 5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.target, func(t *testing.T) {
			w := do(r, http.MethodGet, tc.target, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var got display.PageWindow
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tc.pages, got.Pages)
			assert.Equal(t, tc.ellipsis, got.ShowTrailingEllipsis)
		})
	}
}

func TestPaginationHandler_Window_Invalid(t *testing.T) {
	r := newRouter(t)

	cases := map[string]string{
		"missing total":   "/api/v1/pages?current=1",
		"non-numeric":     "/api/v1/pages?current=x&total=3",
		"negative total":  "/api/v1/pages?total=-1",
		"non-numeric max": "/api/v1/pages?total=4&max=two",
	}
	for name, target := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(r, http.MethodGet, target, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)
			p := decodeError(t, w)
			assert.Equal(t, "invalid_input", p.Error)
			assert.NotEmpty(t, p.FieldErrors)
		})
	}
}

func TestPaginationHandler_Window_InvalidSize(t *testing.T) {
	r := newRouter(t)

	for _, target := range []string{"/api/v1/pages?total=4&max=0", "/api/v1/pages?total=4&max=-2"} {
		w := do(r, http.MethodGet, target, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Equal(t, "invalid_configuration", decodeError(t, w).Error)
	}
}

func TestPaginationHandler_Listing(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/api/v1/listing/pages?limit=10&offset=40&total_items=95", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.ListingPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 5, got.CurrentPage)
	assert.Equal(t, 10, got.TotalPages)
	assert.Equal(t, 10, got.PerPage)
	assert.Equal(t, 95, got.TotalItems)
	assert.Equal(t, []int{5, 6, 7}, got.Window.Pages)
	assert.True(t, got.Window.ShowTrailingEllipsis)
}

func TestPaginationHandler_Listing_HugeLimit(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/api/v1/listing/pages?total_items=5&limit=9223372036854775807", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.ListingPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.TotalPages)
	assert.Equal(t, []int{1}, got.Window.Pages)
}

func TestPaginationHandler_Listing_MalformedPage(t *testing.T) {
	r := newRouter(t)

	cases := map[string]string{
		"limit":  "/api/v1/listing/pages?total_items=5&limit=abc",
		"offset": "/api/v1/listing/pages?total_items=5&offset=1.5",
	}
	for field, target := range cases {
		t.Run(field, func(t *testing.T) {
			w := do(r, http.MethodGet, target, nil)
			require.Equal(t, http.StatusBadRequest, w.Code)
			p := decodeError(t, w)
			assert.Equal(t, "invalid_input", p.Error)
			require.Len(t, p.FieldErrors, 1)
			assert.Equal(t, field, p.FieldErrors[0].Field)
		})
	}
}

func TestPaginationHandler_Listing_MissingTotal(t *testing.T) {
	r := newRouter(t)

	w := do(r, http.MethodGet, "/api/v1/listing/pages?limit=10", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_input", decodeError(t, w).Error)
}
