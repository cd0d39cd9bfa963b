package display

import "fmt"

// DefaultMaxVisiblePages is the window size used when the caller does not pick one.
const DefaultMaxVisiblePages = 3

// PageWindow is the contiguous run of page numbers shown in a pager.
type PageWindow struct {
	Pages                []int `json:"visible_page_numbers"`
	ShowTrailingEllipsis bool  `json:"show_trailing_ellipsis"`
}

// ComputePageWindow is ComputePageWindowSize with DefaultMaxVisiblePages.
func ComputePageWindow(current, total int) PageWindow {
	w, _ := ComputePageWindowSize(current, total, DefaultMaxVisiblePages)
	return w
}

// ComputePageWindowSize returns up to maxVisible pages starting at current.
// When the window would run past the last page it slides left so it stays
// full. current below 1 is treated as 1 and current beyond total lands on
// the right edge; neither is an error. Only a non-positive maxVisible is.
func ComputePageWindowSize(current, total, maxVisible int) (PageWindow, error) {
	if maxVisible <= 0 {
		return PageWindow{}, fmt.Errorf("%w: max visible pages must be > 0, got %d", ErrInvalidConfiguration, maxVisible)
	}
	if total <= maxVisible {
		return PageWindow{Pages: pageRange(1, total)}, nil
	}

	// clamp start before adding so a huge current cannot overflow end
	start := min(max(current, 1), total-maxVisible+1)
	end := start + maxVisible - 1

	return PageWindow{
		Pages:                pageRange(start, end),
		ShowTrailingEllipsis: end < total,
	}, nil
}

// TotalPages is the number of pages needed for totalItems at perPage items each.
func TotalPages(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return (totalItems-1)/perPage + 1
}

// pageRange returns [from, to]; empty (non-nil) when to < from.
func pageRange(from, to int) []int {
	if to < from {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		out = append(out, p)
	}
	return out
}
