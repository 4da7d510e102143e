// Package paging computes offset pagination windows for list views.
package paging

import (
	"slices"
	"strconv"
	"strings"
)

// DefaultSize is the page size used when none is selected.
const DefaultSize = 10

// Sizes returns the selectable page sizes.
func Sizes() []int {
	return []int{10, 25, 50}
}

// ParseSize returns the selected page size, or DefaultSize when raw is not
// one of Sizes.
func ParseSize(raw string) int {
	size, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || !slices.Contains(Sizes(), size) {
		return DefaultSize
	}
	return size
}

// ParsePage returns the 1-based page number, defaulting to 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Window is one page of a list of Total items.
type Window struct {
	Page  int
	Size  int
	Total int
	Pages int
	Start int
	End   int
}

// NewWindow clamps page into range and computes the item bounds.
func NewWindow(total, page, size int) Window {
	if size <= 0 {
		size = DefaultSize
	}
	if total < 0 {
		total = 0
	}
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	page = min(max(page, 1), pages)
	start := min((page-1)*size, total)
	end := min(start+size, total)
	return Window{Page: page, Size: size, Total: total, Pages: pages, Start: start, End: end}
}

// HasPrevious reports whether an earlier page exists.
func (w Window) HasPrevious() bool { return w.Page > 1 }

// HasNext reports whether a later page exists.
func (w Window) HasNext() bool { return w.Page < w.Pages }

// Slice returns the items inside w.
func Slice[T any](items []T, w Window) []T {
	if w.Start >= len(items) {
		return nil
	}
	return items[w.Start:min(w.End, len(items))]
}
