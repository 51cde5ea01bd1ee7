// Package pagination implements the shared list-page contract: page >= 1,
// size in [1,100], newest rows first.
package pagination

import "strconv"

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// Params holds normalized list paging parameters.
type Params struct {
	Page int
	Size int
}

// FromQuery parses page and size query values, falling back to defaults and
// clamping size into [1,MaxSize]. Non-numeric input behaves like absent
// input.
func FromQuery(pageStr, sizeStr string) Params {
	page := DefaultPage
	if v, err := strconv.Atoi(pageStr); err == nil && v >= 1 {
		page = v
	}

	size := DefaultSize
	if v, err := strconv.Atoi(sizeStr); err == nil && v >= 1 {
		size = v
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Params{Page: page, Size: size}
}

// Offset returns the row offset for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// Limit returns the page size.
func (p Params) Limit() int {
	return p.Size
}
