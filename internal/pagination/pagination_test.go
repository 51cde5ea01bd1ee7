package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name     string
		page     string
		size     string
		expected Params
	}{
		{"defaults", "", "", Params{Page: 1, Size: 10}},
		{"explicit values", "2", "25", Params{Page: 2, Size: 25}},
		{"page below one", "0", "10", Params{Page: 1, Size: 10}},
		{"negative page", "-3", "10", Params{Page: 1, Size: 10}},
		{"size clamped to max", "1", "500", Params{Page: 1, Size: 100}},
		{"size at max", "1", "100", Params{Page: 1, Size: 100}},
		{"zero size falls back", "1", "0", Params{Page: 1, Size: 10}},
		{"garbage input", "abc", "xyz", Params{Page: 1, Size: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromQuery(tt.page, tt.size))
		})
	}
}

// TestOffsetWindows verifies the window math over a 25-row collection
// ordered newest first: page 2 of size 10 covers ranks 11-20, page 3 the
// trailing 5 rows.
func TestOffsetWindows(t *testing.T) {
	const total = 25

	page2 := Params{Page: 2, Size: 10}
	assert.Equal(t, 10, page2.Offset())
	assert.Equal(t, 10, page2.Limit())

	remaining := total - page2.Offset()
	assert.GreaterOrEqual(t, remaining, page2.Limit(), "page 2 is full")

	page3 := Params{Page: 3, Size: 10}
	assert.Equal(t, 20, page3.Offset())
	assert.Equal(t, 5, total-page3.Offset(), "page 3 holds the last 5 rows")

	page4 := Params{Page: 4, Size: 10}
	assert.GreaterOrEqual(t, page4.Offset(), total, "page 4 is empty")
}
