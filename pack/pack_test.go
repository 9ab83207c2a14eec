package pack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformItems(n, w, h int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{Name: string(rune('a' + i)), W: w, H: h}
	}
	return items
}

func TestMaxWidth(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  int
	}{
		{
			// round(sqrt(40 * 10)) = 20
			"four squares",
			uniformItems(4, 10, 10),
			20,
		},
		{
			// heuristic gives 34, clamped up to fit the 100 wide sprite
			"wide outlier",
			[]Item{{"wide", 100, 10}, {"a", 5, 10}, {"b", 5, 10}, {"c", 5, 10}},
			102,
		},
		{
			// sqrt(8 * 8) fits the sprite exactly, no clamp
			"single sprite",
			[]Item{{"only", 8, 8}},
			8,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MaxWidth(tt.items)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxWidthEmpty(t *testing.T) {
	_, err := MaxWidth(nil)
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestPackEmpty(t *testing.T) {
	_, err := Pack(nil, 64)
	assert.ErrorIs(t, err, ErrEmptySheet)
}

func TestPackTooWide(t *testing.T) {
	_, err := Pack([]Item{{"banner", 30, 4}}, 20)

	var fitErr *FitError
	require.ErrorAs(t, err, &fitErr)
	assert.Equal(t, "banner", fitErr.Name)
	assert.Equal(t, 30, fitErr.Width)
	assert.Equal(t, 20, fitErr.MaxWidth)
}

func TestPackPlacements(t *testing.T) {
	items := []Item{
		{"a", 10, 10},
		{"b", 6, 4},
		{"c", 10, 2},
		{"d", 3, 9},
	}

	atlas, err := Pack(items, 16)
	require.NoError(t, err)
	require.Len(t, atlas.Placements, len(items))

	for i, p := range atlas.Placements {
		// input order and dimensions survive; nothing is rotated
		assert.Equal(t, items[i].Name, p.Name)
		assert.Equal(t, items[i].W, p.W)
		assert.Equal(t, items[i].H, p.H)

		assert.GreaterOrEqual(t, p.X, 0)
		assert.GreaterOrEqual(t, p.Y, 0)
		assert.LessOrEqual(t, p.X+p.W, atlas.Width)
		assert.LessOrEqual(t, p.Y+p.H, atlas.Height)
	}
}

func TestPackNoOverlap(t *testing.T) {
	items := []Item{
		{"a", 7, 3}, {"b", 4, 9}, {"c", 12, 2}, {"d", 5, 5},
		{"e", 2, 2}, {"f", 9, 6}, {"g", 1, 11}, {"h", 6, 6},
	}

	atlas, err := Pack(items, 14)
	require.NoError(t, err)

	overlaps := func(a, b Placement) bool {
		return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
	}
	for i := range atlas.Placements {
		for j := i + 1; j < len(atlas.Placements); j++ {
			a, b := atlas.Placements[i], atlas.Placements[j]
			assert.Falsef(t, overlaps(a, b), "%q at (%d,%d) overlaps %q at (%d,%d)", a.Name, a.X, a.Y, b.Name, b.X, b.Y)
		}
	}
}

func TestPackDeterministic(t *testing.T) {
	items := []Item{
		{"a", 7, 3}, {"b", 4, 9}, {"c", 12, 2}, {"d", 5, 5}, {"e", 9, 6},
	}

	first, err := Pack(items, 14)
	require.NoError(t, err)
	second, err := Pack(items, 14)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPackHeightGrows(t *testing.T) {
	// ten full-width strips have to stack vertically
	items := make([]Item, 10)
	for i := range items {
		items[i] = Item{Name: string(rune('a' + i)), W: 8, H: 2}
	}

	atlas, err := Pack(items, 8)
	require.NoError(t, err)
	assert.Equal(t, 20, atlas.Height)
}
