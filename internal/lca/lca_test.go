package lca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		symbols   string
		threshold float64
		want      Window
	}{
		{
			name:      "leading run wins",
			symbols:   "||||....||",
			threshold: DefaultThreshold,
			want:      Window{Start: 0, End: 3, Length: 4},
		},
		{
			name:      "empty",
			symbols:   "",
			threshold: DefaultThreshold,
			want:      Window{},
		},
		{
			name:      "all mismatches",
			symbols:   ".....",
			threshold: DefaultThreshold,
			want:      Window{},
		},
		{
			name:      "longest run is not leftmost",
			symbols:   "||.|||||",
			threshold: DefaultThreshold,
			want:      Window{Start: 3, End: 7, Length: 5},
		},
		{
			name:      "leftmost of equal runs",
			symbols:   "|||.|||",
			threshold: DefaultThreshold,
			want:      Window{Start: 0, End: 2, Length: 3},
		},
		{
			name:      "lower threshold bridges a mismatch",
			symbols:   "||.||",
			threshold: 0.8,
			want:      Window{Start: 0, End: 4, Length: 5},
		},
		{
			name:      "gaps count against identity",
			symbols:   "|-|",
			threshold: DefaultThreshold,
			want:      Window{Start: 0, End: 0, Length: 1},
		},
		{
			name:      "unknown symbols are bridged",
			symbols:   "||  ||",
			threshold: DefaultThreshold,
			want:      Window{Start: 0, End: 5, Length: 6},
		},
		{
			name:      "only unknown symbols",
			symbols:   "   ",
			threshold: DefaultThreshold,
			want:      Window{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(tt.symbols, tt.threshold)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowShift(t *testing.T) {
	w := Window{Start: 1, End: 4, Length: 4}
	assert.Equal(t, Window{Start: 11, End: 14, Length: 4}, w.Shift(10))
	assert.Equal(t, Window{}, Window{}.Shift(10))
	assert.True(t, Window{}.Empty())
	assert.False(t, w.Empty())
}
