package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{6, 3, 2},
		{-7, 2, -4},
		{-6, 3, -2},
		{7, -2, -4},
		{-1, 1000, -1},
		{0, 5, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "%d / %d", tt.a, tt.b)
	}
}

func TestFaceSetNearest(t *testing.T) {
	faces, err := NewFaceSet(8, 2, 4, 6)
	require.NoError(t, err)

	tests := []struct {
		in, want int
	}{
		{-3, 2},
		{1, 2},
		{2, 2},
		{3, 2},
		{4, 4},
		{5, 4},
		{7, 6},
		{8, 8},
		{50, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, faces.nearest(tt.in), "nearest(%d)", tt.in)
	}
}
