package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridOffsets(t *testing.T) {
	offsets := GridOffsets(GridConfig{Columns: 2, Rows: 2, Spacing: 2})
	assert.Equal(t, []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}, offsets)
}

func TestGridOffsets_SingleRow(t *testing.T) {
	offsets := GridOffsets(GridConfig{Columns: 3, Rows: 1, Spacing: 1.5})
	assert.Equal(t, []float32{-1.5, 0, 0, 0, 1.5, 0}, offsets)
}

func TestGridOffsets_Empty(t *testing.T) {
	assert.Empty(t, GridOffsets(GridConfig{}))
}

func TestGridOffsets_NegativeSize(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Empty(t, GridOffsets(GridConfig{Columns: -2, Rows: 3, Spacing: 1}))
	})
}

func TestGridConfig_Validate(t *testing.T) {
	assert.NoError(t, GridConfig{Columns: 1, Rows: 1}.Validate())
	assert.ErrorContains(t, GridConfig{Columns: 0, Rows: 4}.Validate(), "0x4")
	assert.ErrorContains(t, GridConfig{Columns: 3, Rows: -1}.Validate(), "3x-1")
}
