package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		def         Condition
		expected    Condition
		expectError bool
	}{
		{name: "empty uses default", input: "", def: ConditionComplete, expected: ConditionComplete},
		{name: "mixed case", input: " Loose ", def: ConditionComplete, expected: ConditionLoose},
		{name: "new", input: "new", def: ConditionComplete, expected: ConditionNew},
		{name: "unknown condition", input: "mint", def: ConditionComplete, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCondition(tt.input, tt.def)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidCondition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestPriceFetchResult_AllNull(t *testing.T) {
	price := int64(1299)

	assert.True(t, (&PriceFetchResult{Prices: map[Condition]*int64{}}).AllNull())
	assert.True(t, (&PriceFetchResult{Prices: map[Condition]*int64{ConditionNew: nil}}).AllNull())
	assert.False(t, (&PriceFetchResult{Prices: map[Condition]*int64{ConditionLoose: &price}}).AllNull())
}

func TestIsPlaceholder(t *testing.T) {
	assert.True(t, IsPlaceholder(PLACEHOLDER_CATALOG_ID))
	assert.True(t, IsPlaceholder("Unknown name"))
	assert.False(t, IsPlaceholder("Mario Kart 64"))
}
