package catalog

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

func TestParsePriceCents(t *testing.T) {
	tests := []struct {
		input    string
		expected *int64
	}{
		{input: "$45.99", expected: cents(4599)},
		{input: " $1,234.50 ", expected: cents(123450)},
		{input: "12", expected: cents(1200)},
		{input: "$0.10", expected: cents(10)},
		{input: "-", expected: nil},
		{input: "$-", expected: nil},
		{input: "", expected: nil},
		{input: "N/A", expected: nil},
		{input: "-5.00", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parsePriceCents(tt.input))
		})
	}
}

func TestParsePrices(t *testing.T) {
	raw := loadFixture(t, "mario_kart_64.html")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	require.NoError(t, err)

	prices := parsePrices(doc)
	assert.Len(t, prices, 3)
	assert.Equal(t, cents(123450), prices[domain.ConditionComplete])
	assert.Nil(t, prices[domain.ConditionNew])
	assert.Equal(t, cents(4599), prices[domain.ConditionLoose])
}

func TestParsePrices_AllMissing(t *testing.T) {
	raw := loadFixture(t, "prices_all_missing.html")
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
	require.NoError(t, err)

	result := &domain.PriceFetchResult{Prices: parsePrices(doc)}
	assert.True(t, result.AllNull())
}

func cents(v int64) *int64 {
	return &v
}
