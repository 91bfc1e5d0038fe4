package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/feral-file/ff-game-pricer/internal/domain"
)

// priceSelectors maps each condition to its price slot on the product page
var priceSelectors = map[domain.Condition]string{
	domain.ConditionComplete: "#complete_price > span.price.js-price",
	domain.ConditionNew:      "#new_price > span.price.js-price",
	domain.ConditionLoose:    "#used_price > span.price.js-price",
}

var priceCleaner = strings.NewReplacer("$", "", ",", "")

// parsePrices reads every price slot, a missing or unparsable slot is nil
func parsePrices(doc *goquery.Document) map[domain.Condition]*int64 {
	prices := make(map[domain.Condition]*int64, len(domain.PriceConditions))
	for _, c := range domain.PriceConditions {
		sel := doc.Find(priceSelectors[c]).First()
		if sel.Length() == 0 {
			prices[c] = nil
			continue
		}
		prices[c] = parsePriceCents(sel.Text())
	}
	return prices
}

// parsePriceCents converts "$1,234.56" into 123456 cents
// The "-" marker and anything unparsable yield nil
func parsePriceCents(text string) *int64 {
	text = strings.TrimSpace(priceCleaner.Replace(strings.TrimSpace(text)))
	if text == "" || text == "-" {
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}

	cents := int64(math.Round(value * 100))
	return &cents
}
