package collection

import (
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

// gameNames adapts logical games to a fuzzy search source
type gameNames []schema.LogicalGame

func (g gameNames) String(i int) string {
	return foldName(g[i].Name)
}

func (g gameNames) Len() int {
	return len(g)
}

// foldName lowercases and removes diacritics so "Pokémon" and "Pokemon" compare equal
func foldName(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// nearDuplicates returns the games whose name fuzzily matches name in either direction.
// The game with excludeID is skipped.
func nearDuplicates(name string, excludeID uint64, games []schema.LogicalGame) []schema.LogicalGame {
	others := make(gameNames, 0, len(games))
	for _, g := range games {
		if g.ID != excludeID {
			others = append(others, g)
		}
	}
	if len(others) == 0 {
		return nil
	}

	folded := foldName(name)
	matched := make(map[int]bool)
	for _, m := range fuzzy.FindFrom(folded, others) {
		matched[m.Index] = true
	}
	// The new name may be the longer of the two
	for i := range others {
		if !matched[i] && len(fuzzy.Find(others.String(i), []string{folded})) > 0 {
			matched[i] = true
		}
	}

	var result []schema.LogicalGame
	for i, g := range others {
		if matched[i] {
			result = append(result, g)
		}
	}
	return result
}
