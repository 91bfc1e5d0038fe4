package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-game-pricer/internal/domain"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

func TestIsBarcode(t *testing.T) {
	tests := []struct {
		source   string
		expected bool
	}{
		{"012345678905", true},
		{"0 12345 67890 5", true},
		{"978-3-16-148410-0", true},
		{"123", true},
		{"https://www.pricecharting.com/game/nintendo-64/mario-kart-64", false},
		{"mario kart", false},
		{"", false},
		{" - ", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.expected, isBarcode(tt.source))
		})
	}
}

func TestApplyPlaceholders(t *testing.T) {
	t.Run("complete identity is untouched", func(t *testing.T) {
		identity := &domain.ExtractedIdentity{CatalogID: "6910", Name: "Mario Kart 64", Platform: "Nintendo 64"}
		assert.Empty(t, applyPlaceholders(identity))
		assert.Equal(t, "6910", identity.CatalogID)
	})

	t.Run("every missing field is substituted", func(t *testing.T) {
		identity := &domain.ExtractedIdentity{Name: "  "}
		warnings := applyPlaceholders(identity)

		assert.Equal(t, domain.PLACEHOLDER_CATALOG_ID, identity.CatalogID)
		assert.Equal(t, "Unknown name", identity.Name)
		assert.Equal(t, "Unknown platform", identity.Platform)
		assert.Len(t, warnings, 3)
		assert.Equal(t, "catalog_id", warnings[0].Field)
		assert.Equal(t, "name", warnings[1].Field)
		assert.Equal(t, "platform", warnings[2].Field)
	})

	t.Run("degraded extraction is reported", func(t *testing.T) {
		identity := &domain.ExtractedIdentity{
			CatalogID: "a1b2c3d4e",
			Platform:  "Nintendo 64",
			IDSource:  domain.IDSourceURLHash,
			Degraded:  true,
		}
		warnings := applyPlaceholders(identity)

		assert.Len(t, warnings, 2)
		assert.Equal(t, "catalog_id", warnings[0].Field)
		assert.Contains(t, warnings[0].Message, domain.ErrExtraction.Error())
		assert.Equal(t, "a1b2c3d4e", identity.CatalogID)
		assert.Equal(t, "name", warnings[1].Field)
	})

	t.Run("url derived id is reported even with a name", func(t *testing.T) {
		identity := &domain.ExtractedIdentity{
			CatalogID: "a1b2c3d4e",
			Name:      "Mario Kart 64",
			Platform:  "Nintendo 64",
			IDSource:  domain.IDSourceURLHash,
		}
		warnings := applyPlaceholders(identity)

		assert.Len(t, warnings, 1)
		assert.Equal(t, "catalog_id", warnings[0].Field)
		assert.Contains(t, warnings[0].Message, "a1b2c3d4e")
		assert.NotContains(t, warnings[0].Message, domain.ErrExtraction.Error())
		assert.Equal(t, "a1b2c3d4e", identity.CatalogID)
	})
}

func TestFoldName(t *testing.T) {
	assert.Equal(t, "pokemon red", foldName(" Pokémon Red "))
	assert.Equal(t, "chrono trigger", foldName("CHRONO TRIGGER"))
}

func TestNearDuplicates(t *testing.T) {
	games := []schema.LogicalGame{
		{ID: 1, Name: "Pokemon Red", PlatformName: "Gameboy"},
		{ID: 2, Name: "Tetris", PlatformName: "Gameboy"},
		{ID: 3, Name: "Pokémon Red", PlatformName: "Gameboy"},
		{ID: 4, Name: "Pokemon Red Version", PlatformName: "Gameboy"},
	}

	t.Run("accents and longer titles match", func(t *testing.T) {
		matches := nearDuplicates("Pokémon Red", 3, games)
		var ids []uint64
		for _, g := range matches {
			ids = append(ids, g.ID)
		}
		assert.Equal(t, []uint64{1, 4}, ids)
	})

	t.Run("new name longer than existing", func(t *testing.T) {
		matches := nearDuplicates("Tetris DX", 99, games)
		if assert.Len(t, matches, 1) {
			assert.Equal(t, uint64(2), matches[0].ID)
		}
	})

	t.Run("unrelated name", func(t *testing.T) {
		assert.Empty(t, nearDuplicates("Zelda", 99, games))
	})

	t.Run("only the game itself", func(t *testing.T) {
		assert.Empty(t, nearDuplicates("Tetris", 2, games[1:2]))
	})
}
