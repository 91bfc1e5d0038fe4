package refresher

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/feral-file/ff-game-pricer/internal/store"
)

func TestSummaryExitCode(t *testing.T) {
	tests := []struct {
		succeeded, failed int
		expected          int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{2, 2, 0},
		{2, 3, 1},
		{0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.succeeded, tt.failed), func(t *testing.T) {
			s := &Summary{Succeeded: tt.succeeded, Failed: tt.failed}
			assert.Equal(t, tt.expected, s.ExitCode())
		})
	}
}

func TestPreview(t *testing.T) {
	priced := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("short selection", func(t *testing.T) {
		lines := preview([]store.EligibleGame{
			{Name: "Mario Kart 64", PlatformName: "Nintendo 64", CatalogID: "6910"},
			{Name: "Tetris", PlatformName: "Gameboy", CatalogID: "12", LastObservedAt: &priced},
		})
		assert.Equal(t, []string{
			"Mario Kart 64 (Nintendo 64) [6910], last priced never",
			"Tetris (Gameboy) [12], last priced 2024-01-02T03:04:05Z",
		}, lines)
	})

	t.Run("long selection is truncated", func(t *testing.T) {
		games := make([]store.EligibleGame, 25)
		for i := range games {
			games[i] = store.EligibleGame{Name: fmt.Sprintf("Game %d", i), PlatformName: "NES", CatalogID: fmt.Sprint(i)}
		}

		lines := preview(games)
		assert.Len(t, lines, 11)
		assert.Equal(t, "Game 9 (NES) [9], last priced never", lines[9])
		assert.Equal(t, "... and 15 more", lines[10])
	})

	t.Run("exactly the preview limit", func(t *testing.T) {
		games := make([]store.EligibleGame, 10)
		assert.Len(t, preview(games), 10)
	})

	t.Run("empty selection", func(t *testing.T) {
		assert.Empty(t, preview(nil))
	})
}
