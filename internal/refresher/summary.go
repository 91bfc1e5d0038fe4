package refresher

import (
	"fmt"
	"time"

	"github.com/feral-file/ff-game-pricer/internal/store"
	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

// Summary is the outcome of one batch refresh
type Summary struct {
	RunID      string                     `json:"run_id"`
	DryRun     bool                       `json:"dry_run"`
	Selected   int                        `json:"selected"`
	Succeeded  int                        `json:"succeeded"`
	Failed     int                        `json:"failed"`
	Failures   []schema.FailedRefreshItem `json:"failures,omitempty"`
	Preview    []string                   `json:"preview,omitempty"`
	StartedAt  time.Time                  `json:"started_at"`
	FinishedAt time.Time                  `json:"finished_at"`

	// recorded is set once the run row exists
	recorded bool
}

// ExitCode is 1 only when failures outnumber successes
func (s *Summary) ExitCode() int {
	if s.Failed > s.Succeeded {
		return 1
	}
	return 0
}

func (s *Summary) String() string {
	if s.DryRun {
		return fmt.Sprintf("dry run: %d games selected", s.Selected)
	}
	return fmt.Sprintf("run %s: %d selected, %d succeeded, %d failed", s.RunID, s.Selected, s.Succeeded, s.Failed)
}

func (s *Summary) fail(game store.EligibleGame, reason string) {
	s.Failed++
	s.Failures = append(s.Failures, schema.FailedRefreshItem{
		LogicalGameID: game.LogicalGameID,
		CatalogID:     game.CatalogID,
		Name:          game.Name,
		Reason:        reason,
	})
}
