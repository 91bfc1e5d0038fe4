package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

// RunStats is the digest of one price_refresh_runs row
type RunStats struct {
	RunID      string
	Running    bool
	StartedAt  time.Time
	FinishedAt *time.Time
	Duration   time.Duration
	Selected   int
	Succeeded  int
	Failed     int
	// Failures grouped by reason, reasons sorted by count then name
	Reasons []ReasonGroup
}

// ReasonGroup holds the failed items sharing one reason
type ReasonGroup struct {
	Reason string
	Items  []schema.FailedRefreshItem
}

// buildStats digests a run. now is used as the end of a run that is still going.
func buildStats(run *schema.PriceRefreshRun, now time.Time) (*RunStats, error) {
	stats := &RunStats{
		RunID:      run.RunID,
		Running:    run.FinishedAt == nil,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
		Selected:   run.Selected,
		Succeeded:  run.Succeeded,
		Failed:     run.Failed,
	}

	end := now
	if run.FinishedAt != nil {
		end = *run.FinishedAt
	}
	stats.Duration = end.Sub(run.StartedAt)

	var items []schema.FailedRefreshItem
	if len(run.FailedItems) > 0 {
		if err := json.Unmarshal(run.FailedItems, &items); err != nil {
			return nil, fmt.Errorf("failed to decode failed items of run %s: %w", run.RunID, err)
		}
	}

	byReason := make(map[string][]schema.FailedRefreshItem)
	for _, item := range items {
		byReason[item.Reason] = append(byReason[item.Reason], item)
	}
	for reason, grouped := range byReason {
		stats.Reasons = append(stats.Reasons, ReasonGroup{Reason: reason, Items: grouped})
	}
	sort.Slice(stats.Reasons, func(i, j int) bool {
		if len(stats.Reasons[i].Items) != len(stats.Reasons[j].Items) {
			return len(stats.Reasons[i].Items) > len(stats.Reasons[j].Items)
		}
		return stats.Reasons[i].Reason < stats.Reasons[j].Reason
	})

	return stats, nil
}

func formatStatus(stats *RunStats) string {
	emoji := outcomeEmoji(stats.Succeeded, stats.Failed, stats.Running)
	switch {
	case stats.Running:
		return emoji + " RUNNING"
	case stats.Failed > stats.Succeeded:
		return emoji + " FAILED"
	case stats.Failed > 0:
		return emoji + " PARTIAL"
	}
	return emoji + " SUCCEEDED"
}

// printRunStats writes the console report
func printRunStats(w io.Writer, stats *RunStats) {
	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "Run:         %s\n", stats.RunID)
	fmt.Fprintf(w, "  Status:    %s\n", formatStatus(stats))
	fmt.Fprintf(w, "  Started:   %s\n", stats.StartedAt.UTC().Format("2006-01-02 15:04:05"))
	if stats.FinishedAt != nil {
		fmt.Fprintf(w, "  Finished:  %s\n", stats.FinishedAt.UTC().Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(w, "  Duration:  %s\n", formatDuration(stats.Duration))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Games:\n")
	fmt.Fprintf(w, "  Selected:  %d\n", stats.Selected)
	fmt.Fprintf(w, "  Succeeded: %d (%s)\n", stats.Succeeded, percentageString(stats.Succeeded, stats.Selected))
	fmt.Fprintf(w, "  Failed:    %d (%s)\n", stats.Failed, percentageString(stats.Failed, stats.Selected))
	fmt.Fprintf(w, "  Rate:      %s\n", formatRate(stats.Succeeded+stats.Failed, stats.Duration))
	fmt.Fprintln(w)

	if len(stats.Reasons) == 0 {
		fmt.Fprintln(w, "No failures recorded.")
		fmt.Fprintln(w, strings.Repeat("-", 80))
		return
	}

	fmt.Fprintln(w, "Failures:")
	for _, group := range stats.Reasons {
		fmt.Fprintf(w, "  %s (%d)\n", group.Reason, len(group.Items))
		for _, item := range group.Items {
			fmt.Fprintf(w, "    - %s [%s] game %d\n", item.Name, item.CatalogID, item.LogicalGameID)
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", 80))
}

// renderMarkdown returns the markdown report
func renderMarkdown(stats *RunStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Price Refresh Report\n\n")
	fmt.Fprintf(&b, "**Run ID:** `%s`  \n", stats.RunID)
	fmt.Fprintf(&b, "**Status:** %s  \n", formatStatus(stats))
	fmt.Fprintf(&b, "**Started:** %s  \n", stats.StartedAt.UTC().Format(time.RFC3339))
	if stats.FinishedAt != nil {
		fmt.Fprintf(&b, "**Finished:** %s  \n", stats.FinishedAt.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&b, "**Duration:** %s\n\n", formatDuration(stats.Duration))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Count | Share |\n")
	b.WriteString("|--------|-------|-------|\n")
	fmt.Fprintf(&b, "| Selected | %d | - |\n", stats.Selected)
	fmt.Fprintf(&b, "| Succeeded | %d | %s |\n", stats.Succeeded, percentageString(stats.Succeeded, stats.Selected))
	fmt.Fprintf(&b, "| Failed | %d | %s |\n", stats.Failed, percentageString(stats.Failed, stats.Selected))
	b.WriteString("\n")

	if len(stats.Reasons) == 0 {
		return b.String()
	}

	b.WriteString("## Failures\n\n")
	b.WriteString("| Reason | Game | Catalog ID | Logical Game |\n")
	b.WriteString("|--------|------|------------|--------------|\n")
	for _, group := range stats.Reasons {
		for _, item := range group.Items {
			fmt.Fprintf(&b, "| %s | %s | `%s` | %d |\n",
				group.Reason, strings.ReplaceAll(item.Name, "|", "\\|"), item.CatalogID, item.LogicalGameID)
		}
	}
	b.WriteString("\n")

	return b.String()
}
