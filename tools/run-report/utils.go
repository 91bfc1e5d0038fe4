// Package main provides helper functions for the run-report CLI
package main

import (
	"fmt"
	"time"
)

// formatRate formats a throughput in games per minute
func formatRate(count int, duration time.Duration) string {
	if duration <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f/min", float64(count)/duration.Minutes())
}

// percentageString calculates and formats a percentage
func percentageString(part, total int) string {
	if total == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(part)/float64(total)*100)
}

// outcomeEmoji summarizes a run: running, clean, partial or failing
func outcomeEmoji(succeeded, failed int, running bool) string {
	switch {
	case running:
		return "🟡"
	case failed > succeeded:
		return "❌"
	case failed > 0:
		return "⚠️"
	case succeeded > 0:
		return "✅"
	}
	return "⚪"
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
