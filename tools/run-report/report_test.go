package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/feral-file/ff-game-pricer/internal/store/schema"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "milliseconds", duration: 500 * time.Millisecond, want: "500ms"},
		{name: "seconds", duration: 5 * time.Second, want: "5.00s"},
		{name: "minutes", duration: 2*time.Minute + 30*time.Second, want: "2m 30s"},
		{name: "hours", duration: 1*time.Hour + 15*time.Minute, want: "1h 15m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDuration(tt.duration); got != tt.want {
				t.Errorf("formatDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		duration time.Duration
		want     string
	}{
		{name: "one per minute", count: 10, duration: 10 * time.Minute, want: "1.00/min"},
		{name: "one per second", count: 30, duration: 30 * time.Second, want: "60.00/min"},
		{name: "zero duration", count: 10, duration: 0, want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRate(tt.count, tt.duration); got != tt.want {
				t.Errorf("formatRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPercentageString(t *testing.T) {
	if got := percentageString(1, 4); got != "25.00%" {
		t.Errorf("percentageString() = %v, want 25.00%%", got)
	}
	if got := percentageString(3, 0); got != "0.00%" {
		t.Errorf("percentageString() = %v, want 0.00%%", got)
	}
}

func TestOutcomeEmoji(t *testing.T) {
	tests := []struct {
		name      string
		succeeded int
		failed    int
		running   bool
		want      string
	}{
		{name: "running", running: true, want: "🟡"},
		{name: "failure majority", succeeded: 1, failed: 2, want: "❌"},
		{name: "partial", succeeded: 2, failed: 1, want: "⚠️"},
		{name: "tie is partial", succeeded: 1, failed: 1, want: "⚠️"},
		{name: "clean", succeeded: 5, want: "✅"},
		{name: "empty", want: "⚪"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcomeEmoji(tt.succeeded, tt.failed, tt.running); got != tt.want {
				t.Errorf("outcomeEmoji() = %v, want %v", got, tt.want)
			}
		})
	}
}

func finishedRun() *schema.PriceRefreshRun {
	started := time.Date(2024, 8, 15, 3, 0, 0, 0, time.UTC)
	finished := started.Add(3 * time.Minute)
	return &schema.PriceRefreshRun{
		RunID:      "01J5DQ8Z4M7E0W6R9X2C3V4B5N",
		StartedAt:  started,
		FinishedAt: &finished,
		Selected:   5,
		Succeeded:  2,
		Failed:     3,
		FailedItems: []byte(`[
			{"logical_game_id": 1, "catalog_id": "111", "name": "Zelda", "reason": "price write failed"},
			{"logical_game_id": 2, "catalog_id": "222", "name": "Mario | Deluxe", "reason": "price fetch failed"},
			{"logical_game_id": 3, "catalog_id": "333", "name": "Metroid", "reason": "price fetch failed"}
		]`),
	}
}

func TestBuildStats(t *testing.T) {
	stats, err := buildStats(finishedRun(), time.Now())
	if err != nil {
		t.Fatalf("buildStats() error = %v", err)
	}

	if stats.Running {
		t.Error("finished run reported as running")
	}
	if stats.Duration != 3*time.Minute {
		t.Errorf("Duration = %v, want 3m", stats.Duration)
	}
	if len(stats.Reasons) != 2 {
		t.Fatalf("len(Reasons) = %d, want 2", len(stats.Reasons))
	}
	if stats.Reasons[0].Reason != "price fetch failed" || len(stats.Reasons[0].Items) != 2 {
		t.Errorf("most frequent reason first, got %+v", stats.Reasons[0])
	}
	if got := formatStatus(stats); got != "❌ FAILED" {
		t.Errorf("formatStatus() = %v", got)
	}
}

func TestBuildStats_Running(t *testing.T) {
	run := finishedRun()
	run.FinishedAt = nil
	run.FailedItems = nil

	now := run.StartedAt.Add(45 * time.Second)
	stats, err := buildStats(run, now)
	if err != nil {
		t.Fatalf("buildStats() error = %v", err)
	}
	if !stats.Running {
		t.Error("run without finish time should be running")
	}
	if stats.Duration != 45*time.Second {
		t.Errorf("Duration = %v, want 45s", stats.Duration)
	}
	if len(stats.Reasons) != 0 {
		t.Errorf("Reasons = %v, want none", stats.Reasons)
	}
}

func TestBuildStats_BadFailedItems(t *testing.T) {
	run := finishedRun()
	run.FailedItems = []byte(`{"not": "a list"}`)

	if _, err := buildStats(run, time.Now()); err == nil {
		t.Error("buildStats() should fail on malformed failed items")
	}
}

func TestPrintRunStats(t *testing.T) {
	stats, err := buildStats(finishedRun(), time.Now())
	if err != nil {
		t.Fatalf("buildStats() error = %v", err)
	}

	var buf bytes.Buffer
	printRunStats(&buf, stats)
	out := buf.String()

	for _, want := range []string{"Succeeded: 2 (40.00%)", "Failed:    3 (60.00%)", "price fetch failed (2)", "Metroid [333] game 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("console report missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	run := finishedRun()
	run.Succeeded, run.Failed, run.FailedItems = 5, 0, []byte(`[]`)

	stats, err := buildStats(run, time.Now())
	if err != nil {
		t.Fatalf("buildStats() error = %v", err)
	}

	md := renderMarkdown(stats)
	if !strings.Contains(md, "**Status:** ✅ SUCCEEDED") {
		t.Errorf("markdown missing success status:\n%s", md)
	}
	if strings.Contains(md, "## Failures") {
		t.Errorf("markdown should omit the failures section:\n%s", md)
	}

	stats, _ = buildStats(finishedRun(), time.Now())
	md = renderMarkdown(stats)
	if !strings.Contains(md, `| price fetch failed | Mario \| Deluxe | `+"`222`"+` | 2 |`) {
		t.Errorf("markdown failure row not escaped:\n%s", md)
	}
}
