package tui

import (
	"fmt"
	"strings"

	"github.com/cytraco/cytraco/internal/bootstrap"
)

// Summary lines printed after setup.
const (
	demoLine      = "Running in demo mode (no trainer connected)"
	completeLine  = "Setup complete! (Workout not yet implemented)"
	cancelledLine = "Setup cancelled by user"
)

// SummaryLines returns the unstyled run summary.
func SummaryLines(outcome bootstrap.Outcome) []string {
	if !outcome.Completed() {
		return []string{cancelledLine}
	}

	lines := []string{fmt.Sprintf("Configuration loaded. FTP: %dW", outcome.Config.ThresholdPower)}
	if outcome.DemoMode {
		lines = append(lines, demoLine)
	} else {
		lines = append(lines, "Trainer: "+outcome.Config.DeviceAddress)
	}
	return append(lines, completeLine)
}

// RenderSummary returns the styled run summary, one line per entry.
func RenderSummary(outcome bootstrap.Outcome) string {
	lines := SummaryLines(outcome)
	if !outcome.Completed() {
		return dimStyle.Render(lines[0]) + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(lines[0]) + "\n")
	if outcome.DemoMode {
		b.WriteString(warningStyle.Render(lines[1]) + "\n")
	} else {
		b.WriteString(lines[1] + "\n")
	}
	b.WriteString(readyStyle.Render(checkMark+" "+lines[2]) + "\n")
	return b.String()
}

// RenderError returns the one-line fatal error report.
func RenderError(err error) string {
	return failedStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n"
}
