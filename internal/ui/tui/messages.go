// Package tui renders scan progress with Bubble Tea and styles the setup
// summary with lipgloss.
package tui

// TickMsg is sent periodically to refresh the spinner.
type TickMsg struct{}

// ScanDoneMsg signals that the scan finished.
type ScanDoneMsg struct {
	Found int
	Err   error
}
