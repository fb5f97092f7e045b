package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const tickInterval = 100 * time.Millisecond

// ScanModel is the Bubble Tea model shown while trainers are scanned.
type ScanModel struct {
	Timeout   time.Duration
	StartTime time.Time
	Elapsed   time.Duration

	// Animation
	SpinnerFrame int

	// Result
	Done  bool
	Found int
	Err   error

	Width int
}

// NewScanModel creates a model for a scan bounded by timeout.
func NewScanModel(timeout time.Duration) ScanModel {
	return ScanModel{
		Timeout:   timeout,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m ScanModel) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m ScanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width

	case TickMsg:
		if m.Done {
			return m, nil
		}
		m.SpinnerFrame++
		m.Elapsed = time.Since(m.StartTime)
		return m, tickCmd()

	case ScanDoneMsg:
		m.Done = true
		m.Found = msg.Found
		m.Err = msg.Err
		m.Elapsed = time.Since(m.StartTime)
		return m, tea.Quit
	}

	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m ScanModel) View() string {
	var b strings.Builder

	switch {
	case m.Done && m.Err != nil:
		fmt.Fprintf(&b, "%s %s\n", failedStyle.Render(crossMark), failedStyle.Render("Scan failed"))
	case m.Done:
		fmt.Fprintf(&b, "%s Scan complete: %s\n", readyStyle.Render(checkMark), foundText(m.Found))
	default:
		fmt.Fprintf(&b, "%s %s %s %s\n",
			activeStyle.Render(currentSpinner(m.SpinnerFrame)),
			sectionStyle.Render("Scanning for trainers"),
			renderProgressBar(m.progress(), m.barWidth()),
			dimStyle.Render(formatDuration(m.Elapsed)+" / "+formatDuration(m.Timeout)),
		)
	}
	return b.String()
}

func (m ScanModel) progress() float64 {
	if m.Timeout <= 0 {
		return 0
	}
	p := float64(m.Elapsed) / float64(m.Timeout)
	if p > 1 {
		p = 1
	}
	return p
}

func (m ScanModel) barWidth() int {
	width := 20
	if m.Width > 0 && m.Width < 60 {
		width = m.Width - 40
		if width < 5 {
			width = 5
		}
	}
	return width
}

func foundText(n int) string {
	switch n {
	case 0:
		return warningStyle.Render("no trainers found")
	case 1:
		return "1 trainer found"
	default:
		return fmt.Sprintf("%d trainers found", n)
	}
}

func renderProgressBar(progress float64, width int) string {
	filled := int(float64(width) * progress)
	if filled > width {
		filled = width
	}
	return progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", width-filled))
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
}
