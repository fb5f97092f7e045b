package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/config"
	cytest "github.com/cytraco/cytraco/internal/testing"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{1400 * time.Millisecond, "1s"},
		{10 * time.Second, "10s"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.d), tt.d.String())
	}
}

func TestCurrentSpinner(t *testing.T) {
	assert.Equal(t, spinnerFrames[0], currentSpinner(0))
	assert.Equal(t, spinnerFrames[1], currentSpinner(len(spinnerFrames)+1))
	assert.Equal(t, spinnerFrames[3], currentSpinner(-3))
}

func TestScanModel_Progress(t *testing.T) {
	m := ScanModel{Timeout: 10 * time.Second, Elapsed: 5 * time.Second}
	assert.InDelta(t, 0.5, m.progress(), 0.001)

	m.Elapsed = 30 * time.Second
	assert.InDelta(t, 1.0, m.progress(), 0.001)

	assert.Zero(t, ScanModel{}.progress())
}

func TestScanModel_Update(t *testing.T) {
	m := NewScanModel(10 * time.Second)

	next, cmd := m.Update(TickMsg{})
	m = next.(ScanModel)
	assert.Equal(t, 1, m.SpinnerFrame)
	assert.NotNil(t, cmd)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	m = next.(ScanModel)
	assert.Equal(t, 50, m.Width)
	assert.Equal(t, 10, m.barWidth())

	next, cmd = m.Update(ScanDoneMsg{Found: 3})
	m = next.(ScanModel)
	assert.True(t, m.Done)
	assert.Equal(t, 3, m.Found)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(TickMsg{})
	assert.Nil(t, cmd)
}

func TestScanModel_View(t *testing.T) {
	running := NewScanModel(10 * time.Second)
	assert.Contains(t, running.View(), "Scanning for trainers")
	assert.Contains(t, running.View(), "0s / 10s")

	assert.Contains(t, ScanModel{Done: true, Found: 1}.View(), "1 trainer found")
	assert.Contains(t, ScanModel{Done: true, Found: 4}.View(), "4 trainers found")
	assert.Contains(t, ScanModel{Done: true}.View(), "no trainers found")
	assert.Contains(t, ScanModel{Done: true, Err: errors.New("boom")}.View(), "Scan failed")
}

func TestSummaryLines(t *testing.T) {
	tests := []struct {
		name    string
		outcome bootstrap.Outcome
		want    []string
	}{
		{
			name: "paired",
			outcome: bootstrap.Outcome{
				Status: bootstrap.StatusCompleted,
				Config: config.Config{ThresholdPower: 250, DeviceAddress: "AA:BB:CC:DD:EE:FF"},
			},
			want: []string{
				"Configuration loaded. FTP: 250W",
				"Trainer: AA:BB:CC:DD:EE:FF",
				"Setup complete! (Workout not yet implemented)",
			},
		},
		{
			name: "demo",
			outcome: bootstrap.Outcome{
				Status:   bootstrap.StatusCompleted,
				Config:   config.Config{ThresholdPower: 200},
				DemoMode: true,
			},
			want: []string{
				"Configuration loaded. FTP: 200W",
				"Running in demo mode (no trainer connected)",
				"Setup complete! (Workout not yet implemented)",
			},
		},
		{
			name:    "cancelled",
			outcome: bootstrap.Outcome{Status: bootstrap.StatusCancelled},
			want:    []string{"Setup cancelled by user"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SummaryLines(tt.outcome))

			rendered := RenderSummary(tt.outcome)
			for _, line := range tt.want {
				assert.Contains(t, rendered, line)
			}
			assert.Equal(t, len(tt.want), strings.Count(rendered, "\n"))
		})
	}
}

func TestRenderError(t *testing.T) {
	assert.Contains(t, RenderError(errors.New("device error: trainer scan failed")), "Error: device error: trainer scan failed")
}

func TestProgressDirectory_Scan(t *testing.T) {
	inner := cytest.NewFakeDirectory().WithScan(cytest.Devices(2)...).WithReachable(true)
	var out bytes.Buffer
	dir := NewProgressDirectory(inner, &out, time.Second, logr.Discard())

	devices, err := dir.Scan(cytest.TestContext(t))
	require.NoError(t, err)
	assert.Equal(t, cytest.Devices(2), devices)
	assert.Contains(t, out.String(), "2 trainers found")

	assert.True(t, dir.Reachable(cytest.TestContext(t), "AA:BB:CC:DD:EE:FF"))
}

func TestProgressDirectory_ScanError(t *testing.T) {
	scanErr := errors.New("adapter unavailable")
	inner := cytest.NewFakeDirectory().WithScanError(scanErr)
	dir := NewProgressDirectory(inner, &bytes.Buffer{}, time.Second, logr.Discard())

	_, err := dir.Scan(cytest.TestContext(t))
	assert.ErrorIs(t, err, scanErr)
}

func TestProgressDirectory_CancelledContext(t *testing.T) {
	inner := cytest.NewFakeDirectory().WithScan(cytest.TrainerX())
	dir := NewProgressDirectory(inner, &bytes.Buffer{}, time.Second, logr.Discard())

	_, err := dir.Scan(cytest.CancelledContext())
	assert.Error(t, err)
}
