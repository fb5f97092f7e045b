package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cytraco/cytraco/internal/bootstrap"
)

func TestParseThreshold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input     string
		wantWatts int
		wantExit  bool
		wantErr   error
	}{
		{input: "250", wantWatts: 250},
		{input: "  180 \n", wantWatts: 180},
		{input: "e", wantExit: true},
		{input: "E", wantExit: true},
		{input: "exit", wantExit: true},
		{input: "EXIT\n", wantExit: true},
		{input: "(e)xit", wantExit: true},
		{input: "0", wantErr: errThresholdNotPositive},
		{input: "-100", wantErr: errThresholdNotPositive},
		{input: "2147483647", wantWatts: 2147483647},
		{input: "3000000000", wantErr: errThresholdTooLarge},
		{input: "abc", wantErr: errThresholdNotNumber},
		{input: "12.5", wantErr: errThresholdNotNumber},
		{input: "", wantErr: errThresholdNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			watts, exit, err := parseThreshold(tt.input)
			assert.Equal(t, tt.wantWatts, watts)
			assert.Equal(t, tt.wantExit, exit)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

func TestMatchChoice(t *testing.T) {
	t.Parallel()

	set := bootstrap.ReconnectChoices()

	tests := []struct {
		input  string
		want   bootstrap.Choice
		wantOK bool
	}{
		{input: "r", want: bootstrap.ChoiceRetry, wantOK: true},
		{input: "Retry", want: bootstrap.ChoiceRetry, wantOK: true},
		{input: "s\n", want: bootstrap.ChoiceScan, wantOK: true},
		{input: "(d)emo", want: bootstrap.ChoiceDemo, wantOK: true},
		{input: "e", want: bootstrap.ChoiceExit, wantOK: true},
		{input: "c"},
		{input: "continue"},
		{input: "re"},
		{input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := matchChoice(tt.input, set)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDeviceAnswer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   bootstrap.DeviceAnswer
		wantOK bool
	}{
		{input: "1", want: bootstrap.SelectDevice(0), wantOK: true},
		{input: "3", want: bootstrap.SelectDevice(2), wantOK: true},
		{input: "r", want: bootstrap.DeviceAnswer{Choice: bootstrap.ChoiceRetry}, wantOK: true},
		{input: "exit", want: bootstrap.DeviceAnswer{Choice: bootstrap.ChoiceExit}, wantOK: true},
		{input: "0"},
		{input: "4"},
		{input: "d"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := parseDeviceAnswer(tt.input, 3)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "(r)etry / (e)xit / (d)emo", labels(bootstrap.NoDevicesChoices()))
}
