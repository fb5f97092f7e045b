package bootstrap

import (
	"errors"
	"fmt"
)

// ErrInterrupted is returned by a Prompter when the rider pressed Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// Choice is a discrete answer to a setup prompt.
type Choice int

const (
	// ChoiceExit abandons setup.
	ChoiceExit Choice = iota + 1
	// ChoiceRetry repeats the last device operation.
	ChoiceRetry
	// ChoiceScan discards the configured trainer and scans for another.
	ChoiceScan
	// ChoiceDemo continues without a trainer.
	ChoiceDemo
	// ChoiceContinue accepts the offered value or device.
	ChoiceContinue
	// ChoiceSelect picks a device by index from a list.
	ChoiceSelect
)

var choiceNames = map[Choice]string{
	ChoiceExit:     "exit",
	ChoiceRetry:    "retry",
	ChoiceScan:     "scan",
	ChoiceDemo:     "demo",
	ChoiceContinue: "continue",
	ChoiceSelect:   "select",
}

func (c Choice) String() string {
	if name, ok := choiceNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// ThresholdAnswer answers PromptThreshold: ChoiceContinue with Watts set,
// or ChoiceExit.
type ThresholdAnswer struct {
	Choice Choice
	Watts  int
}

// ThresholdValue answers PromptThreshold with a value.
func ThresholdValue(watts int) ThresholdAnswer {
	return ThresholdAnswer{Choice: ChoiceContinue, Watts: watts}
}

// DeviceAnswer answers PromptMultipleDevices: ChoiceSelect with a zero-based
// Index into the offered list, ChoiceRetry or ChoiceExit.
type DeviceAnswer struct {
	Choice Choice
	Index  int
}

// SelectDevice answers PromptMultipleDevices with a list index.
func SelectDevice(index int) DeviceAnswer {
	return DeviceAnswer{Choice: ChoiceSelect, Index: index}
}

// Allowed choices per prompt.
var (
	thresholdChoices      = []Choice{ChoiceContinue, ChoiceExit}
	noDevicesChoices      = []Choice{ChoiceRetry, ChoiceExit, ChoiceDemo}
	singleDeviceChoices   = []Choice{ChoiceContinue, ChoiceRetry, ChoiceExit}
	multipleDeviceChoices = []Choice{ChoiceSelect, ChoiceRetry, ChoiceExit}
	reconnectChoices      = []Choice{ChoiceRetry, ChoiceScan, ChoiceExit, ChoiceDemo}
)

// NoDevicesChoices lists the answers PromptNoDevices may return.
func NoDevicesChoices() []Choice { return append([]Choice(nil), noDevicesChoices...) }

// SingleDeviceChoices lists the answers PromptSingleDevice may return.
func SingleDeviceChoices() []Choice { return append([]Choice(nil), singleDeviceChoices...) }

// ReconnectChoices lists the answers PromptReconnectFailed may return.
func ReconnectChoices() []Choice { return append([]Choice(nil), reconnectChoices...) }

func allowed(c Choice, set []Choice) bool {
	for _, s := range set {
		if s == c {
			return true
		}
	}
	return false
}
