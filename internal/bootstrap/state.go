package bootstrap

import "fmt"

// State is a node of the bootstrap state machine.
type State int

const (
	StateAcquireThreshold State = iota + 1
	StateLoadedConfiguration
	StateTestConfiguredDevice
	StatePromptReconnect
	StateScanForDevices
	StatePromptNoDevices
	StatePromptSingleDevice
	StatePromptMultipleDevices
	StateCompleted
	StateCancelled
)

var stateNames = map[State]string{
	StateAcquireThreshold:      "AcquireThreshold",
	StateLoadedConfiguration:   "LoadedConfiguration",
	StateTestConfiguredDevice:  "TestConfiguredDevice",
	StatePromptReconnect:       "PromptReconnect",
	StateScanForDevices:        "ScanForDevices",
	StatePromptNoDevices:       "PromptNoDevices",
	StatePromptSingleDevice:    "PromptSingleDevice",
	StatePromptMultipleDevices: "PromptMultipleDevices",
	StateCompleted:             "Completed",
	StateCancelled:             "Cancelled",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether the machine stops in s.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// promptName labels prompts in metrics.
func (s State) promptName() string {
	switch s {
	case StateAcquireThreshold:
		return "threshold"
	case StatePromptReconnect:
		return "reconnect_failed"
	case StatePromptNoDevices:
		return "no_devices"
	case StatePromptSingleDevice:
		return "single_device"
	case StatePromptMultipleDevices:
		return "multiple_devices"
	default:
		return "none"
	}
}
