package setup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/config"
)

// Validation errors for threshold input.
var (
	errThresholdNotNumber   = errors.New("invalid input, please enter a positive integer")
	errThresholdNotPositive = errors.New("FTP must be a positive number")
	errThresholdTooLarge    = fmt.Errorf("FTP must be at most %d", config.MaxThresholdPower)
)

// deviceListChoices are the non-numeric answers to the device list.
var deviceListChoices = []bootstrap.Choice{bootstrap.ChoiceRetry, bootstrap.ChoiceExit}

var parens = strings.NewReplacer("(", "", ")", "")

// normalize lowercases s and drops surrounding space and the parentheses
// used in labels such as "(e)xit".
func normalize(s string) string {
	return parens.Replace(strings.ToLower(strings.TrimSpace(s)))
}

func isExit(s string) bool {
	n := normalize(s)
	return n == "e" || n == "exit"
}

// parseThreshold reads a threshold answer. exit is set for an exit keyword.
func parseThreshold(s string) (watts int, exit bool, err error) {
	if isExit(s) {
		return 0, true, nil
	}
	watts, err = strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false, errThresholdNotNumber
	}
	if watts <= 0 {
		return 0, false, errThresholdNotPositive
	}
	if watts > config.MaxThresholdPower {
		return 0, false, errThresholdTooLarge
	}
	return watts, false, nil
}

// validateThreshold is the huh input validator.
func validateThreshold(s string) error {
	_, _, err := parseThreshold(s)
	return err
}

// matchChoice maps the full word or its first letter to a choice in set.
func matchChoice(s string, set []bootstrap.Choice) (bootstrap.Choice, bool) {
	n := normalize(s)
	if n == "" {
		return 0, false
	}
	for _, c := range set {
		name := c.String()
		if n == name || n == name[:1] {
			return c, true
		}
	}
	return 0, false
}

// parseDeviceAnswer reads a 1-based device number or a list choice.
func parseDeviceAnswer(s string, count int) (bootstrap.DeviceAnswer, bool) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if n < 1 || n > count {
			return bootstrap.DeviceAnswer{}, false
		}
		return bootstrap.SelectDevice(n - 1), true
	}
	c, ok := matchChoice(s, deviceListChoices)
	if !ok {
		return bootstrap.DeviceAnswer{}, false
	}
	return bootstrap.DeviceAnswer{Choice: c}, true
}

// label renders a choice with its shortcut, as in "(r)etry".
func label(c bootstrap.Choice) string {
	name := c.String()
	return "(" + name[:1] + ")" + name[1:]
}

func labels(set []bootstrap.Choice) string {
	parts := make([]string, len(set))
	for i, c := range set {
		parts[i] = label(c)
	}
	return strings.Join(parts, " / ")
}
