package setup

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/trainer"
)

// Line is a plain text Prompter. Invalid answers are re-asked; end of
// input means exit.
type Line struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan readResult
}

type readResult struct {
	text string
	err  error
}

// NewLine returns a Line prompter reading answers from in and writing
// questions to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{in: bufio.NewReader(in), out: out}
}

// PromptThreshold implements bootstrap.Prompter.
func (l *Line) PromptThreshold(ctx context.Context) (bootstrap.ThresholdAnswer, error) {
	l.printf("\nFTP (Functional Threshold Power) not configured.\n")
	l.printf("Please enter your FTP in watts (positive integer):\n")
	l.printf("Type \"(e)xit\" to exit.\n")

	for {
		text, err := l.ask(ctx)
		if errors.Is(err, io.EOF) {
			return bootstrap.ThresholdAnswer{Choice: bootstrap.ChoiceExit}, nil
		}
		if err != nil {
			return bootstrap.ThresholdAnswer{}, err
		}

		watts, exit, err := parseThreshold(text)
		switch {
		case exit:
			return bootstrap.ThresholdAnswer{Choice: bootstrap.ChoiceExit}, nil
		case err != nil:
			l.printf("%s. Try again.\n", err)
		default:
			return bootstrap.ThresholdValue(watts), nil
		}
	}
}

// PromptNoDevices implements bootstrap.Prompter.
func (l *Line) PromptNoDevices(ctx context.Context) (bootstrap.Choice, error) {
	l.printf("\nNo trainers found.\n")
	return l.choose(ctx, bootstrap.NoDevicesChoices())
}

// PromptSingleDevice implements bootstrap.Prompter.
func (l *Line) PromptSingleDevice(ctx context.Context, device trainer.Device) (bootstrap.Choice, error) {
	l.printf("\nFound trainer: %s\n", device)
	return l.choose(ctx, bootstrap.SingleDeviceChoices())
}

// PromptMultipleDevices implements bootstrap.Prompter.
func (l *Line) PromptMultipleDevices(ctx context.Context, devices []trainer.Device) (bootstrap.DeviceAnswer, error) {
	l.printf("\nFound %d trainers:\n", len(devices))
	for i, d := range devices {
		l.printf("  %d. %s\n", i+1, d)
	}

	for {
		l.printf("Enter a number to select, or %s\n", labels(deviceListChoices))
		text, err := l.ask(ctx)
		if errors.Is(err, io.EOF) {
			return bootstrap.DeviceAnswer{Choice: bootstrap.ChoiceExit}, nil
		}
		if err != nil {
			return bootstrap.DeviceAnswer{}, err
		}
		if answer, ok := parseDeviceAnswer(text, len(devices)); ok {
			return answer, nil
		}
		l.printf("Invalid choice %q. Try again.\n", strings.TrimSpace(text))
	}
}

// PromptReconnectFailed implements bootstrap.Prompter.
func (l *Line) PromptReconnectFailed(ctx context.Context, address string) (bootstrap.Choice, error) {
	l.printf("\nCould not connect to trainer %s.\n", address)
	return l.choose(ctx, bootstrap.ReconnectChoices())
}

func (l *Line) choose(ctx context.Context, set []bootstrap.Choice) (bootstrap.Choice, error) {
	for {
		l.printf("%s\n", labels(set))
		text, err := l.ask(ctx)
		if errors.Is(err, io.EOF) {
			return bootstrap.ChoiceExit, nil
		}
		if err != nil {
			return 0, err
		}
		if c, ok := matchChoice(text, set); ok {
			return c, nil
		}
		l.printf("Invalid choice %q. Try again.\n", strings.TrimSpace(text))
	}
}

// ask prints the input marker and reads one line. It returns io.EOF at end
// of input and bootstrap.ErrInterrupted when ctx is done first.
func (l *Line) ask(ctx context.Context) (string, error) {
	l.printf("> ")

	if l.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			text, err := l.in.ReadString('\n')
			ch <- readResult{text: text, err: err}
		}()
		l.pending = ch
	}

	select {
	case <-ctx.Done():
		return "", bootstrap.ErrInterrupted
	case r := <-l.pending:
		l.pending = nil
		if r.err == nil {
			return r.text, nil
		}
		if errors.Is(r.err, io.EOF) {
			if strings.TrimSpace(r.text) != "" {
				return r.text, nil
			}
			return "", io.EOF
		}
		return "", fmt.Errorf("read answer: %w", r.err)
	}
}

func (l *Line) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(l.out, format, args...)
}
