package bootstrap

import "fmt"

// Kind classifies a fatal bootstrap failure.
type Kind int

const (
	// KindValidation: the stored configuration is missing fields or invalid.
	KindValidation Kind = iota + 1
	// KindTransport: the trainer scan failed.
	KindTransport
	// KindPersistence: the configuration could not be read or written.
	KindPersistence
	// KindPrompt: the terminal failed or a prompt answered outside its choices.
	KindPrompt
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "configuration error"
	case KindTransport:
		return "device error"
	case KindPersistence:
		return "configuration storage error"
	case KindPrompt:
		return "prompt error"
	default:
		return "bootstrap error"
	}
}

// Error is the only error type Run returns.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
