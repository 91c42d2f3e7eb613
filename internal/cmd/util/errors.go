package util

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2/terminal"
)

var (
	// ErrSilent exits with status 1 without printing anything.
	ErrSilent = errors.New("SilentError")
	// ErrCancel marks a prompt the user aborted.
	ErrCancel = errors.New("CancelError")
)

// ErrFlag is an argument or flag problem. main prints the command usage after it.
type ErrFlag struct {
	err error
}

func (e *ErrFlag) Error() string { return e.err.Error() }

func (e *ErrFlag) Unwrap() error { return e.err }

func FlagErrorf(format string, args ...any) error {
	return &ErrFlag{err: fmt.Errorf(format, args...)}
}

func FlagErrorWrap(err error) error {
	return &ErrFlag{err: err}
}

// IsUserCancellation reports an aborted prompt, including Ctrl-C inside survey.
func IsUserCancellation(err error) bool {
	return errors.Is(err, ErrCancel) || errors.Is(err, terminal.InterruptErr)
}

// MutuallyExclusive fails with message when more than one condition holds.
func MutuallyExclusive(message string, conditions ...bool) error {
	set := 0
	for _, c := range conditions {
		if c {
			set++
		}
	}
	if set > 1 {
		return FlagErrorf("%s", message)
	}
	return nil
}

// ErrNoResults is returned by list commands that found nothing. The process still exits 0.
type ErrNoResults struct {
	message string
}

func (e ErrNoResults) Error() string { return e.message }

func NewNoResultsError(message string) ErrNoResults {
	return ErrNoResults{message: message}
}
