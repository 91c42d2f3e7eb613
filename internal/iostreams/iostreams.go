// Package iostreams wraps the standard streams of the process and answers the
// terminal questions the commands ask: is this a TTY, how wide is it, may we prompt.
package iostreams

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-colorable"
)

const DefaultWidth = 80

type fileWriter interface {
	io.Writer
	Fd() uintptr
}

type fileReader interface {
	io.ReadCloser
	Fd() uintptr
}

type IOStreams struct {
	term terminal

	In     fileReader
	Out    fileWriter
	ErrOut io.Writer

	stdinTTYOverride  bool
	stdinIsTTY        bool
	stdoutTTYOverride bool
	stdoutIsTTY       bool

	progressIndicatorEnabled bool
	progressIndicator        *spinner.Spinner
	progressIndicatorMu      sync.Mutex

	neverPrompt bool
}

func (ios *IOStreams) SetStdinTTY(isTTY bool) {
	ios.stdinTTYOverride = true
	ios.stdinIsTTY = isTTY
}

func (ios *IOStreams) IsStdinTTY() bool {
	if ios.stdinTTYOverride {
		return ios.stdinIsTTY
	}
	if stdin, ok := ios.In.(*os.File); ok {
		return isTerminal(stdin)
	}
	return false
}

func (ios *IOStreams) SetStdoutTTY(isTTY bool) {
	ios.stdoutTTYOverride = true
	ios.stdoutIsTTY = isTTY
}

func (ios *IOStreams) IsStdoutTTY() bool {
	if ios.stdoutTTYOverride {
		return ios.stdoutIsTTY
	}
	return ios.term.IsTerminalOutput()
}

func (ios *IOStreams) IsStderrTTY() bool {
	if stderr, ok := ios.ErrOut.(*os.File); ok {
		return isTerminal(stderr)
	}
	return false
}

func (ios *IOStreams) ColorEnabled() bool {
	return ios.term.IsColorEnabled()
}

func (ios *IOStreams) CanPrompt() bool {
	if ios.neverPrompt {
		return false
	}
	return ios.IsStdinTTY() && ios.IsStdoutTTY()
}

func (ios *IOStreams) SetNeverPrompt(v bool) {
	ios.neverPrompt = v
}

// TerminalWidth returns the width of the terminal that controls the process
func (ios *IOStreams) TerminalWidth() int {
	w, _, err := ios.term.Size()
	if err == nil && w > 0 {
		return w
	}
	return DefaultWidth
}

// startProgress shows a spinner on stderr while a remote call is in flight.
// It does nothing unless stdout and stderr are terminals.
func (ios *IOStreams) startProgress(label string) {
	if !ios.progressIndicatorEnabled {
		return
	}

	ios.progressIndicatorMu.Lock()
	defer ios.progressIndicatorMu.Unlock()

	if ios.progressIndicator != nil {
		if label == "" {
			ios.progressIndicator.Prefix = ""
		} else {
			ios.progressIndicator.Prefix = label + " "
		}
		return
	}

	// https://github.com/briandowns/spinner#available-character-sets
	sp := spinner.New(spinner.CharSets[11], 120*time.Millisecond, spinner.WithWriter(ios.ErrOut), spinner.WithColor("fgCyan"))
	if label != "" {
		sp.Prefix = label + " "
	}
	sp.Start()
	ios.progressIndicator = sp
}

func (ios *IOStreams) stopProgress() {
	ios.progressIndicatorMu.Lock()
	defer ios.progressIndicatorMu.Unlock()
	if ios.progressIndicator == nil {
		return
	}
	ios.progressIndicator.Stop()
	ios.progressIndicator = nil
}

// RunWithProgress runs fn with the progress indicator shown.
func (ios *IOStreams) RunWithProgress(label string, fn func() error) error {
	ios.startProgress(label)
	defer ios.stopProgress()
	return fn()
}

func System() *IOStreams {
	terminal := termFromEnv(os.Stdout)

	var stdout fileWriter = os.Stdout
	// On Windows with no virtual terminal processing support, translate ANSI escape
	// sequences to console syscalls
	if colorableStdout := colorable.NewColorable(os.Stdout); colorableStdout != os.Stdout {
		// ensure that the file descriptor of the original stdout is preserved
		stdout = &fdWriter{
			fd:     os.Stdout.Fd(),
			Writer: colorableStdout,
		}
	}

	ios := &IOStreams{
		In:     os.Stdin,
		Out:    stdout,
		ErrOut: colorable.NewColorable(os.Stderr),
		term:   terminal,
	}

	if ios.IsStdoutTTY() && ios.IsStderrTTY() {
		ios.progressIndicatorEnabled = true
	}

	return ios
}

func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer, *bytes.Buffer) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	ios := &IOStreams{
		In: &fdReader{
			fd:         0,
			ReadCloser: io.NopCloser(in),
		},
		Out:    &fdWriter{fd: 1, Writer: out},
		ErrOut: errOut,
		term:   &fakeTerm{width: DefaultWidth},
	}
	ios.SetStdinTTY(false)
	ios.SetStdoutTTY(false)
	return ios, in, out, errOut
}

// fdWriter represents a wrapped stdout Writer that preserves the original file descriptor
type fdWriter struct {
	io.Writer
	fd uintptr
}

func (w *fdWriter) Fd() uintptr {
	return w.fd
}

// fdReader represents a wrapped stdin ReadCloser that preserves the original file descriptor
type fdReader struct {
	io.ReadCloser
	fd uintptr
}

func (r *fdReader) Fd() uintptr {
	return r.fd
}
