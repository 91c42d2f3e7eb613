package iostreams

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type terminal interface {
	IsTerminalOutput() bool
	IsColorEnabled() bool
	Size() (int, int, error)
}

// envTerm describes the terminal attached to stdout, honoring AZDO_FORCE_TTY,
// NO_COLOR and CLICOLOR_FORCE.
type envTerm struct {
	out        *os.File
	isTTY      bool
	colorLevel termenv.Profile
	width      int
}

func termFromEnv(out *os.File) *envTerm {
	t := &envTerm{out: out}
	t.isTTY = isTerminal(out)

	if force := os.Getenv("AZDO_FORCE_TTY"); force != "" && force != "0" && force != "false" {
		t.isTTY = true
		// a numeric value also fixes the width
		if w, err := strconv.Atoi(force); err == nil && w > 1 {
			t.width = w
		}
	}

	t.colorLevel = termenv.Ascii
	if t.isTTY {
		t.colorLevel = termenv.NewOutput(out).EnvColorProfile()
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		t.colorLevel = termenv.Ascii
	} else if v := os.Getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
		t.colorLevel = termenv.ANSI256
	}
	return t
}

func (t *envTerm) IsTerminalOutput() bool {
	return t.isTTY
}

func (t *envTerm) IsColorEnabled() bool {
	return t.colorLevel != termenv.Ascii
}

func (t *envTerm) Size() (int, int, error) {
	if t.width > 0 {
		return t.width, -1, nil
	}
	return term.GetSize(int(t.out.Fd())) //nolint:gosec
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) || isatty.IsCygwinTerminal(f.Fd()) //nolint:gosec
}

type fakeTerm struct {
	width int
}

func (t fakeTerm) IsTerminalOutput() bool { return false }

func (t fakeTerm) IsColorEnabled() bool { return false }

func (t fakeTerm) Size() (int, int, error) {
	return t.width, -1, nil
}
