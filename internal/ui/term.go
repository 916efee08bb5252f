// File: internal/ui/term.go
// Brief: Internal ui package implementation for 'terminal helpers'.

package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type fdProvider interface {
	Fd() uintptr
}

func IsTerminal(w io.Writer) bool {
	if v, ok := w.(fdProvider); ok {
		return term.IsTerminal(int(v.Fd()))
	}
	return false
}

func TerminalWidth(w io.Writer) (int, bool) {
	if v, ok := w.(fdProvider); ok {
		if cols, _, err := term.GetSize(int(v.Fd())); err == nil {
			return cols, true
		}
	}
	return 0, false
}

// ParseColorMode normalizes a --color value; blank means auto.
func ParseColorMode(mode string) (string, error) {
	switch m := strings.ToLower(strings.TrimSpace(mode)); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (expected auto, always, or never)", mode)
	}
}

// ColorEnabled decides whether output written to w should carry ANSI colour.
// In auto mode colour follows the terminal and color.NoColor (NO_COLOR, dumb terminals).
func ColorEnabled(mode string, w io.Writer) (bool, error) {
	m, err := ParseColorMode(mode)
	if err != nil {
		return false, err
	}
	switch m {
	case ColorAlways:
		return true, nil
	case ColorNever:
		return false, nil
	default:
		return IsTerminal(w) && !color.NoColor, nil
	}
}
