// File: internal/ui/stack_console.go
// Brief: Internal ui package implementation for 'directory stack output'.

package ui

import (
	"fmt"
	"io"
	"iter"

	"github.com/fatih/color"
)

// PrintStack writes one directory per line, top first. An empty stack prints
// nothing. With colorize the top entry is highlighted.
func PrintStack(w io.Writer, dirs iter.Seq[string], colorize bool) error {
	first := true
	for dir := range dirs {
		line := dir
		if first && colorize {
			line = highlightTop(dir)
		}
		first = false
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write stack: %w", err)
		}
	}
	return nil
}

// highlightTop ignores color.NoColor; the caller has already decided colour is wanted.
func highlightTop(dir string) string {
	c := color.New(color.Bold, color.FgCyan)
	c.EnableColor()
	return c.Sprint(dir)
}
