// File: internal/dirstack/stack.go
// Brief: Internal dirstack package implementation for 'stack'.

package dirstack

import "iter"

// Stack holds directory paths with stack discipline. The zero value is an
// empty stack ready for use.
type Stack struct {
	// dirs keeps the bottom of the stack at index 0.
	dirs []string
}

// New returns an empty stack.
func New() *Stack {
	return &Stack{}
}

// Push records path as the new top. Any string is accepted.
func (s *Stack) Push(path string) {
	s.dirs = append(s.dirs, path)
}

// Pop removes and returns the top path. It reports false when the stack is
// empty, in which case the stack is left untouched.
func (s *Stack) Pop() (string, bool) {
	n := len(s.dirs)
	if n == 0 {
		return "", false
	}
	top := s.dirs[n-1]
	s.dirs[n-1] = ""
	s.dirs = s.dirs[:n-1]
	return top, true
}

// Peek returns the top path without removing it.
func (s *Stack) Peek() (string, bool) {
	if len(s.dirs) == 0 {
		return "", false
	}
	return s.dirs[len(s.dirs)-1], true
}

func (s *Stack) Len() int {
	return len(s.dirs)
}

// All yields the paths from top to bottom. The sequence can be ranged over
// any number of times; it must not be used while the stack is being mutated.
func (s *Stack) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(s.dirs) - 1; i >= 0; i-- {
			if !yield(s.dirs[i]) {
				return
			}
		}
	}
}

// Entries returns a top-to-bottom copy of the stack.
func (s *Stack) Entries() []string {
	out := make([]string, 0, len(s.dirs))
	for dir := range s.All() {
		out = append(out, dir)
	}
	return out
}
