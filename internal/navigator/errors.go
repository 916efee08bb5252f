// File: internal/navigator/errors.go
// Brief: Error kinds reported by pushd/popd.

package navigator

import "fmt"

// EnvironmentError reports that the current directory could not be determined.
type EnvironmentError struct {
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("cannot determine current directory: %v", e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }

// DirectoryChangeError reports a failed change into Dir.
type DirectoryChangeError struct {
	Dir string
	Err error
}

func (e *DirectoryChangeError) Error() string {
	return fmt.Sprintf("cannot change to %s: %v", e.Dir, e.Err)
}

func (e *DirectoryChangeError) Unwrap() error { return e.Err }

// EmptyStackError is returned by popd when there is nothing to pop.
type EmptyStackError struct{}

func (*EmptyStackError) Error() string { return "directory stack is empty" }

// ErrEmptyStack is the value returned for an empty popd.
var ErrEmptyStack error = &EmptyStackError{}

// UsageError reports a malformed invocation.
type UsageError struct {
	Command string
	Reason  string
	// Usage is the invocation synopsis shown alongside the error.
	Usage string
}

func (e *UsageError) Error() string {
	if e.Command == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Reason)
}
