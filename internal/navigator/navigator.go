// File: internal/navigator/navigator.go
// Brief: pushd/popd command dispatch over a directory stack.

// Package navigator implements pushd and popd on top of a dirstack.Stack and a
// workdir.Workdir. A Dispatcher owns its stack; nothing survives the process.
package navigator

import (
	"github.com/example/dirstack/internal/dirstack"
	"github.com/example/dirstack/internal/workdir"
	"github.com/go-logr/logr"
)

// Dispatcher runs pushd/popd against the stack it owns.
type Dispatcher struct {
	stack   *dirstack.Stack
	workdir workdir.Workdir
	log     logr.Logger

	// keepOnFailure leaves the saved directory on the stack when pushd cannot
	// change into its target.
	keepOnFailure bool
}

// Option customizes a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for debug records.
func WithLogger(log logr.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

// WithKeepOnFailure makes a failed pushd keep the directory it pushed.
func WithKeepOnFailure(keep bool) Option {
	return func(d *Dispatcher) { d.keepOnFailure = keep }
}

// New returns a Dispatcher with an empty stack.
func New(wd workdir.Workdir, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		stack:   dirstack.New(),
		workdir: wd,
		log:     logr.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Stack exposes the owned stack for display.
func (d *Dispatcher) Stack() *dirstack.Stack {
	return d.stack
}

// Pushd saves the current directory and changes to target.
func (d *Dispatcher) Pushd(target string) error {
	cwd, err := d.workdir.Getwd()
	if err != nil {
		return &EnvironmentError{Err: err}
	}
	d.stack.Push(cwd)
	d.log.V(1).Info("pushed directory", "dir", cwd, "depth", d.stack.Len())

	if err := d.workdir.Chdir(target); err != nil {
		if !d.keepOnFailure {
			d.stack.Pop()
			d.log.V(1).Info("rolled back push after failed change", "dir", cwd, "target", target)
		}
		return &DirectoryChangeError{Dir: target, Err: err}
	}
	d.log.V(1).Info("changed directory", "from", cwd, "to", target)
	return nil
}

// Popd removes the most recently saved directory and changes back to it. The
// entry is consumed even when the change fails.
func (d *Dispatcher) Popd() error {
	dir, ok := d.stack.Pop()
	if !ok {
		return ErrEmptyStack
	}
	next, _ := d.stack.Peek()
	d.log.V(1).Info("popped directory", "dir", dir, "depth", d.stack.Len(), "next", next)
	if err := d.workdir.Chdir(dir); err != nil {
		return &DirectoryChangeError{Dir: dir, Err: err}
	}
	d.log.V(1).Info("changed directory", "to", dir)
	return nil
}
