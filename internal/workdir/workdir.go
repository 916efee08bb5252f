// File: internal/workdir/workdir.go
// Brief: Internal workdir package implementation for 'working directory access'.

// Package workdir wraps the process working directory primitives so the
// navigator can be exercised against a fake in tests.
package workdir

import (
	"os"

	"github.com/pkg/errors"
)

// Workdir reads and changes the process working directory.
type Workdir interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// OS is the Workdir backed by the real process state.
type OS struct{}

var _ Workdir = OS{}

func (OS) Getwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "read current directory")
	}
	return dir, nil
}

func (OS) Chdir(dir string) error {
	if err := os.Chdir(dir); err != nil {
		return errors.Wrap(err, "change directory")
	}
	return nil
}
