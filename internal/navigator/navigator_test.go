// File: internal/navigator/navigator_test.go
// Brief: Tests for pushd/popd dispatch.

package navigator

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/example/dirstack/internal/logging"
	"github.com/example/dirstack/internal/workdir"
)

type fakeWorkdir struct {
	cwd       string
	dirs      map[string]bool
	getwdErr  error
	chdirCall []string
}

func newFakeWorkdir(cwd string, dirs ...string) *fakeWorkdir {
	f := &fakeWorkdir{cwd: cwd, dirs: map[string]bool{cwd: true}}
	for _, d := range dirs {
		f.dirs[d] = true
	}
	return f
}

func (f *fakeWorkdir) Getwd() (string, error) {
	if f.getwdErr != nil {
		return "", f.getwdErr
	}
	return f.cwd, nil
}

func (f *fakeWorkdir) Chdir(dir string) error {
	f.chdirCall = append(f.chdirCall, dir)
	if !f.dirs[dir] {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	f.cwd = dir
	return nil
}

func TestPushdThenPopd(t *testing.T) {
	wd := newFakeWorkdir("/home/user", "/tmp")
	d := New(wd)

	if err := d.Pushd("/tmp"); err != nil {
		t.Fatalf("pushd: %v", err)
	}
	if wd.cwd != "/tmp" {
		t.Fatalf("expected cwd /tmp, got %s", wd.cwd)
	}
	if got := d.Stack().Entries(); !slices.Equal(got, []string{"/home/user"}) {
		t.Fatalf("expected stack [/home/user], got %v", got)
	}

	if err := d.Popd(); err != nil {
		t.Fatalf("popd: %v", err)
	}
	if wd.cwd != "/home/user" {
		t.Fatalf("expected cwd /home/user, got %s", wd.cwd)
	}
	if d.Stack().Len() != 0 {
		t.Fatalf("expected empty stack, got %v", d.Stack().Entries())
	}
}

func TestPushdStacksInReverseOrder(t *testing.T) {
	wd := newFakeWorkdir("/a", "/b", "/c", "/d")
	d := New(wd)
	for _, target := range []string{"/b", "/c", "/d"} {
		if err := d.Pushd(target); err != nil {
			t.Fatalf("pushd %s: %v", target, err)
		}
	}
	want := []string{"/c", "/b", "/a"}
	if got := d.Stack().Entries(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestPopdEmptyStack(t *testing.T) {
	wd := newFakeWorkdir("/home/user")
	d := New(wd)

	err := d.Popd()
	if !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("expected ErrEmptyStack, got %v", err)
	}
	var empty *EmptyStackError
	if !errors.As(err, &empty) {
		t.Fatalf("expected *EmptyStackError, got %T", err)
	}
	if len(wd.chdirCall) != 0 {
		t.Fatalf("expected no directory change, got %v", wd.chdirCall)
	}
	if wd.cwd != "/home/user" {
		t.Fatalf("cwd changed to %s", wd.cwd)
	}
}

func TestPushdFailureRollsBack(t *testing.T) {
	wd := newFakeWorkdir("/home/user")
	d := New(wd)

	err := d.Pushd("/nonexistent/path")
	var changeErr *DirectoryChangeError
	if !errors.As(err, &changeErr) {
		t.Fatalf("expected DirectoryChangeError, got %v", err)
	}
	if changeErr.Dir != "/nonexistent/path" {
		t.Fatalf("expected error to name target, got %q", changeErr.Dir)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected OS cause to be preserved, got %v", err)
	}
	if d.Stack().Len() != 0 {
		t.Fatalf("expected rollback to leave stack empty, got %v", d.Stack().Entries())
	}
	if wd.cwd != "/home/user" {
		t.Fatalf("cwd changed to %s", wd.cwd)
	}
}

func TestPushdFailureKeepsEntryWhenRequested(t *testing.T) {
	wd := newFakeWorkdir("/home/user")
	d := New(wd, WithKeepOnFailure(true))

	err := d.Pushd("/nonexistent/path")
	var changeErr *DirectoryChangeError
	if !errors.As(err, &changeErr) {
		t.Fatalf("expected DirectoryChangeError, got %v", err)
	}
	if got := d.Stack().Entries(); !slices.Equal(got, []string{"/home/user"}) {
		t.Fatalf("expected stack [/home/user], got %v", got)
	}
}

func TestPushdEnvironmentError(t *testing.T) {
	wd := newFakeWorkdir("/home/user", "/tmp")
	wd.getwdErr = errors.New("getcwd: no such file or directory")
	d := New(wd)

	err := d.Pushd("/tmp")
	var envErr *EnvironmentError
	if !errors.As(err, &envErr) {
		t.Fatalf("expected EnvironmentError, got %v", err)
	}
	if d.Stack().Len() != 0 {
		t.Fatalf("expected empty stack, got %v", d.Stack().Entries())
	}
	if len(wd.chdirCall) != 0 {
		t.Fatalf("expected no directory change, got %v", wd.chdirCall)
	}
}

func TestPopdFailureConsumesEntry(t *testing.T) {
	wd := newFakeWorkdir("/home/user")
	d := New(wd)
	stack := d.Stack()
	stack.Push("/gone")

	err := d.Popd()
	var changeErr *DirectoryChangeError
	if !errors.As(err, &changeErr) {
		t.Fatalf("expected DirectoryChangeError, got %v", err)
	}
	if changeErr.Dir != "/gone" {
		t.Fatalf("expected error to name /gone, got %q", changeErr.Dir)
	}
	if stack.Len() != 0 {
		t.Fatalf("expected popped entry to stay consumed, got %v", stack.Entries())
	}
}

func TestPushdPassesTargetVerbatim(t *testing.T) {
	for _, target := range []string{"~", "~foo", "~/work", "-x", "dir with space"} {
		wd := newFakeWorkdir("/srv", target)
		d := New(wd)
		if err := d.Pushd(target); err != nil {
			t.Fatalf("pushd %q: %v", target, err)
		}
		if !slices.Equal(wd.chdirCall, []string{target}) {
			t.Fatalf("expected chdir to %q, got %v", target, wd.chdirCall)
		}
	}
}

func TestPushdPopdAgainstFilesystem(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("resolve temp dir: %v", err)
	}
	start := filepath.Join(root, "home", "user")
	target := filepath.Join(root, "tmp")
	for _, dir := range []string{start, target} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	t.Chdir(start)

	d := New(workdir.OS{})
	if err := d.Pushd(target); err != nil {
		t.Fatalf("pushd: %v", err)
	}
	if cwd, _ := os.Getwd(); cwd != target {
		t.Fatalf("expected cwd %s, got %s", target, cwd)
	}
	if got := d.Stack().Entries(); !slices.Equal(got, []string{start}) {
		t.Fatalf("expected stack [%s], got %v", start, got)
	}

	if err := d.Pushd(filepath.Join(root, "missing")); err == nil {
		t.Fatalf("expected pushd into missing directory to fail")
	}
	if got := d.Stack().Entries(); !slices.Equal(got, []string{start}) {
		t.Fatalf("failed pushd changed stack: %v", got)
	}

	if err := d.Popd(); err != nil {
		t.Fatalf("popd: %v", err)
	}
	if cwd, _ := os.Getwd(); cwd != start {
		t.Fatalf("expected cwd %s, got %s", start, cwd)
	}
	if err := d.Popd(); !errors.Is(err, ErrEmptyStack) {
		t.Fatalf("expected empty stack error, got %v", err)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{err: ErrEmptyStack, want: "directory stack is empty"},
		{err: &UsageError{Reason: "missing command"}, want: "missing command"},
		{err: &UsageError{Command: "pushd", Reason: "expected 1 argument, got 0"}, want: "pushd: expected 1 argument, got 0"},
		{err: &DirectoryChangeError{Dir: "/x", Err: errors.New("boom")}, want: "cannot change to /x: boom"},
		{err: &EnvironmentError{Err: errors.New("boom")}, want: "cannot determine current directory: boom"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestPopdLogsNextEntry(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(&buf, "debug")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	wd := newFakeWorkdir("/a", "/b", "/c")
	d := New(wd, WithLogger(log))
	d.Stack().Push("/b")
	d.Stack().Push("/c")
	if err := d.Popd(); err != nil {
		t.Fatalf("popd: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "popped directory") || !strings.Contains(out, `"next": "/b"`) {
		t.Fatalf("expected popped record naming next entry, got %q", out)
	}
}
