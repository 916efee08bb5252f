// File: internal/dirstack/doc.go
// Brief: Directory stack container.

// Package dirstack implements the last-in-first-out directory stack behind
// pushd/popd. A Stack is owned by a single caller for the lifetime of one
// invocation and is never shared or persisted.
package dirstack
