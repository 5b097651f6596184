// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

// Package cerr provides a minimal constant-string error type along with a
// Kind classification used to distinguish the error categories condeque's
// containers surface (spec.md §7): InvalidArgument, NoSuchElement,
// NotSupported, and InternalInconsistency.
package cerr

// Error is an error value that can be declared as a package-level const,
// analogous to the stdlib's io.EOF but without the indirection of a var.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Kind classifies an Error for callers that want to branch on category
// rather than match a specific sentinel with errors.Is.
type Kind int

const (
	// KindInvalidArgument marks an operation called with an absent element,
	// a nil array/slice target, or a self-referential bulk argument.
	KindInvalidArgument Kind = iota
	// KindNoSuchElement marks a strict accessor called on an empty container.
	KindNoSuchElement
	// KindNotSupported marks an operation the container explicitly refuses.
	KindNotSupported
	// KindInternalInconsistency marks a defensive assertion failure: an
	// invariant the implementation relies on did not hold.
	KindInternalInconsistency
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindNoSuchElement:
		return "no such element"
	case KindNotSupported:
		return "not supported"
	case KindInternalInconsistency:
		return "internal inconsistency"
	default:
		return "unknown"
	}
}

// KindError pairs an Error with its Kind so that errors.As can recover the
// classification without string matching.
type KindError struct {
	Kind Kind
	Err  Error
}

func (e *KindError) Error() string {
	return e.Err.Error()
}

func (e *KindError) Unwrap() error {
	return e.Err
}

// New builds a KindError for the given kind and message.
func New(k Kind, msg string) *KindError {
	return &KindError{Kind: k, Err: Error(msg)}
}
