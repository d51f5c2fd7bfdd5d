package gating

import "errors"

// Error classes used across the model. Callers match them with errors.Is.
var (
	// ErrInvalidArgument reports a contract violation: an empty required
	// name, a mismatched list size, a parameter outside its documented
	// range, or an attach of a gate that already has a parent. These are
	// deterministic and never retried.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange reports an index outside a dimension, child, or
	// root list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNotImplemented reports an operation that is deliberately left
	// unimplemented, such as the Hyperlog forward transform.
	ErrNotImplemented = errors.New("not implemented")
)
