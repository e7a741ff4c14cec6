package domain

import "errors"

// ErrActionNotFound is returned when an action name cannot be resolved in
// the registry.
var ErrActionNotFound = errors.New("action not found")

// ErrInvalidParams is returned when request parameters cannot be decoded
// into the handler's input shape or carry an unknown enumerated value.
var ErrInvalidParams = errors.New("invalid parameters")

// ErrShapeMismatch is returned when a handler produces a result whose arity
// or kinds do not match the registered output fields.
var ErrShapeMismatch = errors.New("result shape mismatch")

// ErrSnapshotNotFound is returned when a share token cannot be found in the
// snapshot store (or has expired).
var ErrSnapshotNotFound = errors.New("snapshot not found")
