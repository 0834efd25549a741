package engine

import "errors"

// ErrNilDispatcher is returned by NewEngine when constructed without a
// Dispatcher. It is the only precondition the Engine enforces (spec.md
// §7: "a null Dispatcher at construction is the only precondition and is
// rejected at construction").
var ErrNilDispatcher = errors.New("engine: dispatcher must not be nil")
