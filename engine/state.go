package engine

// Engine is the output state machine engine (spec.md §3). It owns a
// Dispatcher exclusively, optionally holds a pass-through TtyConnection,
// and tracks the single piece of cross-sequence state REP needs.
//
// Engine is strictly single-threaded and synchronous (spec.md §5): every
// action method runs to completion on the caller's goroutine. Nothing here
// is safe for concurrent use without external serialization, matching the
// contract the lower state machine is expected to provide.
type Engine struct {
	dispatcher Dispatcher

	tty   TtyConnection
	flush func() bool

	// lastPrinted holds the last graphical character emitted by Print or
	// PrintString, or 0 (NUL) if the most recent action was anything else.
	// Only CsiDispatch's REP handler (repeatLastPrinted) reads it.
	lastPrinted rune

	// sgrBuf is a growable int buffer allocated at construction. No action
	// method reads or writes it: the SGR path builds a fresh slice per
	// sequence in extractGraphicsOptions.
	sgrBuf []int
}

// NewEngine constructs an Engine around the given Dispatcher, which the
// Engine takes exclusive ownership of. d must not be nil.
func NewEngine(d Dispatcher) (*Engine, error) {
	if d == nil {
		return nil, ErrNilDispatcher
	}
	return &Engine{
		dispatcher: d,
		sgrBuf:     make([]int, 0, 16),
	}, nil
}

// SetTerminalConnection installs the pass-through pair atomically
// (spec.md §4.3). Passing a nil connection and flush function removes the
// pass-through behavior.
func (e *Engine) SetTerminalConnection(tty TtyConnection, flush func() bool) {
	e.tty = tty
	e.flush = flush
}

// clearLastPrinted invalidates the REP slot. Every action method except
// Print, PrintString, Clear, and Ignore calls this on exit (spec.md §3, §9).
func (e *Engine) clearLastPrinted() {
	e.lastPrinted = 0
}

// resolve applies the fallthrough policy of spec.md §7: a failed action is
// handed to flush, if one is installed, and its result adopted; otherwise
// the original failure is returned unchanged.
func (e *Engine) resolve(ok bool) bool {
	if ok || e.flush == nil {
		return ok
	}
	return e.flush()
}
