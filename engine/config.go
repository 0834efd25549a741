package engine

// The following methods let an Engine satisfy the lower lexer's Config
// contract (spec.md §4.2): a set of static traits the lexer queries to
// decide its own transition behavior. All four are constant for this
// engine; none depend on instance state.

// ParseControlSequenceAfterSs3 reports false: this engine treats SS3 as
// unconditionally unrecognized and never resumes CSI parsing after it.
func (e *Engine) ParseControlSequenceAfterSs3() bool { return false }

// FlushAtEndOfString reports false: OSC/DCS string collection is not
// flushed incrementally.
func (e *Engine) FlushAtEndOfString() bool { return false }

// DispatchControlCharsFromEscape reports false: a C0 control byte seen
// while collecting an escape sequence is not executed inline.
func (e *Engine) DispatchControlCharsFromEscape() bool { return false }

// DispatchIntermediatesFromEscape reports false, so that charset
// designation intermediates accumulate into the id instead of being
// dispatched as they are seen.
func (e *Engine) DispatchIntermediatesFromEscape() bool { return false }
