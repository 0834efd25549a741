package vtlex

import (
	"strconv"
	"strings"

	"github.com/weiplanet/vtengine/vtid"
)

type lexState int

const (
	stGround lexState = iota
	stEscape
	stEscapeIntermediate
	stCsiEntry
	stCsiParam
	stCsiIntermediate
	stCsiIgnore
	stOscString
	stDcsEntry
	stDcsPassthrough
	stDcsIgnore
	stVt52Ground
	stVt52Escape
	stVt52Params
)

const paramMax = 65535

// Machine is the byte-level state machine. It is not safe for concurrent
// use; a single goroutine should own each Machine.
type Machine struct {
	sink Sink
	cfg  Config

	state lexState

	// CSI collection.
	prefix    byte
	interm    byte
	params    []int
	curDigits strings.Builder
	curSet    bool

	// OSC collection.
	oscBuf     strings.Builder
	oscCode    int
	oscCodeSet bool
	oscSeenSep bool

	// VT52 direct cursor address collection.
	vt52Params []byte
}

// NewMachine constructs a Machine feeding the given Sink, whose static
// traits are read from cfg once per query rather than cached.
func NewMachine(sink Sink, cfg Config) *Machine {
	return &Machine{sink: sink, cfg: cfg, state: stGround}
}

// EnterVt52Mode switches the machine into VT52 lexing, used after a
// Dispatcher-level mode change puts the emulated terminal into VT52
// compatibility mode. ExitVt52Mode returns it to the ANSI state machine.
// The machine calls neither on its own: ESC < in VT52 mode is dispatched to
// the Sink as Vt52ExitVt52Mode (which the Engine turns into a DECANM
// SetPrivateModes), and the lexer stays in VT52 mode until ExitVt52Mode.
func (m *Machine) EnterVt52Mode() { m.setState(stVt52Ground) }
func (m *Machine) ExitVt52Mode()  { m.setState(stGround) }

// setState transitions to next, running the exit action of the state
// being left. Only stOscString has one: leaving it for any reason
// finishes the accumulated OSC command, mirroring parser/state.go's
// oscString.exit() firing on every transition away from that state,
// including the plain "ESC seen" global transition that begins an ST
// terminator.
func (m *Machine) setState(next lexState) {
	if m.state == stOscString && next != stOscString {
		m.finishOsc(vtid.ESC)
	}
	m.state = next
}

// Feed processes one input byte, driving zero or more Sink calls.
func (m *Machine) Feed(r byte) {
	if anywhere, handled := m.anywhere(r); handled {
		_ = anywhere
		return
	}

	switch m.state {
	case stGround:
		m.feedGround(r)
	case stEscape:
		m.feedEscape(r)
	case stEscapeIntermediate:
		m.feedEscapeIntermediate(r)
	case stCsiEntry:
		m.feedCsiEntry(r)
	case stCsiParam:
		m.feedCsiParam(r)
	case stCsiIntermediate:
		m.feedCsiIntermediate(r)
	case stCsiIgnore:
		m.feedCsiIgnore(r)
	case stOscString:
		m.feedOscString(r)
	case stDcsEntry, stDcsPassthrough, stDcsIgnore:
		m.feedDcs(r)
	case stVt52Ground:
		m.feedVt52Ground(r)
	case stVt52Escape:
		m.feedVt52Escape(r)
	case stVt52Params:
		m.feedVt52Params(r)
	}
}

// FeedString drives Feed over every byte of s. Printable ground-state
// bytes reach the Sink as one Print call per byte; the lexer never batches
// them into a PrintString call.
func (m *Machine) FeedString(s string) {
	for i := 0; i < len(s); i++ {
		m.Feed(s[i])
	}
}

// anywhere implements the global transitions the VT500 diagram applies
// regardless of current state (parser/state.go's state.anywhere), minus
// the VT52 states, which must see 0x1B and 0x18/0x1A through their own
// local rules instead.
func (m *Machine) anywhere(r byte) (Transition, bool) {
	if m.state == stVt52Ground || m.state == stVt52Escape || m.state == stVt52Params {
		return Transition{}, false
	}
	switch {
	case r == 0x18 || r == 0x1A:
		m.reset()
		m.sink.Execute(r)
		m.setState(stGround)
		return Transition{}, true
	case r == vtid.ESC:
		m.reset()
		m.setState(stEscape)
		return Transition{}, true
	}
	return Transition{}, false
}

// Transition is a placeholder result type for anywhere(); it carries no
// data of its own because every anywhere() branch fully handles the byte.
type Transition struct{}

func (m *Machine) reset() {
	m.prefix = 0
	m.interm = 0
	m.params = m.params[:0]
	m.curDigits.Reset()
	m.curSet = false
}

// executeFromEscape routes a C0 control seen while collecting an escape
// sequence (after ESC or an ESC intermediate; the CSI states call
// Sink.Execute directly), honoring the Sink's own DispatchControlCharsFromEscape
// trait (spec.md §4.2) rather than assuming a fixed answer.
func (m *Machine) executeFromEscape(r byte) {
	if m.cfg != nil && m.cfg.DispatchControlCharsFromEscape() {
		m.sink.ExecuteFromEscape(r)
		return
	}
	m.sink.Execute(r)
}

func c0(r byte) bool {
	return r <= 0x17 || r == 0x19 || (0x1C <= r && r <= 0x1F)
}

func isPrint(r byte) bool {
	return (0x20 <= r && r <= 0x7F) || r >= 0xA0
}

func (m *Machine) feedGround(r byte) {
	switch {
	case c0(r):
		m.sink.Execute(r)
	case isPrint(r):
		m.sink.Print(rune(r))
	default:
		m.sink.Ignore()
	}
}

func (m *Machine) feedEscape(r byte) {
	switch {
	case c0(r):
		m.executeFromEscape(r)
	case 0x20 <= r && r <= 0x2F:
		m.interm = r
		m.setState(stEscapeIntermediate)
	case r == '[':
		m.reset()
		m.setState(stCsiEntry)
	case r == ']':
		m.resetOsc()
		m.setState(stOscString)
	case r == 'P', r == 'X', r == '^', r == '_':
		m.setState(stDcsEntry)
	case (0x30 <= r && r <= 0x4F) || (0x51 <= r && r <= 0x57) ||
		r == 'Y' || r == 'Z' || r == '\\' || (0x60 <= r && r <= 0x7E):
		m.sink.EscDispatch(vtid.Esc(r))
		m.setState(stGround)
	default:
		m.sink.Ignore()
	}
}

func (m *Machine) feedEscapeIntermediate(r byte) {
	switch {
	case c0(r):
		m.executeFromEscape(r)
	case 0x20 <= r && r <= 0x2F:
		// A second intermediate byte would be lost under the single-byte
		// vtid.ID model; every sequence this engine recognizes uses at
		// most one, so this branch only ever sees a repeat, which is
		// dropped like the collect buffer's later bytes would be.
	case 0x30 <= r && r <= 0x7E:
		m.sink.EscDispatch(vtid.EscI(m.interm, r))
		m.setState(stGround)
	default:
		m.sink.Ignore()
	}
}

func (m *Machine) feedCsiEntry(r byte) {
	switch {
	case c0(r):
		m.sink.Execute(r)
	case 0x40 <= r && r <= 0x7E:
		m.dispatchCsi(r)
	case (0x30 <= r && r <= 0x39) || r == ';':
		m.appendDigit(r)
		m.setState(stCsiParam)
	case 0x3C <= r && r <= 0x3F:
		m.prefix = r
		m.setState(stCsiParam)
	case r == ':':
		m.setState(stCsiIgnore)
	case 0x20 <= r && r <= 0x2F:
		m.interm = r
		m.setState(stCsiIntermediate)
	default:
		m.sink.Ignore()
	}
}

func (m *Machine) feedCsiParam(r byte) {
	switch {
	case c0(r):
		m.sink.Execute(r)
	case (0x30 <= r && r <= 0x39) || r == ';':
		m.appendDigit(r)
	case r == ':' || (0x3C <= r && r <= 0x3F):
		m.setState(stCsiIgnore)
	case 0x20 <= r && r <= 0x2F:
		m.interm = r
		m.setState(stCsiIntermediate)
	case 0x40 <= r && r <= 0x7E:
		m.dispatchCsi(r)
	default:
		m.sink.Ignore()
	}
}

func (m *Machine) feedCsiIntermediate(r byte) {
	switch {
	case c0(r):
		m.sink.Execute(r)
	case 0x20 <= r && r <= 0x2F:
		// second intermediate: see feedEscapeIntermediate's note.
	case 0x40 <= r && r <= 0x7E:
		m.dispatchCsi(r)
	default:
		m.setState(stCsiIgnore)
		m.sink.Ignore()
	}
}

func (m *Machine) feedCsiIgnore(r byte) {
	switch {
	case c0(r):
		m.sink.Execute(r)
	case 0x40 <= r && r <= 0x7E:
		m.sink.Ignore()
		m.setState(stGround)
	default:
		m.sink.Ignore()
	}
}

// appendDigit accumulates one CSI parameter byte, flushing the completed
// parameter into m.params on ';'.
func (m *Machine) appendDigit(r byte) {
	if r == ';' {
		m.params = append(m.params, m.finishParam())
		return
	}
	m.curDigits.WriteByte(r)
	m.curSet = true
}

func (m *Machine) finishParam() int {
	defer func() {
		m.curDigits.Reset()
		m.curSet = false
	}()
	if !m.curSet {
		return 0
	}
	n, err := strconv.Atoi(m.curDigits.String())
	if err != nil || n > paramMax {
		return paramMax
	}
	return n
}

func (m *Machine) dispatchCsi(final byte) {
	m.params = append(m.params, m.finishParam())
	id := vtid.ID{Prefix: m.prefix, Intermediate: m.interm, Final: final}
	m.sink.CsiDispatch(id, m.params)
	m.setState(stGround)
}

func (m *Machine) resetOsc() {
	m.oscBuf.Reset()
	m.oscCode = 0
	m.oscCodeSet = false
	m.oscSeenSep = false
}

func (m *Machine) feedOscString(r byte) {
	switch {
	case r == vtid.BEL:
		// The OSC is finished here with its BEL terminator; the state is
		// then assigned directly so setState's exit action does not
		// dispatch it a second time.
		m.finishOsc(vtid.BEL)
		m.state = stGround
	case 0x20 <= r && r <= 0x7F:
		if !m.oscSeenSep {
			if r == ';' {
				m.oscSeenSep = true
				n, err := strconv.Atoi(m.oscBuf.String())
				if err == nil {
					m.oscCode = n
					m.oscCodeSet = true
				}
				m.oscBuf.Reset()
				return
			}
			if !vtid.IsDecDigit(r) {
				// malformed code prefix; treat the rest as payload with
				// an unrecognized code so OscDispatch fails cleanly.
				m.oscSeenSep = true
				m.oscCodeSet = false
			}
		}
		m.oscBuf.WriteByte(r)
	default:
		m.sink.Ignore()
	}
}

func (m *Machine) finishOsc(terminator byte) {
	code := m.oscCode
	if !m.oscCodeSet {
		code = -1
	}
	m.sink.OscDispatch(terminator, code, m.oscBuf.String())
}

func (m *Machine) feedVt52Ground(r byte) {
	switch {
	case r == vtid.ESC:
		m.setState(stVt52Escape)
	case c0(r):
		m.sink.Execute(r)
	case isPrint(r):
		m.sink.Print(rune(r))
	default:
		m.sink.Ignore()
	}
}

func (m *Machine) feedVt52Escape(r byte) {
	if r == byte(vtid.Vt52DirectCursorAddress) {
		m.vt52Params = m.vt52Params[:0]
		m.setState(stVt52Params)
		return
	}
	m.sink.Vt52EscDispatch(vtid.Vt52(r), nil)
	m.setState(stVt52Ground)
}

func (m *Machine) feedVt52Params(r byte) {
	m.vt52Params = append(m.vt52Params, r)
	if len(m.vt52Params) == 2 {
		m.sink.Vt52EscDispatch(vtid.Vt52DirectCursorAddress, m.vt52Params)
		m.setState(stVt52Ground)
	}
}

// feedDcs swallows a DCS sequence without producing any Sink calls: no DCS
// operation is in this engine's recognized set (spec.md's Dispatcher
// surface has no DCS-triggered method). Every byte here is simply
// consumed; the sequence ends when anywhere() sees the ESC of its ST
// terminator and returns the machine to escape/ground.
func (m *Machine) feedDcs(r byte) {}
