package engine

import (
	"testing"

	"github.com/weiplanet/vtengine/vtid"
)

func TestEscDispatchTable(t *testing.T) {
	cases := []struct {
		name string
		id   vtid.ID
		want string
	}{
		{"DECSC", vtid.EscDECSC, "CursorSaveState"},
		{"DECRC", vtid.EscDECRC, "CursorRestoreState"},
		{"keypad app", vtid.EscKeypadApp, "SetKeypadMode"},
		{"NEL", vtid.EscNEL, "LineFeed"},
		{"IND", vtid.EscIND, "LineFeed"},
		{"RI", vtid.EscRI, "ReverseLineFeed"},
		{"HTS", vtid.EscHTS, "HorizontalTabSet"},
		{"RIS", vtid.EscRIS, "HardReset"},
		{"SS2", vtid.EscSS2, "SingleShift"},
		{"LS2R", vtid.EscLS2R, "LockingShiftRight"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spy := newSpyDispatcher()
			e, _ := NewEngine(spy)
			if !e.EscDispatch(c.id) {
				t.Errorf("EscDispatch(%v) = false, want true", c.id)
			}
			if len(spy.calls) != 1 || spy.calls[0] != c.want {
				t.Errorf("calls = %v, want [%s]", spy.calls, c.want)
			}
		})
	}
}

func TestEscDispatchST(t *testing.T) {
	spy := newSpyDispatcher()
	e, _ := NewEngine(spy)
	if !e.EscDispatch(vtid.EscST) {
		t.Error("EscDispatch(ST) should succeed")
	}
	if len(spy.calls) != 0 {
		t.Errorf("EscDispatch(ST) should not call the dispatcher, got %v", spy.calls)
	}
}

func TestEscDispatchDECALN(t *testing.T) {
	spy := newSpyDispatcher()
	e, _ := NewEngine(spy)
	if !e.EscDispatch(vtid.EscDECALN) {
		t.Error("EscDispatch(DECALN) should succeed")
	}
	if len(spy.calls) != 1 || spy.calls[0] != "ScreenAlignmentPattern" {
		t.Errorf("calls = %v, want [ScreenAlignmentPattern]", spy.calls)
	}
}

func TestEscDispatchCharsetDesignation(t *testing.T) {
	spy := newSpyDispatcher()
	e, _ := NewEngine(spy)
	id := vtid.EscI(vtid.Interm94Charset0, 'B')
	if !e.EscDispatch(id) {
		t.Error("EscDispatch(charset designation) should succeed")
	}
	if len(spy.calls) != 1 || spy.calls[0] != "Designate94Charset" {
		t.Errorf("calls = %v, want [Designate94Charset]", spy.calls)
	}
}

func TestEscDispatchUnrecognizedFails(t *testing.T) {
	spy := newSpyDispatcher()
	e, _ := NewEngine(spy)
	if e.EscDispatch(vtid.ID{Final: 'q'}) {
		t.Error("EscDispatch of an unrecognized id should fail")
	}
	if len(spy.calls) != 0 {
		t.Errorf("calls = %v, want none", spy.calls)
	}
}
