package engine

import "testing"

func TestExtractDistanceDefaults(t *testing.T) {
	cases := []struct {
		params []int
		want   int
	}{
		{nil, 1},
		{[]int{0}, 1},
		{[]int{5}, 5},
		{[]int{1}, 1},
	}
	for _, c := range cases {
		got, ok := extractDistance(c.params)
		if !ok || got != c.want {
			t.Errorf("extractDistance(%v) = (%d,%v), want (%d,true)", c.params, got, ok, c.want)
		}
	}
}

func TestExtractDistanceRejectsExtraParams(t *testing.T) {
	if _, ok := extractDistance([]int{5, 3}); ok {
		t.Error("extractDistance([5,3]) should reject more than one parameter")
	}
}

func TestExtractCoordinatesZeroPromotion(t *testing.T) {
	row, col, ok := extractCoordinates([]int{0, 5})
	if !ok || row != 1 || col != 5 {
		t.Errorf("extractCoordinates([0,5]) = (%d,%d,%v), want (1,5,true)", row, col, ok)
	}
	row, col, ok = extractCoordinates(nil)
	if !ok || row != 1 || col != 1 {
		t.Errorf("extractCoordinates(nil) = (%d,%d,%v), want (1,1,true)", row, col, ok)
	}
}

func TestExtractCoordinatesRejectsExtraParams(t *testing.T) {
	if _, _, ok := extractCoordinates([]int{1, 2, 3}); ok {
		t.Error("extractCoordinates([1,2,3]) should reject more than two parameters")
	}
}

func TestExtractMarginsRejectsInverted(t *testing.T) {
	if _, _, ok := extractMargins([]int{10, 3}); ok {
		t.Error("extractMargins([10,3]) should reject bottom < top")
	}
	top, bottom, ok := extractMargins([]int{3, 10})
	if !ok || top != 3 || bottom != 10 {
		t.Errorf("extractMargins([3,10]) = (%d,%d,%v), want (3,10,true)", top, bottom, ok)
	}
}

func TestExtractMarginsRejectsExtraParams(t *testing.T) {
	if _, _, ok := extractMargins([]int{3, 10, 99}); ok {
		t.Error("extractMargins([3,10,99]) should reject more than two parameters")
	}
}

func TestExtractEraseKind(t *testing.T) {
	cases := []struct {
		params []int
		want   EraseKind
	}{
		{nil, EraseToEnd},
		{[]int{0}, EraseToEnd},
		{[]int{1}, EraseFromBeginning},
		{[]int{2}, EraseAll},
		{[]int{3}, EraseScrollback},
	}
	for _, c := range cases {
		got, ok := extractEraseKind(c.params)
		if !ok || got != c.want {
			t.Errorf("extractEraseKind(%v) = (%v,%v), want (%v,true)", c.params, got, ok, c.want)
		}
	}
}

func TestExtractEraseKindRejectsUnknownValue(t *testing.T) {
	if _, ok := extractEraseKind([]int{9}); ok {
		t.Error("extractEraseKind([9]) should reject an unrecognized kind, matching ESC [ 9 J -> false")
	}
}

func TestExtractEraseKindRejectsExtraParams(t *testing.T) {
	if _, ok := extractEraseKind([]int{1, 2}); ok {
		t.Error("extractEraseKind([1,2]) should reject more than one parameter")
	}
}

func TestExtractDeviceStatusKind(t *testing.T) {
	kind, ok := extractDeviceStatusKind([]int{5})
	if !ok || kind != DeviceStatusOS {
		t.Errorf("extractDeviceStatusKind([5]) = (%v,%v), want (OS,true)", kind, ok)
	}
	kind, ok = extractDeviceStatusKind([]int{6})
	if !ok || kind != DeviceStatusCPR {
		t.Errorf("extractDeviceStatusKind([6]) = (%v,%v), want (CPR,true)", kind, ok)
	}
}

func TestExtractDeviceStatusKindRejectsUnknownValue(t *testing.T) {
	if _, ok := extractDeviceStatusKind([]int{99}); ok {
		t.Error("extractDeviceStatusKind([99]) should reject an unrecognized status type")
	}
}

func TestExtractDeviceStatusKindRejectsWrongArity(t *testing.T) {
	if _, ok := extractDeviceStatusKind(nil); ok {
		t.Error("extractDeviceStatusKind(nil) should reject: DSR requires exactly one parameter")
	}
	if _, ok := extractDeviceStatusKind([]int{5, 6}); ok {
		t.Error("extractDeviceStatusKind([5,6]) should reject more than one parameter")
	}
}

func TestExtractClearType(t *testing.T) {
	if got, ok := extractClearType(nil); !ok || got != 0 {
		t.Errorf("extractClearType(nil) = (%d,%v), want (0,true)", got, ok)
	}
	if got, ok := extractClearType([]int{3}); !ok || got != 3 {
		t.Errorf("extractClearType([3]) = (%d,%v), want (3,true)", got, ok)
	}
}

func TestExtractClearTypeRejectsExtraParams(t *testing.T) {
	if _, ok := extractClearType([]int{0, 3}); ok {
		t.Error("extractClearType([0,3]) should reject more than one parameter")
	}
}

func TestExtractCursorStyle(t *testing.T) {
	if got, ok := extractCursorStyle(nil); !ok || got != 1 {
		t.Errorf("extractCursorStyle(nil) = (%d,%v), want (1,true)", got, ok)
	}
	if got, ok := extractCursorStyle([]int{4}); !ok || got != 4 {
		t.Errorf("extractCursorStyle([4]) = (%d,%v), want (4,true)", got, ok)
	}
}

func TestExtractCursorStyleRejectsExtraParams(t *testing.T) {
	if _, ok := extractCursorStyle([]int{1, 2}); ok {
		t.Error("extractCursorStyle([1,2]) should reject more than one parameter")
	}
}

func TestExtractDA(t *testing.T) {
	if !extractDA(nil) {
		t.Error("extractDA(nil) should succeed")
	}
	if !extractDA([]int{0}) {
		t.Error("extractDA([0]) should succeed")
	}
	if extractDA([]int{1}) {
		t.Error("extractDA([1]) should fail")
	}
}

func TestExtractWindowManip(t *testing.T) {
	fn, args, ok := extractWindowManip([]int{8, 24, 80})
	if !ok || fn != WindowResizeChars || len(args) != 2 || args[0] != 24 || args[1] != 80 {
		t.Errorf("extractWindowManip([8,24,80]) = (%v,%v,%v)", fn, args, ok)
	}
	if _, _, ok := extractWindowManip([]int{1}); ok {
		t.Error("extractWindowManip([1]) should fail: unrecognized function")
	}
}

func TestExtractWindowManipRefresh(t *testing.T) {
	fn, args, ok := extractWindowManip([]int{7})
	if !ok || fn != WindowRefresh || len(args) != 0 {
		t.Errorf("extractWindowManip([7]) = (%v,%v,%v), want (WindowRefresh,[],true)", fn, args, ok)
	}
}

func TestExtractWindowManipRejectsReportSizeQueries(t *testing.T) {
	if _, _, ok := extractWindowManip([]int{18}); ok {
		t.Error("extractWindowManip([18]) should fail: 18 is a report-size query, not refresh")
	}
	if _, _, ok := extractWindowManip([]int{19}); ok {
		t.Error("extractWindowManip([19]) should fail: 19 is a report-size query, not refresh")
	}
}
