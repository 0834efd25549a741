package engine

import "testing"

func TestParseColorSpecRoundTrip(t *testing.T) {
	for _, c := range []struct {
		spec string
		want uint32
	}{
		{"rgb:ff/80/00", 0x000080FF},
		{"rgb:f/8/0", 0x00008FFF},
		{"rgb:00/00/00", 0},
		{"rgb:ff/ff/ff", 0x00FFFFFF},
	} {
		got, ok := parseColorSpec(c.spec)
		if !ok || got != c.want {
			t.Errorf("parseColorSpec(%q) = (0x%06X,%v), want (0x%06X,true)", c.spec, got, ok, c.want)
		}
	}
}

func TestParseColorSpecRejectsMalformed(t *testing.T) {
	for _, spec := range []string{"rgb:fff/80/00", "rgb:ff/80", "ff/80/00", "rgb:zz/80/00", ""} {
		if _, ok := parseColorSpec(spec); ok {
			t.Errorf("parseColorSpec(%q) should fail", spec)
		}
	}
}

func TestParseIndexedColorSet(t *testing.T) {
	idx, rgb, ok := parseIndexedColorSet("1;rgb:ff/80/00")
	if !ok || idx != 1 || rgb != 0x000080FF {
		t.Errorf("parseIndexedColorSet = (%d,0x%06X,%v)", idx, rgb, ok)
	}
	if _, _, ok := parseIndexedColorSet("bad"); ok {
		t.Error("parseIndexedColorSet(\"bad\") should fail")
	}
}

func TestParseClipboard(t *testing.T) {
	content, isQuery, ok := parseClipboard("c;aGVsbG8=")
	if !ok || isQuery || string(content) != "hello" {
		t.Errorf("parseClipboard = (%q,%v,%v)", content, isQuery, ok)
	}
	_, isQuery, ok = parseClipboard("c;?")
	if !ok || !isQuery {
		t.Errorf("parseClipboard query = (_,%v,%v), want (_,true,true)", isQuery, ok)
	}
	if _, _, ok := parseClipboard("c;not-base64!!"); ok {
		t.Error("parseClipboard should fail on bad base64")
	}
}

func TestParseHyperlink(t *testing.T) {
	uri, id, isClose, ok := parseHyperlink("id=abc;https://x")
	if !ok || isClose || uri != "https://x" || id != "abc" {
		t.Errorf("parseHyperlink open = (%q,%q,%v,%v)", uri, id, isClose, ok)
	}
	_, _, isClose, ok = parseHyperlink(";")
	if !ok || !isClose {
		t.Errorf("parseHyperlink close = (_,_,%v,%v), want (_,_,true,true)", isClose, ok)
	}
}

func TestParseTitleRejectsEmpty(t *testing.T) {
	if _, ok := parseTitle(""); ok {
		t.Error("parseTitle(\"\") should fail")
	}
	if title, ok := parseTitle("shell"); !ok || title != "shell" {
		t.Errorf("parseTitle(\"shell\") = (%q,%v)", title, ok)
	}
}
