package engine

import (
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/weiplanet/vtengine/vtid"
)

// parseColorSpec parses an xterm color spec of the form
// "rgb:H{1,2}/H{1,2}/H{1,2}" (spec.md §4.1.6) into a packed 0x00BBGGRR
// value. Each component accumulates up to two hex digits; a component with
// more than two digits, a missing separator, or a non-hex byte fails the
// whole parse.
func parseColorSpec(s string) (rgb uint32, ok bool) {
	if len(s) < 9 || len(s) > 12 || !strings.HasPrefix(s, "rgb:") {
		return 0, false
	}
	parts := strings.Split(s[4:], "/")
	if len(parts) != 3 {
		return 0, false
	}
	var bytes [3]byte
	for i, p := range parts {
		b, ok := parseHexByte(p)
		if !ok {
			return 0, false
		}
		bytes[i] = b
	}
	r, g, b := bytes[0], bytes[1], bytes[2]
	return uint32(b)<<16 | uint32(g)<<8 | uint32(r), true
}

// parseHexByte reads a 1-2 digit hex component and collapses it to a
// single byte the way LOBYTE would: a lone digit is left-shifted into the
// high nibble (matching xterm's own "ff" from "f" behavior), while two
// digits are read directly.
func parseHexByte(s string) (byte, bool) {
	if len(s) != 1 && len(s) != 2 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !vtid.IsHexDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, false
	}
	if len(s) == 1 {
		return byte(n)<<4 | byte(n), true
	}
	return byte(n), true
}

// parseIndexedColorSet parses "Pi;rgb:..." for OSC 4 (spec.md §4.1.6),
// where Pi is a 1-3 digit decimal index. Total length must fall in [11,16].
func parseIndexedColorSet(s string) (index int, rgb uint32, ok bool) {
	if len(s) < 11 || len(s) > 16 {
		return 0, 0, false
	}
	semi := strings.IndexByte(s, ';')
	if semi < 1 || semi > 3 {
		return 0, 0, false
	}
	idxStr := s[:semi]
	for i := 0; i < len(idxStr); i++ {
		if !vtid.IsDecDigit(idxStr[i]) {
			return 0, 0, false
		}
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil {
		return 0, 0, false
	}
	rgb, ok = parseColorSpec(s[semi+1:])
	if !ok {
		return 0, 0, false
	}
	return idx, rgb, true
}

// parseClipboard parses "Pc;Pd" for OSC 52 (spec.md §4.1.6). Pc is
// ignored. Pd == "?" reports isQuery=true with no content. Otherwise Pd is
// base64-decoded into content.
func parseClipboard(s string) (content []byte, isQuery bool, ok bool) {
	semi := strings.IndexByte(s, ';')
	if semi < 0 {
		return nil, false, false
	}
	pd := s[semi+1:]
	if pd == "?" {
		return nil, true, true
	}
	content, err := base64.StdEncoding.DecodeString(pd)
	if err != nil {
		return nil, false, false
	}
	return content, false, true
}

// parseHyperlink parses "params;uri" for OSC 8 (spec.md §4.1.6). id is the
// value following "id=" inside params, if present. An empty uri reports
// isClose=true.
func parseHyperlink(s string) (uri, id string, isClose bool, ok bool) {
	semi := strings.IndexByte(s, ';')
	if semi < 0 {
		return "", "", false, false
	}
	params, rest := s[:semi], s[semi+1:]
	for _, kv := range strings.Split(params, ":") {
		if v, found := strings.CutPrefix(kv, "id="); found {
			id = v
			break
		}
	}
	if rest == "" {
		return "", id, true, true
	}
	return rest, id, false, true
}

// parseTitle validates a title-family OSC payload (spec.md §4.1.6): the
// text is used verbatim, but an empty payload is rejected.
func parseTitle(payload string) (string, bool) {
	if payload == "" {
		return "", false
	}
	return payload, true
}
