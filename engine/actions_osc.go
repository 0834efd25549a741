package engine

// OscDispatch dispatches an operating-system command (spec.md §4.1.6).
// terminator is accepted but unused: the Engine does not distinguish a
// BEL-terminated OSC from an ST-terminated one.
func (e *Engine) OscDispatch(terminator byte, code int, payload string) bool {
	defer e.clearLastPrinted()

	var ok bool
	switch code {
	case 0, 1, 2:
		title, valid := parseTitle(payload)
		if !valid {
			ok = false
			break
		}
		ok = e.dispatcher.SetWindowTitle(title)
	case 4:
		index, rgb, valid := parseIndexedColorSet(payload)
		if !valid {
			ok = false
			break
		}
		ok = e.dispatcher.SetColorTableEntry(index, rgb)
	case 10:
		rgb, valid := parseColorSpec(payload)
		if !valid {
			ok = false
			break
		}
		ok = e.dispatcher.SetDefaultForeground(rgb)
	case 11:
		rgb, valid := parseColorSpec(payload)
		if !valid {
			ok = false
			break
		}
		ok = e.dispatcher.SetDefaultBackground(rgb)
	case 12:
		rgb, valid := parseColorSpec(payload)
		if !valid {
			ok = false
			break
		}
		ok = e.dispatcher.SetCursorColor(rgb)
	case 52:
		content, isQuery, valid := parseClipboard(payload)
		if !valid {
			ok = false
			break
		}
		if isQuery {
			ok = true
			break
		}
		ok = e.dispatcher.SetClipboard(content)
	case 112:
		ok = e.dispatcher.SetCursorColor(InvalidCursorColor)
	case 8:
		uri, id, isClose, valid := parseHyperlink(payload)
		if !valid {
			ok = false
			break
		}
		if isClose {
			ok = e.dispatcher.EndHyperlink()
			break
		}
		ok = e.dispatcher.AddHyperlink(uri, id)
	default:
		ok = false
	}
	return e.resolve(ok)
}
