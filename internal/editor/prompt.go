package editor

import "strings"

// Prompt reads a line of input on the status bar, driven by the same key
// decoder as the main loop (spec §4.I). format must contain exactly one
// "%s", where the input typed so far is shown. Returns the entered text
// and true, or ("", false) if the user canceled with Escape.
//
// callback, when non-nil, is invoked after every keystroke with the
// buffer built so far and the key that produced it — the hook Find uses
// to highlight matches incrementally. It is a closure rather than a raw
// function pointer, which is already idiomatic Go; there is nothing to
// adapt here.
func (e *Editor) Prompt(format string, callback func(query []byte, key int)) (string, bool) {
	var buf []byte

	for {
		e.SetStatusMessage(format, string(buf))
		e.RefreshScreen()

		key, err := e.term.readKey()
		if err != nil {
			e.Die("reading keyboard input: %v", err)
		}

		switch key {
		case DelKey, ctrlKey('h'), BACKSPACE:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case ESC:
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return "", false
		case CR:
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf), true
			}
		default:
			if key < 128 && !isControl(byte(key)) {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}

// findState holds the incremental-search cursor across Find's Prompt
// callback invocations. The teacher keeps this as four package-level vars
// (lastMatch, direction, savedHlLine, savedHl); this module threads it
// through a local value instead, since the package has no globals (spec
// §9's Design Notes).
type findState struct {
	lastMatch int
	direction int
	savedLine int
	savedHl   []hlClass
}

// Find runs the incremental-search sub-loop (spec §4.I): arrow keys move
// to the previous/next match, any other key edits the query and restarts
// the search from the top, Enter ends the search at the current match, and
// Escape ends it and restores the cursor to wherever it started. Whatever
// row highlighting Find temporarily overwrote to mark the current match is
// restored on the next keystroke.
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOffset, savedRowOffset := e.colOffset, e.rowOffset

	st := &findState{lastMatch: -1, direction: 1, savedLine: -1}

	_, ok := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", st.findCallback(e))

	if !ok {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOffset, savedRowOffset
	}
}

// findCallback returns the per-keystroke hook Prompt invokes, closing over
// both the Editor and this search's findState.
func (st *findState) findCallback(e *Editor) func([]byte, int) {
	return func(query []byte, key int) {
		if st.savedLine != -1 {
			e.rows[st.savedLine].hl = st.savedHl
			st.savedLine = -1
			st.savedHl = nil
		}

		switch key {
		case CR, ESC:
			st.lastMatch = -1
			st.direction = 1
			return
		case ArrowRight, ArrowDown:
			st.direction = 1
		case ArrowLeft, ArrowUp:
			st.direction = -1
		default:
			st.lastMatch = -1
			st.direction = 1
		}

		if len(query) == 0 || len(e.rows) == 0 {
			return
		}

		current := st.lastMatch
		for i := 0; i < len(e.rows); i++ {
			current += st.direction
			switch {
			case current == -1:
				current = len(e.rows) - 1
			case current == len(e.rows):
				current = 0
			}

			row := &e.rows[current]
			idx := strings.Index(string(row.render), string(query))
			if idx == -1 {
				continue
			}

			st.lastMatch = current
			e.cy = current
			e.cx = row.rxToCx(e.tabStop, idx)
			e.rowOffset = len(e.rows)

			st.savedLine = current
			st.savedHl = append([]hlClass(nil), row.hl...)
			for j := idx; j < idx+len(query) && j < len(row.hl); j++ {
				row.hl[j] = hlMatch
			}
			break
		}
	}
}
