package editor

import "os"

// Run drives the editor's cooperative main loop (spec §4.J): refresh,
// read one key, dispatch, repeat, until ProcessKeypress reports quit.
func (e *Editor) Run() {
	for {
		e.RefreshScreen()
		quit, err := e.ProcessKeypress()
		if err != nil {
			e.Die("reading keyboard input: %v", err)
		}
		if quit {
			return
		}
	}
}

// ProcessKeypress reads and dispatches exactly one logical key (spec
// §4.J). It returns (true, nil) once the user has confirmed quitting with
// unsaved changes discarded, or immediately on a clean buffer.
func (e *Editor) ProcessKeypress() (quit bool, err error) {
	key, err := e.term.readKey()
	if err != nil {
		return false, err
	}

	switch key {
	case CR:
		e.InsertNewline()

	case ctrlKey('q'):
		if e.dirty && e.quitTimesLeft > 1 {
			e.quitTimesLeft--
			e.SetStatusMessage(
				"WARNING!!! File has unsaved changes. "+
					"Press Ctrl-Q %d more times to quit.", e.quitTimesLeft)
			return false, nil
		}
		os.Stdout.Write([]byte(clearScreen))
		os.Stdout.Write([]byte(cursorHome))
		return true, nil

	case ctrlKey('s'):
		e.Save()

	case HomeKey:
		e.cx = 0

	case EndKey:
		if e.cy < len(e.rows) {
			e.cx = e.rows[e.cy].Len()
		}

	case ctrlKey('f'):
		e.Find()

	case BACKSPACE, ctrlKey('h'), DelKey:
		if key == DelKey {
			e.MoveCursor(ArrowRight)
		}
		e.DeleteChar()

	case PageUp, PageDown:
		if key == PageUp {
			e.cy = e.rowOffset
		} else {
			e.cy = e.rowOffset + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		}
		times := e.screenRows
		dir := ArrowUp
		if key == PageDown {
			dir = ArrowDown
		}
		for ; times > 0; times-- {
			e.MoveCursor(dir)
		}

	case ArrowUp, ArrowDown, ArrowLeft, ArrowRight:
		e.MoveCursor(key)

	case ctrlKey('l'), ESC:
		// no-op: Ctrl-L (traditional screen-refresh request) and a bare
		// Escape are swallowed, matching the original's dispatch table.

	default:
		if key >= 0 && key < 256 {
			e.InsertChar(byte(key))
		}
	}

	e.quitTimesLeft = e.quitTimesTotal
	return false, nil
}

// MoveCursor moves the cursor one step in the given arrow direction,
// clamping at buffer edges and wrapping across row boundaries (spec
// §4.J), then re-clamps cx to the landing row's length since rows vary.
func (e *Editor) MoveCursor(key int) {
	var row *Row
	if e.cy < len(e.rows) {
		row = &e.rows[e.cy]
	}

	switch key {
	case ArrowLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.rows[e.cy].Len()
		}
	case ArrowRight:
		if row != nil && e.cx < row.Len() {
			e.cx++
		} else if row != nil && e.cx == row.Len() {
			e.cy++
			e.cx = 0
		}
	case ArrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case ArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	rowLen := 0
	if e.cy < len(e.rows) {
		rowLen = e.rows[e.cy].Len()
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}
