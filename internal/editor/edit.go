package editor

// InsertChar inserts c at the cursor and advances it (spec §4.E). Typing
// past the last row first appends an empty virtual-trailing row.
func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.insertCharInRow(&e.rows[e.cy], e.cx, c)
	e.cx++
}

// InsertNewline splits the current row at the cursor column, or inserts a
// blank row if the cursor sits at column zero (spec §4.E).
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		row := &e.rows[e.cy]
		tail := append([]byte(nil), row.chars[e.cx:]...)
		e.insertRow(e.cy+1, tail)

		row = &e.rows[e.cy] // insertRow may have reallocated e.rows
		row.chars = row.chars[:e.cx]
		row.update(e)
	}
	e.cy++
	e.cx = 0
}

// DeleteChar deletes the byte left of the cursor (spec §4.E). It is a
// no-op on the virtual trailing row and at the buffer's very start.
func (e *Editor) DeleteChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.rows[e.cy]
	if e.cx > 0 {
		e.deleteCharInRow(row, e.cx-1)
		e.cx--
		return
	}

	prev := &e.rows[e.cy-1]
	e.cx = len(prev.chars)
	e.appendStringToRow(prev, row.chars)
	e.deleteRow(e.cy)
	e.cy--
}
