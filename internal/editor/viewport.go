package editor

// Scroll recomputes rx from cx and adjusts rowOffset/colOffset so the
// cursor stays inside the visible screen area (spec §4.G).
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = e.rows[e.cy].cxToRx(e.tabStop, e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}
	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}
