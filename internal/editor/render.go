package editor

import (
	"fmt"
	"time"
)

// welcomeMessage is shown centered on an empty buffer, a third of the way
// down the text area (spec §4.H).
const welcomeMessage = "kilt editor -- version %s"

// RefreshScreen redraws the entire screen in a single write: it hides the
// cursor, repositions to the top-left, draws rows/status/message, places
// the cursor, then shows it again. Building one buffer and writing it once
// avoids the flicker a naive per-line write would cause.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var ab appendBuffer
	ab.appendString(cursorHide)
	ab.appendString(cursorHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)

	ab.appendString(fmt.Sprintf(cursorPositionFormat,
		(e.cy-e.rowOffset)+1, (e.rx-e.colOffset)+1))
	ab.appendString(cursorShow)

	e.term.out.Write(ab.buf)
	ab.release()
}

// drawRows draws the text area: one buffer row per screen row, or the
// welcome message/tilde filler when the buffer is empty (spec §4.H).
func (e *Editor) drawRows(ab *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		fileRow := y + e.rowOffset
		if fileRow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenRows/3 {
				msg := fmt.Sprintf(welcomeMessage, Version)
				if len(msg) > e.screenCols {
					msg = msg[:e.screenCols]
				}
				padding := (e.screenCols - len(msg)) / 2
				if padding > 0 {
					ab.appendByte('~')
					padding--
				}
				for ; padding > 0; padding-- {
					ab.appendByte(' ')
				}
				ab.appendString(msg)
			} else {
				ab.appendByte('~')
			}
		} else {
			e.drawRow(ab, &e.rows[fileRow])
		}

		ab.appendString(clearLine)
		ab.appendString("\r\n")
	}
}

// drawRow renders one buffer row's visible slice, switching SGR foreground
// color at each highlight-class boundary and rendering control bytes as an
// inverted '?' (spec §4.H). Row.update deliberately leaves control bytes in
// render untouched, so that expansion is done here instead.
func (e *Editor) drawRow(ab *appendBuffer, row *Row) {
	render := row.render
	if e.colOffset >= len(render) {
		return
	}
	render = render[e.colOffset:]
	hl := row.hl[e.colOffset:]
	if len(render) > e.screenCols {
		render = render[:e.screenCols]
		hl = hl[:e.screenCols]
	}

	curColor := -1
	for i, c := range render {
		if isControl(c) {
			ab.appendString(colorsInvert)
			ab.appendByte('?')
			ab.appendString(colorsReset)
			if curColor != -1 {
				ab.appendString(fmt.Sprintf(fgColorFormat, curColor))
			}
			continue
		}

		class := hl[i]
		if class == hlNormal {
			if curColor != -1 {
				ab.appendString(fmt.Sprintf(fgColorFormat, fgColorDefault))
				curColor = -1
			}
			ab.appendByte(c)
			continue
		}

		color := colorFor(class)
		if color != curColor {
			ab.appendString(fmt.Sprintf(fgColorFormat, color))
			curColor = color
		}
		ab.appendByte(c)
	}
	ab.appendString(fmt.Sprintf(fgColorFormat, fgColorDefault))
}

// drawStatusBar draws the inverted-video filename/dirty/type/position bar
// (spec §4.H).
func (e *Editor) drawStatusBar(ab *appendBuffer) {
	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	dirty := ""
	if e.dirty {
		dirty = "(modified)"
	}
	left := fmt.Sprintf("%.20s - %d lines %s", name, len(e.rows), dirty)
	if len(left) > e.screenCols {
		left = left[:e.screenCols]
	}

	fileType := "no ft"
	if e.syntax != nil {
		fileType = e.syntax.FileType
	}
	right := fmt.Sprintf("%s | %d/%d", fileType, e.cy+1, len(e.rows))

	ab.appendString(colorsInvert)
	ab.appendString(left)
	for pad := len(left); pad < e.screenCols; pad++ {
		if e.screenCols-pad == len(right) {
			ab.appendString(right)
			break
		}
		ab.appendByte(' ')
	}
	ab.appendString(colorsReset)
	ab.appendString("\r\n")
}

// drawMessageBar draws the transient status message, clearing it once it
// has been visible past statusTimeout (spec §4.H).
func (e *Editor) drawMessageBar(ab *appendBuffer) {
	ab.appendString(clearLine)
	msg := e.statusMsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	if msg != "" && time.Since(e.statusMsgTime) < e.statusTimeout {
		ab.appendString(msg)
	}
}
