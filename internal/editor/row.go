package editor

import "slices"

// isControl reports whether b is a control byte (spec §4.H calls these
// out for inverted-`?` rendering).
func isControl(b byte) bool {
	return b < 32 || b == 127
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isSeparator reports whether b bounds a keyword or number per spec §4.D's
// glossary definition: whitespace, NUL, or punctuation in the set
// `,.()+-/*=~%<>[];`.
func isSeparator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f', 0:
		return true
	}
	for i := 0; i < len(separatorPunctuation); i++ {
		if b == separatorPunctuation[i] {
			return true
		}
	}
	return false
}

const separatorPunctuation = ",.()+-/*=~%<>[];"

// cxToRx converts a content-space column to its render-space column,
// expanding each tab to land on the next multiple of tabStop (spec §4.C).
func (r *Row) cxToRx(tabStop, cx int) int {
	rx := 0
	for _, c := range r.chars[:cx] {
		if c == '\t' {
			rx += tabStop - (rx % tabStop)
		} else {
			rx++
		}
	}
	return rx
}

// rxToCx is the inverse of cxToRx: the largest cx whose render position
// does not exceed rx, saturating at len(chars).
func (r *Row) rxToCx(tabStop, rx int) int {
	curRx := 0
	cx := 0
	for ; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			curRx += tabStop - (curRx % tabStop)
		} else {
			curRx++
		}
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// update regenerates render (tab expansion) and then invokes the
// highlighter. Called after every mutation of chars so that
// len(render) == len(hl) holds atomically (spec §3 invariant).
func (r *Row) update(e *Editor) {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.chars)+tabs*(e.tabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%e.tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
	r.updateSyntax(e)
}

// insertRow splices a new row at index at, copying s's bytes so the
// caller's slice can be reused or mutated afterward.
func (e *Editor) insertRow(at int, s []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	row := Row{idx: at, chars: slices.Clone(s)}
	e.rows = slices.Insert(e.rows, at, row)
	for j := at + 1; j < len(e.rows); j++ {
		e.rows[j].idx = j
	}
	e.rows[at].update(e)
	e.dirty = true
}

// deleteRow splices row at out, releasing its byte sequences.
func (e *Editor) deleteRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = slices.Delete(e.rows, at, at+1)
	for j := at; j < len(e.rows); j++ {
		e.rows[j].idx = j
	}
	e.dirty = true
}

// insertCharInRow inserts one byte at index at within the row's chars.
func (e *Editor) insertCharInRow(row *Row, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = slices.Insert(row.chars, at, c)
	row.update(e)
	e.dirty = true
}

// appendStringToRow appends s to the row's chars.
func (e *Editor) appendStringToRow(row *Row, s []byte) {
	row.chars = append(row.chars, s...)
	row.update(e)
	e.dirty = true
}

// deleteCharInRow removes the byte at index at within the row's chars.
func (e *Editor) deleteCharInRow(row *Row, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = slices.Delete(row.chars, at, at+1)
	row.update(e)
	e.dirty = true
}
