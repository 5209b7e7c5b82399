package editor

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestDrawRowEmitsColorTransitionsAtClassBoundaries(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("x := 1"))
	withGoSyntax(e)

	var ab appendBuffer
	e.drawRow(&ab, &e.rows[0])
	out := string(ab.buf)

	wantNumber := fmt.Sprintf(fgColorFormat, fgNumber)
	if !strings.Contains(out, wantNumber) {
		t.Errorf("drawRow output %q does not switch to the number color %q", out, wantNumber)
	}
	wantDefault := fmt.Sprintf(fgColorFormat, fgColorDefault)
	if !strings.Contains(out, wantDefault) {
		t.Errorf("drawRow output %q never returns to the default foreground %q", out, wantDefault)
	}
	if strings.Count(out, wantNumber) != 1 {
		t.Errorf("drawRow output %q should switch into the number color exactly once for one digit run, got %d", out, strings.Count(out, wantNumber))
	}
}

func TestDrawRowRendersControlBytesAsInvertedQuestionMark(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte{'a', 0x01, 'b', 127, 'c'})

	var ab appendBuffer
	e.drawRow(&ab, &e.rows[0])
	out := string(ab.buf)

	want := "a" + colorsInvert + "?" + colorsReset +
		"b" + colorsInvert + "?" + colorsReset + "c"
	if !strings.HasPrefix(out, want) {
		t.Errorf("drawRow output = %q, want it to start with %q (every control byte as a literal '?', never a caret-letter)", out, want)
	}
	if strings.Contains(out, "A") {
		t.Errorf("drawRow output = %q contains 'A': control byte 0x01 must render as '?', not a caret-style letter", out)
	}
}

func TestDrawStatusBarShowsFilenameAndLineCount(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("one"))
	e.insertRow(1, []byte("two"))
	e.filename = "main.go"
	e.dirty = true
	e.cy = 1

	var ab appendBuffer
	e.drawStatusBar(&ab)
	out := string(ab.buf)

	for _, want := range []string{"main.go", "2 lines", "(modified)", "2/2"} {
		if !strings.Contains(out, want) {
			t.Errorf("status bar %q does not contain %q", out, want)
		}
	}
}

func TestDrawStatusBarNoFilenameShowsPlaceholder(t *testing.T) {
	e := newTestEditor()

	var ab appendBuffer
	e.drawStatusBar(&ab)
	out := string(ab.buf)

	if !strings.Contains(out, "[No Name]") {
		t.Errorf("status bar %q should show the no-filename placeholder", out)
	}
	if strings.Contains(out, "(modified)") {
		t.Errorf("status bar %q should not show (modified) on a clean buffer", out)
	}
}

func TestDrawMessageBarShowsUnexpiredMessage(t *testing.T) {
	e := newTestEditor()
	e.SetStatusMessage("saved")

	var ab appendBuffer
	e.drawMessageBar(&ab)
	out := string(ab.buf)

	if !strings.Contains(out, "saved") {
		t.Errorf("message bar %q should contain the unexpired status message", out)
	}
}

func TestDrawMessageBarHidesExpiredMessage(t *testing.T) {
	e := newTestEditor()
	e.statusTimeout = time.Millisecond
	e.SetStatusMessage("saved")
	e.statusMsgTime = time.Now().Add(-time.Hour)

	var ab appendBuffer
	e.drawMessageBar(&ab)
	out := string(ab.buf)

	if strings.Contains(out, "saved") {
		t.Errorf("message bar %q should hide a message past its status timeout", out)
	}
}
