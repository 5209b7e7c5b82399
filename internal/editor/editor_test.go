package editor

import "testing"

func TestNewAppliesOptions(t *testing.T) {
	e := New(WithTabStop(4), WithQuitConfirmations(1))
	if e.tabStop != 4 {
		t.Errorf("tabStop = %d, want 4", e.tabStop)
	}
	if e.quitTimesTotal != 1 || e.quitTimesLeft != 1 {
		t.Errorf("quitTimes = (%d,%d), want (1,1)", e.quitTimesTotal, e.quitTimesLeft)
	}
}

func TestWithSyntaxRulesOverridesBuiltins(t *testing.T) {
	e := New(WithSyntaxRules([]Syntax{
		{FileType: "conf", FileMatch: []string{".conf"}, SinglelineComment: "#"},
	}))
	e.screenRows, e.screenCols = 24, 80
	e.filename = "app.conf"

	e.SelectSyntax()

	if e.syntax == nil || e.syntax.FileType != "conf" {
		t.Fatalf("syntax = %+v, want the configured 'conf' rule", e.syntax)
	}

	other := newTestEditor()
	other.filename = "app.conf"
	other.SelectSyntax()
	if other.syntax != nil {
		t.Errorf("unrelated Editor picked up another instance's configured rule: %+v", other.syntax)
	}
}

func TestSetStatusMessageFormats(t *testing.T) {
	e := newTestEditor()
	e.SetStatusMessage("%d bytes written", 42)
	if e.statusMsg != "42 bytes written" {
		t.Errorf("statusMsg = %q, want %q", e.statusMsg, "42 bytes written")
	}
}

func TestMoveCursorClampsAtBufferStart(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("hi"))
	e.cx, e.cy = 0, 0

	e.MoveCursor(ArrowLeft)

	if e.cx != 0 || e.cy != 0 {
		t.Errorf("cursor = (%d,%d), want (0,0)", e.cx, e.cy)
	}
}

func TestMoveCursorWrapsToNextRow(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("hi"))
	e.insertRow(1, []byte("there"))
	e.cx, e.cy = 2, 0 // end of row 0

	e.MoveCursor(ArrowRight)

	if e.cx != 0 || e.cy != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", e.cx, e.cy)
	}
}

func TestMoveCursorClampsColumnOnShorterRow(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("a long row"))
	e.insertRow(1, []byte("short"))
	e.cx, e.cy = 9, 0

	e.MoveCursor(ArrowDown)

	if e.cy != 1 {
		t.Fatalf("cy = %d, want 1", e.cy)
	}
	if e.cx != len("short") {
		t.Errorf("cx = %d, want %d (clamped to row length)", e.cx, len("short"))
	}
}

func TestProcessKeypressQuitRequiresConfirmation(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("x"))
	e.dirty = true
	e.quitTimesTotal = 2
	e.quitTimesLeft = 2
	e.term = newTestTerminal(string(rune(ctrlKey('q'))))

	quit, err := e.ProcessKeypress()
	if err != nil {
		t.Fatalf("ProcessKeypress: %v", err)
	}
	if quit {
		t.Errorf("quit = true on first Ctrl-Q with unsaved changes, want false")
	}
	if e.quitTimesLeft != 1 {
		t.Errorf("quitTimesLeft = %d, want 1", e.quitTimesLeft)
	}
}

func TestProcessKeypressQuitsCleanBuffer(t *testing.T) {
	e := newTestEditor()
	e.term = newTestTerminal(string(rune(ctrlKey('q'))))

	quit, err := e.ProcessKeypress()
	if err != nil {
		t.Fatalf("ProcessKeypress: %v", err)
	}
	if !quit {
		t.Errorf("quit = false on Ctrl-Q with a clean buffer, want true")
	}
}
