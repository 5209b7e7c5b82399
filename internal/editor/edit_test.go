package editor

import "testing"

func TestInsertCharAppendsVirtualRow(t *testing.T) {
	e := newTestEditor()
	if len(e.rows) != 0 {
		t.Fatalf("expected empty buffer")
	}
	e.InsertChar('a')
	if len(e.rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(e.rows))
	}
	if string(e.rows[0].chars) != "a" {
		t.Errorf("rows[0] = %q, want %q", e.rows[0].chars, "a")
	}
	if e.cx != 1 {
		t.Errorf("cx = %d, want 1", e.cx)
	}
	if !e.dirty {
		t.Errorf("dirty = false, want true after edit")
	}
}

func TestInsertNewlineSplitsRow(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("helloworld"))
	e.cx, e.cy = 5, 0

	e.InsertNewline()

	if len(e.rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(e.rows))
	}
	if string(e.rows[0].chars) != "hello" {
		t.Errorf("rows[0] = %q, want %q", e.rows[0].chars, "hello")
	}
	if string(e.rows[1].chars) != "world" {
		t.Errorf("rows[1] = %q, want %q", e.rows[1].chars, "world")
	}
	if e.cx != 0 || e.cy != 1 {
		t.Errorf("cursor = (%d,%d), want (0,1)", e.cx, e.cy)
	}
}

func TestInsertNewlineAtColumnZero(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("hello"))
	e.cx, e.cy = 0, 0

	e.InsertNewline()

	if len(e.rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(e.rows))
	}
	if string(e.rows[0].chars) != "" {
		t.Errorf("rows[0] = %q, want empty", e.rows[0].chars)
	}
	if string(e.rows[1].chars) != "hello" {
		t.Errorf("rows[1] = %q, want %q", e.rows[1].chars, "hello")
	}
}

func TestDeleteCharMergesRows(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("hello"))
	e.insertRow(1, []byte("world"))
	e.cx, e.cy = 0, 1

	e.DeleteChar()

	if len(e.rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(e.rows))
	}
	if string(e.rows[0].chars) != "helloworld" {
		t.Errorf("rows[0] = %q, want %q", e.rows[0].chars, "helloworld")
	}
	if e.cx != 5 || e.cy != 0 {
		t.Errorf("cursor = (%d,%d), want (5,0)", e.cx, e.cy)
	}
}

func TestDeleteCharNoopAtBufferStart(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("hello"))
	e.cx, e.cy = 0, 0

	e.DeleteChar()

	if len(e.rows) != 1 || string(e.rows[0].chars) != "hello" {
		t.Errorf("buffer changed unexpectedly: %+v", e.rows)
	}
}

func TestDeleteCharNoopOnVirtualTrailingRow(t *testing.T) {
	e := newTestEditor()
	e.cy = 0 // equals len(e.rows), the virtual trailing row

	e.DeleteChar()

	if len(e.rows) != 0 {
		t.Errorf("rows = %+v, want none created", e.rows)
	}
}
