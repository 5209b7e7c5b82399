package editor

import "testing"

func TestScrollTracksCursorBelowWindow(t *testing.T) {
	e := newTestEditor()
	e.screenRows = 5
	for i := 0; i < 20; i++ {
		e.insertRow(i, []byte("row"))
	}
	e.cy = 12

	e.Scroll()

	if e.rowOffset != e.cy-e.screenRows+1 {
		t.Errorf("rowOffset = %d, want %d", e.rowOffset, e.cy-e.screenRows+1)
	}
}

func TestScrollTracksCursorAboveWindow(t *testing.T) {
	e := newTestEditor()
	e.rowOffset = 10
	e.cy = 3

	e.Scroll()

	if e.rowOffset != 3 {
		t.Errorf("rowOffset = %d, want 3", e.rowOffset)
	}
}

func TestScrollComputesRxFromTabs(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("\tx"))
	e.cx = 2
	e.cy = 0

	e.Scroll()

	if e.rx != 9 {
		t.Errorf("rx = %d, want 9", e.rx)
	}
}
