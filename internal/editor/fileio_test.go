package editor

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenTrimsLineEndings(t *testing.T) {
	e := newTestEditor()
	path := filepath.Join(t.TempDir(), "in.txt")
	if err := os.WriteFile(path, []byte("one\r\ntwo\nthree"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(e.rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(e.rows))
	}
	want := []string{"one", "two", "three"}
	for i, w := range want {
		if string(e.rows[i].chars) != w {
			t.Errorf("rows[%d] = %q, want %q", i, e.rows[i].chars, w)
		}
	}
	if e.dirty {
		t.Errorf("dirty = true immediately after Open, want false")
	}
}

func TestSaveWritesTrailingNewlinePerRow(t *testing.T) {
	e := newTestEditor()
	e.insertRow(0, []byte("one"))
	e.insertRow(1, []byte("two"))
	e.filename = filepath.Join(t.TempDir(), "out.txt")

	e.Save()

	data, err := os.ReadFile(e.filename)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "one\ntwo\n" {
		t.Errorf("saved data = %q, want %q", data, "one\ntwo\n")
	}
	if e.dirty {
		t.Errorf("dirty = true after successful save, want false")
	}
}

func TestSaveTruncatesShorterContent(t *testing.T) {
	e := newTestEditor()
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("a very long original line\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	e.filename = path
	e.insertRow(0, []byte("x"))

	e.Save()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "x\n" {
		t.Errorf("saved data = %q, want %q", data, "x\n")
	}
}
