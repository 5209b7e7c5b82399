package editor

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// rowsToBytes serializes every row to one buffer with a single "\n" after
// each line, including a trailing one after the last row (spec §4.F).
func (e *Editor) rowsToBytes() []byte {
	var buf bytes.Buffer
	for _, row := range e.rows {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Open replaces the buffer with filename's contents (spec §4.F). A read
// failure here is fatal by design, matching the source's load-or-die
// policy (spec §7): there is no buffer worth editing if the requested
// file can't be read.
func (e *Editor) Open(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", filename, err)
	}
	defer f.Close()

	e.filename = filename
	e.rows = make([]Row, 0)
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.SelectSyntax()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}
		e.insertRow(len(e.rows), line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %q: %w", filename, err)
	}
	e.dirty = false
	e.log.Debug().Str("file", filename).Int("rows", len(e.rows)).Msg("opened file")
	return nil
}

// Save writes the buffer to disk (spec §4.F). If no filename is set it
// prompts for one first; a canceled prompt aborts the save without error
// (the user chose to cancel, that's not a fatal condition).
func (e *Editor) Save() {
	if e.filename == "" {
		name, ok := e.Prompt("Save as: %s", nil)
		if !ok {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.SelectSyntax()
	}

	data := e.rowsToBytes()

	f, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		e.ShowError("Cannot save file: %v", err)
		return
	}
	defer f.Close()

	if err := f.Truncate(int64(len(data))); err != nil {
		e.ShowError("Cannot save file: %v", err)
		return
	}
	if _, err := f.Write(data); err != nil {
		e.ShowError("Cannot save file: %v", err)
		return
	}

	e.dirty = false
	e.SetStatusMessage("%d bytes written to disk", len(data))
	e.log.Info().Str("file", e.filename).Int("bytes", len(data)).Msg("saved file")
}
