package editor

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// terminal owns the raw-mode lifecycle and byte-level I/O with the
// controlling tty. in/out default to stdin/stdout; tests substitute a
// plain io.Reader for the decoder table without touching raw mode at all.
type terminal struct {
	state *term.State
	in    io.Reader
	out   io.Writer
}

func newTerminal() *terminal {
	return &terminal{in: os.Stdin, out: os.Stdout}
}

// enableRaw disables echo, canonical mode, signal generation, flow
// control, and CR→NL translation, and configures a bounded read timeout
// with a zero-byte minimum (spec §6) so the key decoder's blocking read
// can still cooperate with the rest of the process. golang.org/x/term
// covers the termios bits that are portable across its supported
// platforms; the VMIN/VTIME timeout tuning is POSIX-specific and applied
// afterward via golang.org/x/sys/unix, the same pattern the pack's other
// kilo ports (braheezy-kilo, ekediala-kilo) use directly without x/term at
// all.
func (t *terminal) enableRaw() error {
	f, ok := t.in.(*os.File)
	if !ok {
		return errors.New("raw mode requires a file-backed stdin")
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("not running in a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	t.state = state

	raw, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return fmt.Errorf("reading termios after MakeRaw: %w", err)
	}
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1 // deciseconds: a 100ms read timeout, per spec §6
	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, raw); err != nil {
		return fmt.Errorf("tuning read timeout: %w", err)
	}
	return nil
}

// restore puts the terminal back exactly how enableRaw found it. Safe to
// call multiple times and safe to call when raw mode was never entered.
func (t *terminal) restore() {
	f, ok := t.in.(*os.File)
	if !ok || t.state == nil {
		return
	}
	term.Restore(int(f.Fd()), t.state)
	t.state = nil
}

// readByteBlocking reads exactly one byte, retrying across the
// VTIME-driven zero-byte timeouts until data arrives. This is the
// decoder's "blocking read of one byte" entry point (spec §4.B).
func (t *terminal) readByteBlocking() (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := t.in.Read(buf)
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			if err == io.EOF {
				return 0, err
			}
			return 0, fmt.Errorf("reading keyboard input: %w", err)
		}
		// n == 0, err == nil: the read timeout elapsed with nothing typed.
		// Retry — this is the decoder's normal idle-poll cooperative wait.
	}
}

// tryReadByte attempts a single, non-retrying read. ok is false when the
// read timed out with no byte available (spec §4.B step 1's "timeout").
func (t *terminal) tryReadByte() (b byte, ok bool, err error) {
	buf := make([]byte, 1)
	n, err := t.in.Read(buf)
	if err != nil && err != io.EOF {
		return 0, false, fmt.Errorf("reading keyboard input: %w", err)
	}
	if n == 1 {
		return buf[0], true, nil
	}
	return 0, false, nil
}

// windowSize returns (rows, cols). It prefers the kernel's ioctl; if that
// is unavailable it falls back to the corrected cursor-position trick from
// spec §6/§9: push the cursor to the bottom-right corner, request its
// position, and parse the reply.
func (t *terminal) windowSize() (rows, cols int, err error) {
	if f, ok := t.out.(*os.File); ok {
		if c, r, err := term.GetSize(int(f.Fd())); err == nil && c != 0 {
			return r, c, nil
		}
	}
	if _, err := io.WriteString(t.out, cursorBottomRight); err != nil {
		return 0, 0, err
	}
	return t.cursorPosition()
}

// cursorPosition implements the \x1b[6n request/response dance.
func (t *terminal) cursorPosition() (rows, cols int, err error) {
	if _, err := io.WriteString(t.out, cursorGetPosition); err != nil {
		return 0, 0, err
	}

	buf := make([]byte, 32)
	i := 0
	for i < len(buf) {
		b, ok, err := t.tryReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			break
		}
		buf[i] = b
		i++
		if b == 'R' {
			break
		}
	}

	if i < 2 || buf[0] != ESC || buf[1] != '[' {
		return 0, 0, errors.New("improper cursor position response")
	}
	if _, err := fmt.Sscanf(string(buf[2:i-1]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// readKey blocks for one byte and decodes it into a logical key value per
// spec §4.B: ordinary bytes pass through unchanged; multi-byte escape
// sequences resolve to the ArrowX/HomeKey/EndKey/DelKey/PageX sentinels;
// anything unrecognized — including ESC itself when no sequence follows —
// comes back as ESC.
func (t *terminal) readKey() (int, error) {
	c, err := t.readByteBlocking()
	if err != nil {
		return 0, err
	}
	if c != ESC {
		return int(c), nil
	}

	b0, ok, err := t.tryReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return ESC, nil
	}
	b1, ok, err := t.tryReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return ESC, nil
	}

	switch b0 {
	case '[':
		if b1 >= '0' && b1 <= '9' {
			b2, ok, err := t.tryReadByte()
			if err != nil {
				return 0, err
			}
			if !ok || b2 != '~' {
				return ESC, nil
			}
			switch b1 {
			case '1', '7':
				return HomeKey, nil
			case '3':
				return DelKey, nil
			case '4', '8':
				return EndKey, nil
			case '5':
				return PageUp, nil
			case '6':
				return PageDown, nil
			}
			return ESC, nil
		}
		switch b1 {
		case 'A':
			return ArrowUp, nil
		case 'B':
			return ArrowDown, nil
		case 'C':
			return ArrowRight, nil
		case 'D':
			return ArrowLeft, nil
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
		return ESC, nil
	case 'O':
		switch b1 {
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
		return ESC, nil
	}
	return ESC, nil
}
