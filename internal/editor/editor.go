// Package editor implements the interactive terminal editor engine: the
// key decoder, row model, syntax highlighter, viewport, renderer, and
// prompt/find sub-loop described by the kilt editor core.
package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Version is reported by the --version flag and the empty-buffer welcome
// message.
const Version = "1.0.0"

// Defaults, overridable via internal/config.
const (
	DefaultTabStop       = 8
	DefaultStatusTimeout = 5 * time.Second
	DefaultQuitTimes     = 3
)

// Key codes. Ordinary bytes (including BACKSPACE) pass through unchanged;
// everything above 255 is a decoder sentinel with no byte representation.
const (
	ESC       = 0x1b
	CR        = '\r'
	BACKSPACE = 127
)

const (
	ArrowLeft = 1000 + iota
	ArrowRight
	ArrowUp
	ArrowDown
	DelKey
	HomeKey
	EndKey
	PageUp
	PageDown
)

// ctrlKey reproduces the CTRL_KEY bit-mask from the original editor: it
// strips bits 5 and 6 from an ASCII letter to get its control-key code.
func ctrlKey(c byte) int {
	return int(c) & 0x1f
}

// Row is one logical line of text: a raw byte sequence with a derived,
// tab-expanded render form and a parallel highlight-class span.
type Row struct {
	idx           int
	chars         []byte
	render        []byte
	hl            []hlClass
	hlOpenComment bool
}

// Len returns the number of bytes in the row's raw content.
func (r *Row) Len() int { return len(r.chars) }

// Chars returns the row's raw byte content. Callers must not retain a
// mutable reference across any operation that may reallocate the row
// sequence.
func (r *Row) Chars() []byte { return r.chars }

// Render returns the row's tab-expanded render form.
func (r *Row) Render() []byte { return r.render }

// Editor is the single owning aggregate for all editor state: cursor,
// rows, viewport, status, and the syntax rule currently selected. There is
// exactly one instance per process; every core operation takes a pointer
// to it rather than reading process-global state.
type Editor struct {
	cx, cy    int
	rx        int
	rowOffset int
	colOffset int

	screenRows int
	screenCols int

	rows  []Row
	dirty bool

	filename          string
	statusMsg         string
	statusMsgTime     time.Time
	statusTimeout     time.Duration
	quitTimesTotal    int
	quitTimesLeft     int
	tabStop           int

	syntax      *Syntax
	syntaxTable []Syntax

	term *terminal
	log  zerolog.Logger
}

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithTabStop overrides the tab width used for render expansion.
func WithTabStop(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.tabStop = n
		}
	}
}

// WithStatusTimeout overrides how long a status message stays visible.
func WithStatusTimeout(d time.Duration) Option {
	return func(e *Editor) {
		if d > 0 {
			e.statusTimeout = d
		}
	}
}

// WithQuitConfirmations overrides how many Ctrl-Q presses are required to
// discard unsaved changes.
func WithQuitConfirmations(n int) Option {
	return func(e *Editor) {
		if n > 0 {
			e.quitTimesTotal = n
		}
	}
}

// WithLogger attaches a structured logger for diagnostics that must not
// appear on the terminal screen. A zero Logger is treated as a no-op.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithSyntaxRules prepends additional filetype rules ahead of the
// built-in table on this Editor, so configured overrides are tried first.
func WithSyntaxRules(rules []Syntax) Option {
	return func(e *Editor) {
		e.syntaxTable = append(append([]Syntax{}, rules...), builtinSyntaxDB...)
	}
}

// New creates an Editor ready to Init. Screen size is not read until Init
// is called, so construction never fails.
func New(opts ...Option) *Editor {
	e := &Editor{
		tabStop:        DefaultTabStop,
		statusTimeout:  DefaultStatusTimeout,
		quitTimesTotal: DefaultQuitTimes,
		term:           newTerminal(),
		log:            zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.quitTimesLeft = e.quitTimesTotal
	return e
}

// Init reads the terminal window size and resets all editor state to an
// empty buffer. It must run after EnableRawMode so that the size is read
// from the same terminal the editor will draw to.
func (e *Editor) Init() error {
	e.cx, e.cy = 0, 0
	e.rx = 0
	e.rowOffset, e.colOffset = 0, 0
	e.rows = make([]Row, 0)
	e.dirty = false
	e.filename = ""
	e.statusMsg = ""
	e.statusMsgTime = time.Time{}
	e.syntax = nil
	e.quitTimesLeft = e.quitTimesTotal

	rows, cols, err := e.term.windowSize()
	if err != nil {
		return err
	}
	e.screenRows = rows - 2 // reserve the status bar and message bar
	e.screenCols = cols
	return nil
}

// RowCount returns the number of real rows in the buffer.
func (e *Editor) RowCount() int { return len(e.rows) }

// Dirty reports whether the buffer has unsaved edits since the last open
// or successful save.
func (e *Editor) Dirty() bool { return e.dirty }

// Cursor returns the current buffer-space cursor position (cx, cy).
func (e *Editor) Cursor() (int, int) { return e.cx, e.cy }

// EnableRawMode disables terminal echo, canonical mode, and signal
// generation so every keypress reaches the decoder directly.
func (e *Editor) EnableRawMode() error {
	e.log.Debug().Msg("entering raw mode")
	return e.term.enableRaw()
}

// RestoreTerminal restores whatever terminal attributes were in effect
// before EnableRawMode. It is safe to call more than once and safe to call
// even if raw mode was never entered.
func (e *Editor) RestoreTerminal() {
	e.term.restore()
	e.log.Debug().Msg("restored terminal mode")
}

// Die handles a fatal-system error (§7): it logs the cause, restores the
// terminal, clears the screen, prints a diagnostic to stderr, and exits
// with status 1. It never returns.
func (e *Editor) Die(format string, args ...any) {
	e.log.Error().Msgf(format, args...)
	e.RestoreTerminal()
	os.Stdout.Write([]byte(clearScreen))
	os.Stdout.Write([]byte(cursorHome))
	fmt.Fprintf(os.Stderr, "kilt: "+format+"\n", args...)
	os.Exit(1)
}

// ShowError surfaces a recoverable-user error (§7) as a transient status
// message instead of terminating the editor.
func (e *Editor) ShowError(format string, args ...any) {
	e.SetStatusMessage(format, args...)
	e.log.Warn().Msgf(format, args...)
}

// SetStatusMessage sets the bounded status-bar message and its expiry
// timestamp.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMsg = fmt.Sprintf(format, args...)
	e.statusMsgTime = time.Now()
}
