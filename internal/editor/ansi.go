package editor

// Escape sequences the renderer and terminal collaborators emit. Grounded
// on the teacher's ansi.go constant set; extended with the foreground
// color codes spec §4.D names explicitly.
const (
	clearScreen = "\x1b[2J" // erase entire screen
	clearLine   = "\x1b[K"  // erase from cursor to end of line
	cursorHome  = "\x1b[H"  // move cursor to (1,1)

	cursorHide = "\x1b[?25l"
	cursorShow = "\x1b[?25h"

	cursorBottomRight = "\x1b[999C\x1b[999B" // forward then down, not the source's malformed form
	cursorGetPosition = "\x1b[6n"

	cursorPositionFormat = "\x1b[%d;%dH"

	colorsInvert = "\x1b[7m"
	colorsReset  = "\x1b[m"

	fgColorFormat  = "\x1b[%dm"
	fgColorDefault = 39
)

// Foreground SGR codes for each highlight class, per spec §4.D's color
// mapping table.
const (
	fgComment  = 36
	fgKeyword1 = 33
	fgKeyword2 = 32
	fgString   = 35
	fgNumber   = 31
	fgMatch    = 34
)

// colorFor returns the foreground SGR code for a highlight class. NORMAL
// is handled separately by callers (it always emits fgColorDefault, per
// §4.H), so it is not represented here.
func colorFor(h hlClass) int {
	switch h {
	case hlComment:
		return fgComment
	case hlKeyword1:
		return fgKeyword1
	case hlKeyword2:
		return fgKeyword2
	case hlString:
		return fgString
	case hlNumber:
		return fgNumber
	case hlMatch:
		return fgMatch
	default:
		return fgColorDefault
	}
}
