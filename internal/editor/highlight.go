package editor

import (
	"bytes"
	"strings"
)

// hlClass tags one rendered byte with the highlight class it should be
// drawn in (spec §4.D).
type hlClass byte

const (
	hlNormal hlClass = iota
	hlComment
	hlKeyword1
	hlKeyword2
	hlString
	hlNumber
	hlMatch
)

// Syntax flags, matching spec §3's {HIGHLIGHT_NUMBERS, HIGHLIGHT_STRINGS}
// bit-flag set.
const (
	HighlightNumbers = 1 << 0
	HighlightStrings = 1 << 1
)

// Syntax is one static rule-table entry: a file type, the patterns used
// to select it, its keyword list (a trailing "|" marks a secondary
// keyword), comment markers, and the enabled highlight flags.
//
// MultilineCommentStart/End are an addition beyond spec §4.D's literal
// per-row scan, grounded in the teacher's hlOpenComment state machine and
// gated: a rule that leaves them empty (the default for any rule this
// module doesn't define explicitly) behaves exactly as spec §4.D
// describes, byte for byte. See DESIGN.md.
type Syntax struct {
	FileType              string
	FileMatch             []string
	Keywords              []string
	SinglelineComment     string
	MultilineCommentStart string
	MultilineCommentEnd   string
	Flags                 int
}

// builtinSyntaxDB is the static rule table every Editor starts with.
// WithSyntaxRules prepends configured overrides ahead of a copy of it on
// e.syntaxTable, so configured rules are tried first; the configured table
// lives on the Editor rather than in a package-level var, so one Editor's
// overrides never reach another. An Editor built without WithSyntaxRules
// has a nil e.syntaxTable, and SelectSyntax reads this table directly.
var builtinSyntaxDB = []Syntax{
	{
		FileType:              "c",
		FileMatch:             []string{".c", ".h", ".cpp"},
		Keywords:              []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		},
		SinglelineComment:     "//",
		MultilineCommentStart: "/*",
		MultilineCommentEnd:   "*/",
		Flags:                 HighlightNumbers | HighlightStrings,
	},
	{
		FileType:  "go",
		FileMatch: []string{".go"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "go", "goto", "if", "import", "map", "package",
			"range", "return", "select", "struct", "switch", "type", "var",
			"interface|", "func|", "string|", "int|", "bool|", "byte|", "error|",
		},
		SinglelineComment:     "//",
		MultilineCommentStart: "/*",
		MultilineCommentEnd:   "*/",
		Flags:                 HighlightNumbers | HighlightStrings,
	},
}

// SelectSyntax resolves the editor's syntax rule from its current
// filename (spec §4.D): the first rule with a matching file-match pattern
// wins, and every existing row is re-highlighted. A pattern starting with
// "." matches a filename suffix; any other pattern matches as a substring.
func (e *Editor) SelectSyntax() {
	e.syntax = nil
	if e.filename == "" {
		return
	}
	table := e.syntaxTable
	if table == nil {
		table = builtinSyntaxDB
	}
	for i := range table {
		s := &table[i]
		for _, pattern := range s.FileMatch {
			isSuffix := strings.HasPrefix(pattern, ".")
			matched := false
			if isSuffix {
				matched = strings.HasSuffix(e.filename, pattern)
			} else {
				matched = strings.Contains(e.filename, pattern)
			}
			if matched {
				e.syntax = s
				for j := range e.rows {
					e.rows[j].updateSyntax(e)
				}
				return
			}
		}
	}
}

// keywordClass splits a keyword table entry into its bare text and
// whether the trailing "|" secondary-class marker was present.
func keywordClass(kw string) (text string, secondary bool) {
	if strings.HasSuffix(kw, "|") {
		return kw[:len(kw)-1], true
	}
	return kw, false
}

// updateSyntax fills row.hl (length == len(render)) per the per-row scan
// in spec §4.D. If no syntax rule is selected, the row stays hlNormal.
func (r *Row) updateSyntax(e *Editor) {
	r.hl = make([]hlClass, len(r.render))
	if e.syntax == nil {
		r.hlOpenComment = false
		return
	}
	s := e.syntax

	prevIsSep := true
	inString := byte(0)
	inComment := r.idx > 0 && r.idx-1 < len(e.rows) && e.rows[r.idx-1].hlOpenComment

	render := r.render
	i := 0
	for i < len(render) {
		c := render[i]
		prevHl := hlNormal
		if i > 0 {
			prevHl = r.hl[i-1]
		}

		if s.MultilineCommentStart != "" && s.MultilineCommentEnd != "" && inString == 0 {
			if inComment {
				r.hl[i] = hlComment
				if bytes.HasPrefix(render[i:], []byte(s.MultilineCommentEnd)) {
					end := i + len(s.MultilineCommentEnd)
					for ; i < end && i < len(render); i++ {
						r.hl[i] = hlComment
					}
					inComment = false
					prevIsSep = true
					continue
				}
				i++
				continue
			}
			if bytes.HasPrefix(render[i:], []byte(s.MultilineCommentStart)) {
				start := i + len(s.MultilineCommentStart)
				for ; i < start && i < len(render); i++ {
					r.hl[i] = hlComment
				}
				inComment = true
				continue
			}
		}

		if s.SinglelineComment != "" && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], []byte(s.SinglelineComment)) {
				for j := i; j < len(render); j++ {
					r.hl[j] = hlComment
				}
				break
			}
		}

		if s.Flags&HighlightStrings != 0 {
			if inString != 0 {
				r.hl[i] = hlString
				if c == '\\' && i+1 < len(render) {
					r.hl[i+1] = hlString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevIsSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				r.hl[i] = hlString
				i++
				continue
			}
		}

		if s.Flags&HighlightNumbers != 0 {
			if (isDigit(c) && (prevIsSep || prevHl == hlNumber)) || (c == '.' && prevHl == hlNumber) {
				r.hl[i] = hlNumber
				i++
				prevIsSep = false
				continue
			}
		}

		if prevIsSep {
			matched := false
			for _, kw := range s.Keywords {
				text, secondary := keywordClass(kw)
				klen := len(text)
				if klen == 0 || i+klen > len(render) {
					continue
				}
				if !bytes.HasPrefix(render[i:], []byte(text)) {
					continue
				}
				if i+klen < len(render) && !isSeparator(render[i+klen]) {
					continue
				}
				class := hlKeyword1
				if secondary {
					class = hlKeyword2
				}
				for k := 0; k < klen; k++ {
					r.hl[i+k] = class
				}
				i += klen
				matched = true
				prevIsSep = false
				break
			}
			if matched {
				continue
			}
		}
		prevIsSep = isSeparator(c)
		i++
	}

	changed := r.hlOpenComment != inComment
	r.hlOpenComment = inComment
	if changed && r.idx+1 < len(e.rows) {
		e.rows[r.idx+1].updateSyntax(e)
	}
}
