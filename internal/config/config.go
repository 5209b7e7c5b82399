// Package config loads kilt's optional YAML configuration file, the way
// amantus-ai-vibetunnel layers a typed config struct over gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/avellis/kilt/internal/editor"
)

// Config is the on-disk shape of kilt's config file. Every field is
// optional; zero values fall back to the editor package's defaults.
type Config struct {
	TabStop          int            `yaml:"tab_stop"`
	StatusTimeout    time.Duration  `yaml:"status_timeout"`
	QuitConfirmations int           `yaml:"quit_confirmations"`
	Syntax           []SyntaxRule   `yaml:"syntax"`
}

// SyntaxRule is one user-defined filetype entry, mirroring editor.Syntax
// so the YAML shape stays flat; editor.Syntax's Flags bit set is spelled
// out here as the two booleans HighlightNumbers and HighlightStrings.
type SyntaxRule struct {
	FileType              string   `yaml:"file_type"`
	FileMatch             []string `yaml:"file_match"`
	Keywords              []string `yaml:"keywords"`
	SinglelineComment     string   `yaml:"singleline_comment"`
	MultilineCommentStart string   `yaml:"multiline_comment_start"`
	MultilineCommentEnd   string   `yaml:"multiline_comment_end"`
	HighlightNumbers      bool     `yaml:"highlight_numbers"`
	HighlightStrings      bool     `yaml:"highlight_strings"`
}

// Load reads and parses a config file. A missing file is not an error —
// it returns a zero Config so callers fall back to built-in defaults. A
// malformed file is a recoverable-user error: it is reported once via
// os.Stderr, and Load still returns a zero Config rather than an error,
// since configuration problems happen before raw mode is entered and
// there is no status bar yet to show them in.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "kilt: malformed config %q: %v, using defaults\n", path, err)
		return Config{}, nil
	}
	return cfg, nil
}

// Options turns a Config into the editor.Option slice New expects.
func (c Config) Options() []editor.Option {
	var opts []editor.Option
	if c.TabStop > 0 {
		opts = append(opts, editor.WithTabStop(c.TabStop))
	}
	if c.StatusTimeout > 0 {
		opts = append(opts, editor.WithStatusTimeout(c.StatusTimeout))
	}
	if c.QuitConfirmations > 0 {
		opts = append(opts, editor.WithQuitConfirmations(c.QuitConfirmations))
	}
	if len(c.Syntax) > 0 {
		rules := make([]editor.Syntax, len(c.Syntax))
		for i, s := range c.Syntax {
			var flags int
			if s.HighlightNumbers {
				flags |= editor.HighlightNumbers
			}
			if s.HighlightStrings {
				flags |= editor.HighlightStrings
			}
			rules[i] = editor.Syntax{
				FileType:              s.FileType,
				FileMatch:             s.FileMatch,
				Keywords:              s.Keywords,
				SinglelineComment:     s.SinglelineComment,
				MultilineCommentStart: s.MultilineCommentStart,
				MultilineCommentEnd:   s.MultilineCommentEnd,
				Flags:                 flags,
			}
		}
		opts = append(opts, editor.WithSyntaxRules(rules))
	}
	return opts
}
