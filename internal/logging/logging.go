// Package logging sets up kilt's structured diagnostic logger. It must
// never write to stdout or stderr while the editor is running in raw
// mode, since both belong to the editor's own screen — so every log
// record goes to a file instead, the way badu-term keeps zerolog off the
// terminal it's drawing to.
package logging

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Open creates (or appends to) the log file at path and returns a logger
// writing to it. An empty path disables logging entirely.
func Open(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, fmt.Errorf("opening log file %q: %w", path, err)
	}

	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}
