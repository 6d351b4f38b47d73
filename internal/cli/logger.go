package cli

import (
	"io"
	"log/slog"
)

// newLogger creates a logger writing to outW. Without verbose output the
// logger discards everything so stdout and stderr only carry results and
// diagnostics.
func newLogger(verbose bool, formatStr string, outW io.Writer) *slog.Logger {
	if !verbose {
		outW = io.Discard
	}

	handlerOpts := &slog.HandlerOptions{Level: slog.LevelDebug}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
