package grassplain

import (
	"io"
	"log/slog"

	"github.com/napalu/grassplain/document"
)

// WithFormat sets the syntax of the documents to load
func WithFormat(format document.Format) ConfigureLoaderFunc {
	return func(loader *Loader, err *error) {
		loader.format = format
	}
}

// WithFormatName sets the document syntax by name ("toml" or "hcl")
func WithFormatName(name string) ConfigureLoaderFunc {
	return func(loader *Loader, err *error) {
		loader.format, *err = document.ParseFormat(name)
	}
}

// WithFormatForPath picks the document syntax from a file extension
func WithFormatForPath(path string) ConfigureLoaderFunc {
	return func(loader *Loader, err *error) {
		loader.format = document.FormatForPath(path)
	}
}

// WithAllowUnknownKeys makes the loader ignore keys it does not know instead
// of reporting them as violations. Ignored keys are logged at debug level.
func WithAllowUnknownKeys(allow bool) ConfigureLoaderFunc {
	return func(loader *Loader, err *error) {
		loader.allowUnknownKeys = allow
	}
}

// WithLogger sets the logger receiving debug output; nil discards it
func WithLogger(logger *slog.Logger) ConfigureLoaderFunc {
	return func(loader *Loader, err *error) {
		if logger == nil {
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		loader.logger = logger
	}
}
