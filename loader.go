// Package grassplain loads command line specifications and generates parsers
// for them.
//
// A specification is a TOML (or HCL) document describing global arguments,
// options and flags plus a tree of subcommands:
//
//	[meta]
//	description = "a tool"
//
//	[global.flags.verbose]
//	description = "talk more"
//	short = "v"
//
//	[subcommand.sync]
//	description = "synchronise"
//
//	[subcommand.sync.options.path]
//	description = "paths to sync"
//	delimiter = ","
//
// Load binds such a document to a validated schema.ConfigurationFile and
// Generate turns that into source code for the requested target language.
package grassplain

import (
	"io"
	"log/slog"

	"github.com/napalu/grassplain/document"
	"github.com/napalu/grassplain/schema"
)

// Loader parses and validates specification documents. The zero value is not
// usable; create one with NewLoader or NewLoaderWith.
type Loader struct {
	format           document.Format
	allowUnknownKeys bool
	logger           *slog.Logger
}

// ConfigureLoaderFunc is used when configuring a Loader
type ConfigureLoaderFunc func(loader *Loader, err *error)

// NewLoader returns a strict TOML loader that logs nowhere
func NewLoader() *Loader {
	return &Loader{
		format: document.TOML,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// NewLoaderWith allows initialization of a Loader using option functions. The
// Loader is nil when a configuration function fails.
func NewLoaderWith(configs ...ConfigureLoaderFunc) (*Loader, error) {
	loader := NewLoader()

	var err error
	for _, config := range configs {
		config(loader, &err)
		if err != nil {
			return nil, err
		}
	}

	return loader, nil
}

// Load parses and validates text with a loader configured by configs
func Load(text string, configs ...ConfigureLoaderFunc) (*schema.ConfigurationFile, error) {
	loader, err := NewLoaderWith(configs...)
	if err != nil {
		return nil, err
	}

	return loader.Load(text)
}

// Load parses text into a document and binds it. It fails with an
// *errs.ParseError when the text is malformed and with an
// *errs.ValidationError listing every violated invariant otherwise.
func (l *Loader) Load(text string) (*schema.ConfigurationFile, error) {
	l.logger.Debug("parsing document", "format", l.format.String(), "bytes", len(text))
	doc, err := document.Parse(text, l.format)
	if err != nil {
		return nil, err
	}

	return l.Bind(doc)
}

// Bind validates an already parsed document
func (l *Loader) Bind(doc *document.Node) (*schema.ConfigurationFile, error) {
	b := &binder{
		allowUnknownKeys: l.allowUnknownKeys,
		logger:           l.logger,
	}

	cfg := b.bindConfiguration(doc)
	if err := b.err(); err != nil {
		l.logger.Debug("document rejected", "violations", len(b.violations))
		return nil, err
	}

	l.logger.Debug("document loaded",
		"target", cfg.Meta.TargetLanguage.String(),
		"scopes", len(schema.Nodes(cfg)))

	return cfg, nil
}

// Format returns the document format the loader parses
func (l *Loader) Format() document.Format {
	return l.format
}
