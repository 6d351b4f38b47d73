// Package cli implements the grassplain command.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/goopt/v2"
	"golang.org/x/text/language"

	"github.com/napalu/grassplain"
	"github.com/napalu/grassplain/emitter"
	"github.com/napalu/grassplain/errs"
	"github.com/napalu/grassplain/i18n"
	"github.com/napalu/grassplain/internal/dispatch"
	"github.com/napalu/grassplain/schema"
)

// Exit codes of the grassplain command
const (
	ExitOK = iota
	ExitUsage
	ExitParse
	ExitValidation
	ExitUnsupportedTarget
	ExitEmission
	ExitOutput
)

const defaultProgramName = "grassplain"

type app struct {
	prog   string
	opts   *Options
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
	bundle *i18n.Bundle
}

// Run executes the grassplain command. args holds the program name followed by
// the command line; the return value is the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{
		prog:   defaultProgramName,
		opts:   &Options{},
		stdout: stdout,
		stderr: stderr,
		bundle: i18n.Default(),
	}
	if len(args) > 0 {
		if args[0] != "" {
			a.prog = filepath.Base(args[0])
		}
		args = args[1:]
	}

	parser, err := goopt.NewParserFromStruct(a.opts)
	if err != nil {
		a.printError(err)
		return ExitUsage
	}
	parser.SetAutoLanguage(false)
	parser.SetStdout(stdout)
	parser.SetStderr(stderr)
	parser.SetEndHelpFunc(func() error { return nil })

	ok := parser.Parse(args)

	restore, err := a.setLanguage()
	if err != nil {
		a.printError(err)
		return ExitUsage
	}
	defer restore()

	if parser.WasHelpShown() {
		return ExitOK
	}

	if !ok {
		for _, err := range parser.GetErrors() {
			a.printError(err)
		}
		a.printUsage()
		return ExitUsage
	}

	for _, positional := range parser.GetPositionalArgs() {
		if positional.Argument == nil {
			a.printError(errs.ErrUnexpectedArgument.WithArgs(positional.Value))
			a.printUsage()
			return ExitUsage
		}
	}

	a.logger = newLogger(a.opts.Verbose, a.opts.LogFormat, stderr)

	err = a.run()
	a.report(err)

	return exitCode(err)
}

// setLanguage switches the message language for the duration of one run. The
// returned func puts the previous language back, so nothing outlives Run.
func (a *app) setLanguage() (func(), error) {
	noop := func() {}
	if a.opts.Lang == "" {
		return noop, nil
	}

	tag, err := language.Parse(a.opts.Lang)
	if err != nil {
		return noop, errs.NewUsageError(errs.ErrUnsupportedLanguage.WithArgs(a.opts.Lang))
	}
	matched := a.bundle.MatchLanguage(tag)
	if base, _ := matched.Base(); base != baseOf(tag) {
		return noop, errs.NewUsageError(errs.ErrUnsupportedLanguage.WithArgs(a.opts.Lang))
	}

	previous := a.bundle.GetDefaultLanguage()
	a.bundle.SetDefaultLanguage(matched)

	return func() { a.bundle.SetDefaultLanguage(previous) }, nil
}

func baseOf(tag language.Tag) language.Base {
	base, _ := tag.Base()
	return base
}

func (a *app) run() error {
	path := a.opts.Config
	if path == "" {
		return errs.NewUsageError(errs.ErrNoConfig)
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return errs.NewUsageError(errs.ErrConfigNotFound.WithArgs(path))
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return errs.NewUsageError(errs.ErrRead.WithArgs(path).Wrap(err))
	}

	loaderConfigs := []grassplain.ConfigureLoaderFunc{
		grassplain.WithFormatForPath(path),
		grassplain.WithAllowUnknownKeys(a.opts.AllowUnknownKeys),
		grassplain.WithLogger(a.logger),
	}
	if a.opts.Format != "" {
		loaderConfigs = append(loaderConfigs, grassplain.WithFormatName(a.opts.Format))
	}

	loader, err := grassplain.NewLoaderWith(loaderConfigs...)
	if err != nil {
		return errs.NewUsageError(err)
	}
	cfg, err := loader.Load(string(text))
	if err != nil {
		return err
	}

	if a.opts.Check {
		a.logger.Debug("specification is valid", "path", path)
		return nil
	}

	if a.opts.Try != "" {
		return a.try(cfg)
	}

	return a.generate(cfg, path)
}

func (a *app) try(cfg *schema.ConfigurationFile) error {
	argv, err := dispatch.SplitCommandLine(a.opts.Try)
	if err != nil {
		return err
	}

	result, err := dispatch.Parse(cfg, argv)
	if err != nil {
		var help *dispatch.HelpRequestedError
		if errors.As(err, &help) {
			_, err = io.WriteString(a.stdout, help.Help)
			return err
		}
		return errs.NewUsageError(err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, string(out))

	return err
}

func (a *app) generate(cfg *schema.ConfigurationFile, path string) error {
	e, err := emitter.GetEmitter(cfg.Meta.TargetLanguage,
		emitter.WithLogger(a.logger),
		emitter.WithSourceName(path))
	if err != nil {
		return err
	}

	text, err := e.Emit(cfg)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	if a.opts.Output == "" {
		_, err = io.WriteString(a.stdout, text)
		return err
	}

	target := outputPath(a.opts.Output, path, e.FileExtension())
	a.logger.Debug("writing output", "path", target, "bytes", len(text))
	if err := os.WriteFile(target, []byte(text), 0o644); err != nil {
		return errs.ErrOutput.WithArgs(target).Wrap(err)
	}

	return nil
}

// outputPath resolves --output: an existing directory receives a file named
// after the specification with the backend's extension
func outputPath(output, source, extension string) string {
	info, err := os.Stat(output)
	if err != nil || !info.IsDir() {
		return output
	}

	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	return filepath.Join(output, stem+extension)
}

func (a *app) report(err error) {
	if err == nil {
		return
	}

	path := a.opts.Config
	switch {
	case errors.Is(err, errs.ErrNoConfig):
		a.printError(errs.ErrNoConfig)
		fmt.Fprintln(a.stderr)
		a.printUsage()
	case errors.Is(err, errs.ErrParse):
		fmt.Fprintln(a.stderr, a.bundle.T(errs.CliParsingKey, path, err))
	case errors.Is(err, errs.ErrValidation):
		fmt.Fprintln(a.stderr, a.bundle.T(errs.CliValidatingKey, path, err))
	case errors.Is(err, errs.ErrUsage):
		var usage *errs.UsageError
		if errors.As(err, &usage) {
			err = usage.Err
		}
		a.printError(err)
	default:
		a.printError(err)
	}
}

func (a *app) printError(err error) {
	fmt.Fprintln(a.stderr, a.bundle.T(errs.CliErrorKey, err))
}

func (a *app) printUsage() {
	fmt.Fprintln(a.stderr, a.bundle.T(errs.CliUsageKey, a.prog))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errs.ErrUsage):
		return ExitUsage
	case errors.Is(err, errs.ErrParse):
		return ExitParse
	case errors.Is(err, errs.ErrValidation):
		return ExitValidation
	case errors.Is(err, errs.ErrUnsupportedTarget):
		return ExitUnsupportedTarget
	case errors.Is(err, errs.ErrEmission):
		return ExitEmission
	default:
		// failed writes of the generated text
		return ExitOutput
	}
}
