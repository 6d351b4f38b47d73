package grassplain

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/grassplain/document"
	"github.com/napalu/grassplain/errs"
	"github.com/napalu/grassplain/schema"
	"github.com/napalu/grassplain/types"
)

const scenarioA = `
[global.arguments.name]
description = "who to greet"

[global.flags.verbose]
description = "talk more"
short = "v"
`

const scenarioB = `
[subcommand.sync]
description = "synchronise"

[subcommand.sync.options.path]
description = "paths to sync"
delimiter = ","
default = ""
`

func violations(t *testing.T, err error) []errs.Violation {
	t.Helper()

	var verr *errs.ValidationError
	require.True(t, errors.As(err, &verr), "expected a validation error, got %v", err)

	return verr.Violations
}

func violationPaths(t *testing.T, err error) []string {
	t.Helper()

	var out []string
	for _, v := range violations(t, err) {
		out = append(out, v.Path)
	}

	return out
}

func TestLoadScenarios(t *testing.T) {
	cfg, err := Load(scenarioA)
	require.NoError(t, err)

	name, ok := cfg.Global.Arguments.Get("name")
	require.True(t, ok)
	assert.Equal(t, 1, name.NumberOfArguments)
	verbose, ok := cfg.Global.Flags.Get("verbose")
	require.True(t, ok)
	assert.Equal(t, &schema.Flag{Description: "talk more", Short: "v"}, verbose)

	cfg, err = Load(scenarioB)
	require.NoError(t, err)
	sync, ok := cfg.Subcommands.Get("sync")
	require.True(t, ok)
	path, ok := sync.Options.Get("path")
	require.True(t, ok)
	assert.True(t, path.IsList())
	require.NotNil(t, path.Default)
	assert.Equal(t, "", *path.Default)
}

func TestLoadEmptyDocument(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, schema.DefaultMeta().MaxLineLength, cfg.Meta.MaxLineLength)
	assert.Equal(t, types.Python, cfg.Meta.TargetLanguage)
	assert.True(t, cfg.Global.IsEmpty())
	assert.Equal(t, 0, cfg.Subcommands.Len())
}

func TestLoadMeta(t *testing.T) {
	cfg, err := Load(`
[meta]
description = "a tool"
max_line_length = 100
min_description_padding = 10
max_description_length = 30
target_language = "python"

[meta.extra]
EXAMPLES = "tool sync"
"SEE ALSO" = "git(1)"
`)
	require.NoError(t, err)

	assert.Equal(t, "a tool", cfg.Meta.Description)
	assert.Equal(t, 100, cfg.Meta.MaxLineLength)
	assert.Equal(t, 10, cfg.Meta.MinDescriptionPadding)
	assert.Equal(t, 30, cfg.Meta.MaxDescriptionLength)

	var keys []string
	for pair := cfg.Meta.Extra.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	assert.Equal(t, []string{"EXAMPLES", "SEE ALSO"}, keys)
}

func TestLoadPreservesDeclarationOrder(t *testing.T) {
	cfg, err := Load(`
[global.options.zulu]
description = "z"
[global.options.alpha]
description = "a"
[global.options.mike]
description = "m"

[subcommand.remote]
description = "remotes"
[subcommand.remote.subcommands.show]
description = "show"
[subcommand.remote.subcommands.add]
description = "add"
`)
	require.NoError(t, err)

	var options []string
	for pair := cfg.Global.Options.Oldest(); pair != nil; pair = pair.Next() {
		options = append(options, pair.Key)
	}
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, options)

	var paths []string
	for _, node := range schema.Nodes(cfg) {
		paths = append(paths, node.PathString())
	}
	if diff := cmp.Diff([]string{"", "remote", "remote show", "remote add"}, paths); diff != "" {
		t.Errorf("scope order mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSubcommandsAlias(t *testing.T) {
	cfg, err := Load(`
[subcommands.sync]
description = "synchronise"
`)
	require.NoError(t, err)
	_, ok := cfg.Subcommands.Get("sync")
	assert.True(t, ok)

	_, err = Load(`
[subcommand.a]
description = "a"
[subcommands.b]
description = "b"
`)
	assert.True(t, errors.Is(err, errs.ErrDuplicateAlias))
	assert.Equal(t, []string{"subcommands"}, violationPaths(t, err))
}

func TestLoadViolations(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		path     string
		sentinel error
	}{
		{
			name:     "zero arity",
			text:     "[global.arguments.a]\ndescription = \"a\"\nnumber_of_arguments = 0\n",
			path:     "global.arguments.a.number_of_arguments",
			sentinel: errs.ErrZeroArity,
		},
		{
			name:     "short conflict",
			text:     "[global.flags.a]\ndescription = \"a\"\nshort = \"v\"\n[global.flags.b]\ndescription = \"b\"\nshort = \"v\"\n",
			path:     "global.flags.b.short",
			sentinel: errs.ErrShortConflict,
		},
		{
			name:     "unknown target",
			text:     "[meta]\ntarget_language = \"rust\"\n",
			path:     "meta.target_language",
			sentinel: errs.ErrUnknownTarget,
		},
		{
			name:     "missing description",
			text:     "[subcommand.sync]\n[subcommand.sync.flags.f]\ndescription = \"f\"\n",
			path:     "subcommand.sync.description",
			sentinel: errs.ErrRequired,
		},
		{
			name:     "blank description",
			text:     "[global.options.o]\ndescription = \"  \"\n",
			path:     "global.options.o.description",
			sentinel: errs.ErrEmptyDescription,
		},
		{
			name:     "not positive",
			text:     "[meta]\nmax_line_length = 0\n",
			path:     "meta.max_line_length",
			sentinel: errs.ErrNotPositive,
		},
		{
			name:     "padding exceeds length",
			text:     "[meta]\nmin_description_padding = 30\nmax_description_length = 20\n",
			path:     "meta.min_description_padding",
			sentinel: errs.ErrPaddingExceeds,
		},
		{
			name:     "two variadic arguments",
			text:     "[global.arguments.a]\ndescription = \"a\"\nnumber_of_arguments = -1\n[global.arguments.b]\ndescription = \"b\"\nnumber_of_arguments = -1\n",
			path:     "global.arguments.b.number_of_arguments",
			sentinel: errs.ErrMultipleVariadic,
		},
		{
			name:     "long short",
			text:     "[global.flags.a]\ndescription = \"a\"\nshort = \"ab\"\n",
			path:     "global.flags.a.short",
			sentinel: errs.ErrShortLength,
		},
		{
			name:     "invalid name",
			text:     "[global.flags.\"-x\"]\ndescription = \"x\"\n",
			path:     "global.flags.-x",
			sentinel: errs.ErrInvalidName,
		},
		{
			name:     "wrong type",
			text:     "[meta]\ndescription = 3\n",
			path:     "meta.description",
			sentinel: errs.ErrExpectedString,
		},
		{
			name:     "not a table",
			text:     "global = \"x\"\n",
			path:     "global",
			sentinel: errs.ErrExpectedTable,
		},
		{
			name:     "not an integer",
			text:     "[global.flags.f]\ndescription = \"f\"\ndefault = \"yes\"\n",
			path:     "global.flags.f.default",
			sentinel: errs.ErrExpectedInteger,
		},
		{
			name:     "unknown key with suggestion",
			text:     "[global.arguments.a]\ndescription = \"a\"\nnumber_of_argument = 2\n",
			path:     "global.arguments.a",
			sentinel: errs.ErrUnknownKeySuggest,
		},
		{
			name:     "unknown key",
			text:     "[global]\nsomething = 1\n",
			path:     "global",
			sentinel: errs.ErrUnknownKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.text)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrValidation))
			assert.True(t, errors.Is(err, tt.sentinel), "got %v", err)

			vs := violations(t, err)
			require.Len(t, vs, 1, "got %v", err)
			assert.Equal(t, tt.path, vs[0].Path)
		})
	}
}

func TestLoadReportsEveryViolationInDocumentOrder(t *testing.T) {
	_, err := Load(`
[meta]
target_language = "rust"

[global.arguments.a]
description = "a"
number_of_arguments = 0

[global.flags.x]
description = "x"
short = "q"

[global.flags.y]
description = "y"
short = "q"

[subcommand.sync]
`)
	expected := []string{
		"meta.target_language",
		"global.arguments.a.number_of_arguments",
		"global.flags.y.short",
		"subcommand.sync.description",
	}
	assert.Equal(t, expected, violationPaths(t, err))
	assert.True(t, strings.HasPrefix(err.Error(), "4 validation error(s)\n"))
}

func TestLoadViolationsFollowKeyOrderInsideEntries(t *testing.T) {
	_, err := Load(`
[global.flags.verbose]
description = "talk more"
short = "vv"
default = "x"

[global.flags.quiet]
default = "y"
short = "qq"
description = "talk less"
`)
	expected := []string{
		"global.flags.verbose.short",
		"global.flags.verbose.default",
		"global.flags.quiet.default",
		"global.flags.quiet.short",
	}
	assert.Equal(t, expected, violationPaths(t, err))
}

func TestLoadUnknownKeys(t *testing.T) {
	text := `
[meta]
descriptoin = "typo"

[global.flags.f]
description = "f"
colour = "red"
`
	_, err := Load(text)
	vs := violations(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, `meta: unknown key "descriptoin" (did you mean "description"?)`, vs[0].Error())
	assert.Equal(t, `global.flags.f: unknown key "colour"`, vs[1].Error())

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg, err := Load(text, WithAllowUnknownKeys(true), WithLogger(logger))
	require.NoError(t, err)
	_, ok := cfg.Global.Flags.Get("f")
	assert.True(t, ok)
	assert.Contains(t, logs.String(), "path=meta.descriptoin")
	assert.Contains(t, logs.String(), "path=global.flags.f.colour")
}

func TestLoadIntegerCoercion(t *testing.T) {
	tests := []struct {
		value    string
		expected int
	}{
		{"2", 2},
		{"2.0", 2},
		{`"3"`, 3},
		{"true", 1},
		{"-5", types.Unlimited},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg, err := Load("[global.arguments.a]\ndescription = \"a\"\nnumber_of_arguments = " + tt.value + "\n")
			require.NoError(t, err)
			a, _ := cfg.Global.Arguments.Get("a")
			assert.Equal(t, tt.expected, a.NumberOfArguments)
		})
	}

	for _, bad := range []string{"2.5", `"two"`, "3000000000", "[1]"} {
		t.Run(bad, func(t *testing.T) {
			_, err := Load("[global.arguments.a]\ndescription = \"a\"\nnumber_of_arguments = " + bad + "\n")
			assert.True(t, errors.Is(err, errs.ErrExpectedInteger), "got %v", err)
		})
	}
}

func TestLoadParseError(t *testing.T) {
	_, err := Load("[meta\n")
	assert.True(t, errors.Is(err, errs.ErrParse))
	assert.False(t, errors.Is(err, errs.ErrValidation))
}

func TestLoadHCL(t *testing.T) {
	cfg, err := Load(`
global {
  argument "name" {
    description = "who to greet"
  }
  flag "verbose" {
    description = "talk more"
    short       = "v"
  }
}

subcommand "sync" {
  description = "synchronise"
  option "path" {
    description = "paths to sync"
    delimiter   = ","
    default     = ""
  }
  subcommand "dry" {
    description = "pretend"
  }
}
`, WithFormat(document.HCL))
	require.NoError(t, err)

	node, ok := schema.Find(cfg, []string{"sync", "dry"})
	require.True(t, ok)
	assert.Equal(t, "pretend", node.Description())
	_, ok = cfg.Global.Flags.Get("verbose")
	assert.True(t, ok)
}

func TestLoaderConfiguration(t *testing.T) {
	loader, err := NewLoaderWith(WithFormatName("hcl"))
	require.NoError(t, err)
	assert.Equal(t, document.HCL, loader.Format())

	loader, err = NewLoaderWith(WithFormatForPath("cli.toml"))
	require.NoError(t, err)
	assert.Equal(t, document.TOML, loader.Format())

	loader, err = NewLoaderWith(WithFormatName("yaml"))
	assert.Nil(t, loader)
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFormat))

	_, err = Load(scenarioA, WithFormatName("yaml"))
	assert.True(t, errors.Is(err, errs.ErrUnsupportedFormat))
}

func TestLoadIsDeterministic(t *testing.T) {
	text := scenarioA + scenarioB
	first, err := Load(text)
	require.NoError(t, err)
	second, err := Load(text)
	require.NoError(t, err)

	a, err := Generate(first)
	require.NoError(t, err)
	b, err := Generate(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
