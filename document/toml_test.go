package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/grassplain/errs"
)

func TestTOMLKeepsDocumentOrder(t *testing.T) {
	text := `
[meta]
description = "tool"
max_line_length = 100

[global.flags.zeta]
description = "last letter"

[global.flags.alpha]
description = "first letter"
short = "a"

[global.arguments.target]
description = "target"

[subcommand.sync]
description = "sync"

[subcommand.add]
description = "add"
`
	root, err := Parse(text, TOML)
	require.NoError(t, err)

	assert.Equal(t, []string{"meta", "global", "subcommand"}, root.Keys())

	meta, _ := root.Get("meta")
	assert.Equal(t, []string{"description", "max_line_length"}, meta.Keys())
	length, _ := meta.Get("max_line_length")
	assert.Equal(t, Integer, length.Kind)
	assert.Equal(t, int64(100), length.Value)

	global, _ := root.Get("global")
	assert.Equal(t, []string{"flags", "arguments"}, global.Keys())
	flags, _ := global.Get("flags")
	assert.Equal(t, []string{"zeta", "alpha"}, flags.Keys())
	alpha, _ := flags.Get("alpha")
	assert.Equal(t, []string{"description", "short"}, alpha.Keys())

	sub, _ := root.Get("subcommand")
	assert.Equal(t, []string{"sync", "add"}, sub.Keys())
}

func TestTOMLKeepsKeyOrderInsideTables(t *testing.T) {
	root, err := Parse(`
[global.flags.alpha]
short = "a"
description = "first"
default = 1

[global.flags.beta]
default = 0
description = "second"
`, TOML)
	require.NoError(t, err)

	global, _ := root.Get("global")
	flags, _ := global.Get("flags")
	alpha, _ := flags.Get("alpha")
	assert.Equal(t, []string{"short", "description", "default"}, alpha.Keys())
	beta, _ := flags.Get("beta")
	assert.Equal(t, []string{"default", "description"}, beta.Keys())
}

func TestTOMLInlineAndDottedTables(t *testing.T) {
	text := `
global.options.path = { description = "paths", delimiter = ",", default = "" }
global.flags.verbose.description = "talk"
global.flags.verbose.default = 1

[meta.extra]
EXAMPLES = "grassplain cli.toml"
NOTES = "none"
`
	root, err := Parse(text, TOML)
	require.NoError(t, err)

	global, _ := root.Get("global")
	options, _ := global.Get("options")
	path, _ := options.Get("path")
	require.Equal(t, Table, path.Kind)
	assert.ElementsMatch(t, []string{"description", "delimiter", "default"}, path.Keys())
	def, _ := path.Get("default")
	assert.Equal(t, "", def.Value)

	flags, _ := global.Get("flags")
	verbose, _ := flags.Get("verbose")
	assert.Equal(t, []string{"description", "default"}, verbose.Keys())

	meta, _ := root.Get("meta")
	extra, _ := meta.Get("extra")
	assert.Equal(t, []string{"EXAMPLES", "NOTES"}, extra.Keys())
}

func TestTOMLValueKinds(t *testing.T) {
	text := `
s = "x"
i = 7
f = 1.5
b = true
d = 1979-05-27
a = [1, 2]
`
	root, err := Parse(text, TOML)
	require.NoError(t, err)

	kinds := map[string]Kind{"s": String, "i": Integer, "f": Float, "b": Bool, "d": Datetime, "a": Array}
	for key, kind := range kinds {
		node, ok := root.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, kind, node.Kind, key)
	}

	a, _ := root.Get("a")
	assert.Len(t, a.Items, 2)
}

func TestTOMLArrayOfTables(t *testing.T) {
	text := `
[[global]]
name = "first"

[[global]]
name = "second"
`
	root, err := Parse(text, TOML)
	require.NoError(t, err)

	global, _ := root.Get("global")
	require.Equal(t, Array, global.Kind)
	require.Len(t, global.Items, 2)
	assert.Equal(t, Table, global.Items[0].Kind)
}

func TestTOMLParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"missing value", "[meta]\ndescription =\n", 2},
		{"duplicate key", "a = 1\na = 2\n", 2},
		{"unterminated table", "[meta\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, TOML)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errs.ErrParse))

			var perr *errs.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "TOML", perr.Format)
			if tt.line > 0 {
				assert.Equal(t, tt.line, perr.Line)
			}
			assert.Positive(t, perr.Line)
			assert.Positive(t, perr.Column)
		})
	}
}
