package emitter_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/shlex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/grassplain"
	"github.com/napalu/grassplain/emitter"
	"github.com/napalu/grassplain/schema"
)

const greeterSpec = `
[global.arguments.name]
description = "who to greet"

[global.flags.verbose]
description = "talk more"
short = "v"
`

const syncSpec = `
[meta]
description = "sync things"

[global.flags.verbose]
description = "talk more"
short = "v"

[subcommand.sync]
description = "synchronise"

[subcommand.sync.arguments.files]
description = "files"
number_of_arguments = -1

[subcommand.sync.options.path]
description = "paths to sync"
delimiter = ","
default = ""

[subcommand.sync.options.mode]
description = "mode"
`

const sharedNamesSpec = `
[global.arguments.name]
description = "positional name"

[global.options.name]
description = "name option"

[global.flags.verbose]
description = "talk more"

[subcommand.sync]
description = "synchronise"

[subcommand.sync.flags.verbose]
description = "talk more while syncing"
short = "v"
`

const driver = `
import json
import sys

import cli

try:
    result = cli.parse_args(sys.argv[1:])
    print(json.dumps({"ok": result._asdict()}))
except cli.HelpRequested as requested:
    print(json.dumps({"help": requested.help}))
except cli.GrassplainError as error:
    print(json.dumps({"error": type(error).__name__}))
`

// runPython generates the module for spec and runs parse_args on the shlex
// split command line, returning the decoded outcome
func runPython(t *testing.T, spec, commandLine string) map[string]any {
	t.Helper()

	python, err := exec.LookPath("python3")
	if err != nil {
		t.Skip("python3 not available")
	}

	source, err := grassplain.LoadAndGenerate(spec, nil, emitter.WithProgramName("prog"))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cli.py"), []byte(source), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "driver.py"), []byte(driver), 0o644))

	argv, err := shlex.Split(commandLine)
	require.NoError(t, err)

	cmd := exec.Command(python, append([]string{filepath.Join(dir, "driver.py")}, argv...)...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	var outcome map[string]any
	require.NoError(t, json.Unmarshal(out, &outcome), string(out))

	return outcome
}

func TestGeneratedPythonScenarios(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		commandLine string
		expected    string
	}{
		{
			name:        "argument and short flag",
			spec:        greeterSpec,
			commandLine: "prog alice -v",
			expected:    `{"ok": {"command": [], "name": "alice", "verbose": 1}}`,
		},
		{
			name:        "list option in a subcommand",
			spec:        syncSpec,
			commandLine: "prog sync --path=a,b,c",
			expected:    `{"ok": {"command": ["sync"], "verbose": 0, "files": [], "path": ["a", "b", "c"], "mode": null}}`,
		},
		{
			name:        "repeated list option and variadic argument",
			spec:        syncSpec,
			commandLine: "prog -v sync x --path a --path b,c y -- --mode",
			expected:    `{"ok": {"command": ["sync"], "verbose": 1, "files": ["x", "y", "--mode"], "path": ["a", "b", "c"], "mode": null}}`,
		},
		{
			name:        "unknown option",
			spec:        greeterSpec,
			commandLine: "prog alice --loud",
			expected:    `{"error": "UnknownOptionError"}`,
		},
		{
			name:        "unknown subcommand",
			spec:        syncSpec,
			commandLine: "prog push",
			expected:    `{"error": "UnknownSubcommandError"}`,
		},
		{
			name:        "missing argument",
			spec:        greeterSpec,
			commandLine: "prog -v",
			expected:    `{"error": "ArityError"}`,
		},
		{
			name:        "missing option value",
			spec:        syncSpec,
			commandLine: "prog sync --mode",
			expected:    `{"error": "MissingValueError"}`,
		},
		{
			name:        "flag with value",
			spec:        syncSpec,
			commandLine: "prog --verbose=1",
			expected:    `{"error": "UnexpectedValueError"}`,
		},
		{
			name:        "argument and option sharing a name",
			spec:        sharedNamesSpec,
			commandLine: "prog --name Al alice sync",
			expected:    `{"ok": {"command": ["sync"], "name": "alice", "option_name": "Al", "verbose": 0, "sync_verbose": 0}}`,
		},
		{
			name:        "global flag before the subcommand",
			spec:        sharedNamesSpec,
			commandLine: "prog --verbose alice sync",
			expected:    `{"ok": {"command": ["sync"], "name": "alice", "option_name": null, "verbose": 1, "sync_verbose": 0}}`,
		},
		{
			name:        "subcommand flag shadows the global one",
			spec:        sharedNamesSpec,
			commandLine: "prog alice sync --verbose",
			expected:    `{"ok": {"command": ["sync"], "name": "alice", "option_name": null, "verbose": 0, "sync_verbose": 1}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := runPython(t, tt.spec, tt.commandLine)
			expected := map[string]any{}
			require.NoError(t, json.Unmarshal([]byte(tt.expected), &expected))
			assert.Equal(t, expected, outcome)
		})
	}
}

func TestGeneratedPythonHelpMatchesGo(t *testing.T) {
	outcome := runPython(t, syncSpec, "prog sync -h")

	cfg, err := grassplain.Load(syncSpec)
	require.NoError(t, err)
	node, ok := schema.Find(cfg, []string{"sync"})
	require.True(t, ok)

	assert.Equal(t, emitter.BuildHelp(cfg, node).Render("prog"), outcome["help"])
	assert.True(t, strings.HasPrefix(outcome["help"].(string), "usage: prog sync [options] [files...]\n"))
}
