package document

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/grassplain/errs"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
		wantErr  bool
	}{
		{"toml", TOML, false},
		{"TOML", TOML, false},
		{"hcl", HCL, false},
		{"yaml", TOML, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := ParseFormat(tt.name)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errs.ErrUnsupportedFormat))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}
}

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, HCL, FormatForPath("cli.hcl"))
	assert.Equal(t, HCL, FormatForPath("/etc/CLI.HCL"))
	assert.Equal(t, TOML, FormatForPath("cli.toml"))
	assert.Equal(t, TOML, FormatForPath("cli"))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, `string "x"`, NewString("x").Describe())
	assert.Equal(t, "integer 3", NewInteger(3).Describe())
	assert.Equal(t, "boolean true", NewBool(true).Describe())
	assert.Equal(t, "table", NewTable().Describe())
	assert.Equal(t, "array", (&Node{Kind: Array}).Describe())
}

func TestNodeAccessorsOnScalars(t *testing.T) {
	scalar := NewString("x")
	_, ok := scalar.Get("x")
	assert.False(t, ok)
	assert.Nil(t, scalar.Keys())

	var missing *Node
	_, ok = missing.Get("x")
	assert.False(t, ok)
}
