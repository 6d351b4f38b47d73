package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetLanguage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TargetLanguage
		ok       bool
	}{
		{"python", "python", Python, true},
		{"case sensitive", "Python", UnknownTarget, false},
		{"unsupported", "rust", UnknownTarget, false},
		{"unknown is not selectable", "unknown", UnknownTarget, false},
		{"empty", "", UnknownTarget, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lang, ok := ParseTargetLanguage(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, lang)
		})
	}
}

func TestTargetLanguageNames(t *testing.T) {
	assert.Equal(t, "python", TargetLanguageNames())
	assert.Equal(t, "python", Python.String())
	assert.Equal(t, "unknown", TargetLanguage(42).String())
}
