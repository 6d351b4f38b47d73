package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{name: "empty", in: []int{}, want: []int{}},
		{name: "single", in: []int{1}, want: []int{1}},
		{name: "even", in: []int{1, 2, 3, 4}, want: []int{4, 3, 2, 1}},
		{name: "odd", in: []int{1, 2, 3}, want: []int{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reverse(tt.in)
			assert.Equal(t, tt.want, tt.in)
		})
	}
}

func TestSuggest(t *testing.T) {
	candidates := []string{"meta", "global", "subcommand", "subcommands"}

	tests := []struct {
		name   string
		input  string
		want   string
		wantOk bool
	}{
		{name: "one edit", input: "gloabl", want: "global", wantOk: true},
		{name: "missing letter", input: "mta", want: "meta", wantOk: true},
		{name: "tie goes to earlier candidate", input: "subcommandz", want: "subcommand", wantOk: true},
		{name: "too far", input: "options", wantOk: false},
		{name: "exact match is not suggested", input: "meta", wantOk: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Suggest(tt.input, candidates, DefaultSuggestionThreshold)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
