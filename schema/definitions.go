// Package schema is the validated, in-memory model of a command line
// specification: meta information, a global scope and a recursive tree of
// subcommands.
//
// Every mapping preserves declaration order. A model is built once by the
// loader and treated as immutable afterwards.
package schema

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/grassplain/types"
)

// MetaInfo holds the description and help formatting parameters of a CLI
type MetaInfo struct {
	Description           string
	MaxLineLength         int
	MinDescriptionPadding int
	MaxDescriptionLength  int
	TargetLanguage        types.TargetLanguage
	// Extra maps a help section header to its body
	Extra *orderedmap.OrderedMap[string, string]
}

// Argument is a positional argument
type Argument struct {
	Description string
	// NumberOfArguments is positive, or types.Unlimited
	NumberOfArguments int
}

// IsVariadic reports whether the argument takes any number of values
func (a *Argument) IsVariadic() bool {
	return a.NumberOfArguments == types.Unlimited
}

// Option is a named option taking a value
type Option struct {
	Description string
	// Delimiter makes the option list-valued when non-empty
	Delimiter string
	// Default is nil when the document does not set one
	Default *string
}

// IsList reports whether values of the option accumulate into a sequence
func (o *Option) IsList() bool {
	return o.Delimiter != ""
}

// Flag is a named switch that takes no value
type Flag struct {
	Description string
	Short       string
	Default     int
}

// Scope holds the arguments, options and flags attached to the global
// command or to one subcommand
type Scope struct {
	Arguments *orderedmap.OrderedMap[string, *Argument]
	Options   *orderedmap.OrderedMap[string, *Option]
	Flags     *orderedmap.OrderedMap[string, *Flag]
}

// Subcommand is a Scope with a description and child subcommands. Children
// are owned values so the tree can not contain cycles.
type Subcommand struct {
	Scope
	Description string
	Subcommands *orderedmap.OrderedMap[string, *Subcommand]
}

// ConfigurationFile is the root of a validated specification
type ConfigurationFile struct {
	Meta        MetaInfo
	Global      Scope
	Subcommands *orderedmap.OrderedMap[string, *Subcommand]
}

// DefaultMeta returns the meta information used when a document omits it
func DefaultMeta() MetaInfo {
	return MetaInfo{
		MaxLineLength:         types.DefaultMaxLineLength,
		MinDescriptionPadding: types.DefaultMinDescriptionPadding,
		MaxDescriptionLength:  types.DefaultMaxDescriptionLength,
		TargetLanguage:        types.Python,
		Extra:                 orderedmap.New[string, string](),
	}
}

// NewScope returns a Scope with empty mappings
func NewScope() Scope {
	return Scope{
		Arguments: orderedmap.New[string, *Argument](),
		Options:   orderedmap.New[string, *Option](),
		Flags:     orderedmap.New[string, *Flag](),
	}
}

// NewSubcommand returns a Subcommand without entries
func NewSubcommand(description string) *Subcommand {
	return &Subcommand{
		Scope:       NewScope(),
		Description: description,
		Subcommands: orderedmap.New[string, *Subcommand](),
	}
}

// NewConfigurationFile returns an empty specification with default meta information
func NewConfigurationFile() *ConfigurationFile {
	return &ConfigurationFile{
		Meta:        DefaultMeta(),
		Global:      NewScope(),
		Subcommands: orderedmap.New[string, *Subcommand](),
	}
}

// NewArgument returns an argument taking a single value
func NewArgument(description string) *Argument {
	return &Argument{Description: description, NumberOfArguments: types.DefaultArity}
}

// NewOption returns a scalar option without default
func NewOption(description string) *Option {
	return &Option{Description: description}
}

// NewFlag returns a flag without short alias and with default 0
func NewFlag(description string) *Flag {
	return &Flag{Description: description}
}

// Variadic returns the name of the unlimited argument of the scope, if any
func (s *Scope) Variadic() (string, bool) {
	for pair := s.Arguments.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.IsVariadic() {
			return pair.Key, true
		}
	}

	return "", false
}

// FixedArity returns the number of values taken by the scope's arguments,
// not counting an unlimited one
func (s *Scope) FixedArity() int {
	n := 0
	for pair := s.Arguments.Oldest(); pair != nil; pair = pair.Next() {
		if !pair.Value.IsVariadic() {
			n += pair.Value.NumberOfArguments
		}
	}

	return n
}

// IsEmpty reports whether the scope declares nothing
func (s *Scope) IsEmpty() bool {
	return s.Arguments.Len() == 0 && s.Options.Len() == 0 && s.Flags.Len() == 0
}

// StringPtr returns a pointer to s, for Option defaults
func StringPtr(s string) *string {
	return &s
}
