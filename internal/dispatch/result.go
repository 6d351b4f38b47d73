package dispatch

import (
	"errors"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/napalu/grassplain/errs"
)

// ScopeValues holds the values of one scope on the dispatched path. Each kind
// has its own map, keyed by declared name in declaration order, since an
// argument, an option and a flag of one scope may share a name. Arguments of
// arity 1 hold a string, other arguments a []string; options hold nil, a
// string or a []string; flags hold an int.
type ScopeValues struct {
	Path      []string                            `json:"path"`
	Arguments *orderedmap.OrderedMap[string, any] `json:"arguments"`
	Options   *orderedmap.OrderedMap[string, any] `json:"options"`
	Flags     *orderedmap.OrderedMap[string, int] `json:"flags"`
}

func newScopeValues(path []string) ScopeValues {
	return ScopeValues{
		Path:      path,
		Arguments: orderedmap.New[string, any](),
		Options:   orderedmap.New[string, any](),
		Flags:     orderedmap.New[string, int](),
	}
}

// Len is the number of values held by the scope
func (v ScopeValues) Len() int {
	return v.Arguments.Len() + v.Options.Len() + v.Flags.Len()
}

// Result is the outcome of a successful dispatch
type Result struct {
	Command []string      `json:"command"`
	Scopes  []ScopeValues `json:"scopes"`
}

// Argument returns the value of the argument name, innermost scope first
func (r *Result) Argument(name string) (any, bool) {
	for i := len(r.Scopes) - 1; i >= 0; i-- {
		if v, ok := r.Scopes[i].Arguments.Get(name); ok {
			return v, true
		}
	}

	return nil, false
}

// Option returns the value of the option name, innermost scope first
func (r *Result) Option(name string) (any, bool) {
	for i := len(r.Scopes) - 1; i >= 0; i-- {
		if v, ok := r.Scopes[i].Options.Get(name); ok {
			return v, true
		}
	}

	return nil, false
}

// Flag returns the value of the flag name, innermost scope first
func (r *Result) Flag(name string) (int, bool) {
	for i := len(r.Scopes) - 1; i >= 0; i-- {
		if v, ok := r.Scopes[i].Flags.Get(name); ok {
			return v, true
		}
	}

	return 0, false
}

// HelpRequestedError is returned when --help or -h asks for the help of the
// scope reached so far
type HelpRequestedError struct {
	Command []string
	Help    string
}

func (e *HelpRequestedError) Error() string {
	return errs.ErrHelpRequested.Error()
}

func (e *HelpRequestedError) Unwrap() error {
	return errs.ErrHelpRequested
}

// IsHelp reports whether err asks for help rather than reporting a mistake
func IsHelp(err error) bool {
	var help *HelpRequestedError
	return errors.As(err, &help)
}

func commandOf(path []string) []string {
	command := make([]string, len(path))
	copy(command, path)

	return command
}
