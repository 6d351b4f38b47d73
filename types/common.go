package types

import "strings"

// TargetLanguage identifies the language a backend emits
type TargetLanguage int

const (
	UnknownTarget TargetLanguage = iota // UnknownTarget is the zero value and never has a backend
	Python                              // Python emits a self-contained Python 3 module
)

// String returns the identifier used for a TargetLanguage in documents
func (t TargetLanguage) String() string {
	switch t {
	case Python:
		return "python"
	case UnknownTarget:
		fallthrough
	default:
		return "unknown"
	}
}

// TargetLanguages returns every language a document may request, in declaration order
func TargetLanguages() []TargetLanguage {
	return []TargetLanguage{Python}
}

// ParseTargetLanguage maps a document identifier to a TargetLanguage. Matching
// is case-sensitive, as in the documents themselves.
func ParseTargetLanguage(s string) (TargetLanguage, bool) {
	for _, t := range TargetLanguages() {
		if t.String() == s {
			return t, true
		}
	}

	return UnknownTarget, false
}

// TargetLanguageNames returns the supported identifiers joined for display
func TargetLanguageNames() string {
	names := make([]string, 0, len(TargetLanguages()))
	for _, t := range TargetLanguages() {
		names = append(names, t.String())
	}

	return strings.Join(names, ", ")
}

// Unlimited is the arity of an argument accepting any number of values
const Unlimited = -1

// Arity defaults
const (
	DefaultArity = 1
)

// Meta defaults
const (
	DefaultMaxLineLength         = 80
	DefaultMinDescriptionPadding = 12
	DefaultMaxDescriptionLength  = 25
)

// KeyValue denotes Key Value pairs
type KeyValue[K, V any] struct {
	Key   K
	Value V
}
