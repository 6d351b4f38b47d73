// Package emitter turns a validated specification into parser source code.
// Target languages form a closed set: each has exactly one constructor in the
// registry below, and adding a language means adding a backend here.
package emitter

import (
	"sort"

	"github.com/napalu/grassplain/errs"
	"github.com/napalu/grassplain/schema"
	"github.com/napalu/grassplain/types"
)

// Emitter generates parser source code for one target language. Emit is pure:
// identical input yields byte-identical output.
type Emitter interface {
	Language() types.TargetLanguage
	FileExtension() string
	Emit(cfg *schema.ConfigurationFile) (string, error)
}

// Constructor creates an Emitter
type Constructor func(configs ...ConfigureEmitterFunc) Emitter

var registry = map[types.TargetLanguage]Constructor{
	types.Python: NewPythonEmitter,
}

// Lookup returns the constructor of the backend for lang, or an
// *errs.UnsupportedTargetError when there is none
func Lookup(lang types.TargetLanguage) (Constructor, error) {
	constructor, ok := registry[lang]
	if !ok {
		return nil, &errs.UnsupportedTargetError{Requested: lang.String()}
	}

	return constructor, nil
}

// GetEmitter returns a configured emitter for lang
func GetEmitter(lang types.TargetLanguage, configs ...ConfigureEmitterFunc) (Emitter, error) {
	constructor, err := Lookup(lang)
	if err != nil {
		return nil, err
	}

	return constructor(configs...), nil
}

// Languages returns the languages with a backend
func Languages() []types.TargetLanguage {
	langs := make([]types.TargetLanguage, 0, len(registry))
	for lang := range registry {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i] < langs[j]
	})

	return langs
}
