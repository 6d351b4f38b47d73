// Package i18n holds the message catalogue behind grassplain's diagnostics.
//
// Messages are keyed format strings loaded from JSON locale files. The system
// bundle returned by Default is built from the locales embedded in this
// package; every additional language must define exactly the keys of the
// default language.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var systemLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrDefaultLanguageNotFound            = errors.New("default " + ErrLanguageNotFound.Error())
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	matcher      language.Matcher
}

var (
	defaultBundleOnce sync.Once
	defaultBundle     *Bundle
)

// Default returns the system bundle built from the embedded locales.
func Default() *Bundle {
	defaultBundleOnce.Do(func() {
		var err error
		defaultBundle, err = NewBundle()
		if err != nil {
			panic("failed to load embedded locales: " + err.Error())
		}
	})

	return defaultBundle
}

// NewBundle creates a fresh bundle from the embedded locales.
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(systemLocales, "locales")
}

func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{language.English}),
	}
}

// NewBundleWithFS loads every <lang>.json file below dirPrefix. The default
// language (English unless given) is loaded first so the others can be
// validated against it.
func NewBundleWithFS(fs embed.FS, dirPrefix string, lang ...language.Tag) (*Bundle, error) {
	b := NewEmptyBundle()
	if len(lang) > 0 {
		b.defaultLang = lang[0]
	}

	if err := b.LoadFromFS(fs, dirPrefix); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	b.updateMatcher()

	return b, nil
}

// T returns the translation for the given key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defaultLang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(defaultLang, key, args...)
}

// TL returns the translation for the given language and key
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, exists := b.printers[b.matchLocked(lang)]; exists {
		return p.Sprintf(key, args...)
	}

	return key
}

// Message returns the raw, unformatted message for key in the default
// language, falling back to English and finally to the key itself.
func (b *Bundle) Message(key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[b.defaultLang][key]; ok {
		return msg
	}
	if msg, ok := b.translations[language.English][key]; ok {
		return msg
	}

	return key
}

// AddLanguage adds a new language to the bundle or updates existing language if it exists
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	original := b.translations[lang]
	b.translations[lang] = merged

	// only new non-default languages are checked against the default
	var errs []error
	if lang != b.defaultLang && original == nil {
		errs = b.validateLanguage(lang)
	}

	if len(errs) > 0 {
		if original == nil {
			delete(b.translations, lang)
		} else {
			b.translations[lang] = original
		}
		return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			delete(merged, key)
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	b.updateMatcherLocked()

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]
	return exists
}

// MatchLanguage returns the supported language closest to requested.
func (b *Bundle) MatchLanguage(requested language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.matchLocked(requested)
}

func (b *Bundle) matchLocked(requested language.Tag) language.Tag {
	if _, exists := b.translations[requested]; exists {
		return requested
	}

	matched, _, confidence := b.matcher.Match(requested)
	if confidence == language.No {
		return b.defaultLang
	}
	base, _ := matched.Base()
	for lang := range b.translations {
		if lb, _ := lang.Base(); lb == base {
			return lang
		}
	}

	return b.defaultLang
}

// Languages returns a list of supported languages
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.sortedLanguages()
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, exists := b.translations[lang]
	if !exists {
		return false
	}

	_, exists = translations[key]
	return exists
}

// SetDefaultLanguage sets the default language
func (b *Bundle) SetDefaultLanguage(lang language.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.defaultLang = lang
}

func (b *Bundle) GetDefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.defaultLang
}

// LoadFromFS loads all locale files found directly below dirPrefix.
func (b *Bundle) LoadFromFS(fs embed.FS, dirPrefix string) error {
	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return err
	}

	var deferred []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		parsedLang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		filePath := path.Join(dirPrefix, entry.Name())
		if parsedLang != b.defaultLang {
			deferred = append(deferred, filePath)
			continue
		}
		if err := b.processLangFile(fs, parsedLang, filePath); err != nil {
			return err
		}
	}

	for _, filePath := range deferred {
		lang := language.MustParse(strings.TrimSuffix(path.Base(filePath), ".json"))
		if err := b.processLangFile(fs, lang, filePath); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) processLangFile(fs embed.FS, lang language.Tag, path string) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations, exists := b.translations[lang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)}
	}

	if len(translations) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	defaultTranslations, exists := b.translations[b.defaultLang]
	if !exists {
		return append(errs, fmt.Errorf("%w: %s", ErrDefaultLanguageNotFound, b.defaultLang))
	}

	for _, key := range sortedKeys(defaultTranslations) {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}

	for _, key := range sortedKeys(translations) {
		if _, exists := defaultTranslations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}

func (b *Bundle) updateMatcher() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updateMatcherLocked()
}

func (b *Bundle) updateMatcherLocked() {
	supported := b.sortedLanguages()
	// the default language goes first so the matcher falls back to it
	ordered := make([]language.Tag, 0, len(supported))
	ordered = append(ordered, b.defaultLang)
	for _, lang := range supported {
		if lang != b.defaultLang {
			ordered = append(ordered, lang)
		}
	}
	b.matcher = language.NewMatcher(ordered)
}

func (b *Bundle) sortedLanguages() []language.Tag {
	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}

	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
