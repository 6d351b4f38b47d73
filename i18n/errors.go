package i18n

import (
	"errors"
	"fmt"
	"sync"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Is(target error) bool
}

// MessageProvider defines an interface for getting default messages
type MessageProvider interface {
	GetMessage(key string) string
}

// BundleMessageProvider implements MessageProvider using a bundle
type BundleMessageProvider struct {
	bundle *Bundle
}

// NewBundleMessageProvider creates a new provider with a bundle
func NewBundleMessageProvider(bundle *Bundle) *BundleMessageProvider {
	return &BundleMessageProvider{
		bundle: bundle,
	}
}

// GetMessage returns the message for the given key from the bundle
func (p *BundleMessageProvider) GetMessage(key string) string {
	if p.bundle == nil {
		return key
	}

	return p.bundle.Message(key)
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. The message is looked up on every call to Error,
// so changing the bundle's default language changes the rendering of errors
// that already exist.
//
// Example usage:
//
//	err := NewError("grassplain.error.required")
//	err = err.WithArgs("description")
//	err = err.Wrap(originalError)
type TrError struct {
	// compared by errors.Is; shared by every copy made with WithArgs or Wrap
	sentinel        error
	key             string
	args            []interface{}
	wrapped         error
	messageProvider MessageProvider
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return NewErrorWithProvider(key, getDefaultProvider())
}

// NewErrorWithProvider creates a new translatable error with a key and specific provider
func NewErrorWithProvider(key string, provider MessageProvider) *TrError {
	return &TrError{
		sentinel:        errors.New(key),
		key:             key,
		messageProvider: provider,
	}
}

// Error returns the message, formatted with args if provided
func (e *TrError) Error() string {
	provider := e.messageProvider
	if provider == nil {
		provider = getDefaultProvider()
	}

	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            args,
		wrapped:         e.wrapped,
		messageProvider: e.messageProvider,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel:        e.sentinel,
		key:             e.key,
		args:            e.args,
		wrapped:         err,
		messageProvider: e.messageProvider,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

func (e *TrError) SetProvider(provider MessageProvider) {
	e.messageProvider = provider
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by errors created
// afterwards with NewError.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	if defaultProvider != nil {
		defer defaultProviderMux.RUnlock()
		return defaultProvider
	}
	defaultProviderMux.RUnlock()

	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()

	if defaultProvider == nil {
		defaultProvider = NewBundleMessageProvider(Default())
	}

	return defaultProvider
}
