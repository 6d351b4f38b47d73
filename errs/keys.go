// Package errs defines the translation keys and errors used throughout grassplain.
// This file contains constants for all translation keys.
package errs

// Prefix for all grassplain translation keys
const (
	prefixKey = "grassplain"
)

const (
	ErrorPrefixKey      = prefixKey + ".error"
	ParseErrorPrefixKey = ErrorPrefixKey + ".parse"
	ValidationPrefixKey = ErrorPrefixKey + ".validation"
	EmissionPrefixKey   = ErrorPrefixKey + ".emission"
	DispatchPrefixKey   = ErrorPrefixKey + ".dispatch"
	CliPrefixKey        = prefixKey + ".cli"
)

// Usage errors of the grassplain command line
const (
	ErrUsageKey               = ErrorPrefixKey + ".usage"
	ErrNoConfigKey            = ErrorPrefixKey + ".no_config"
	ErrConfigNotFoundKey      = ErrorPrefixKey + ".config_not_found"
	ErrUnexpectedArgumentKey  = ErrorPrefixKey + ".unexpected_argument"
	ErrInvalidCommandLineKey  = ErrorPrefixKey + ".invalid_command_line"
	ErrUnsupportedFormatKey   = ErrorPrefixKey + ".unsupported_format"
	ErrUnsupportedLanguageKey = ErrorPrefixKey + ".unsupported_language"
	ErrReadKey                = ErrorPrefixKey + ".read"
	ErrOutputKey              = ErrorPrefixKey + ".output"
)

// Document parse errors
const (
	ErrParseKey           = ParseErrorPrefixKey
	ErrParseDetailKey     = ParseErrorPrefixKey + ".detail"
	ErrParseDetailAtKey   = ParseErrorPrefixKey + ".detail_at"
	ErrDuplicateLabelKey  = ParseErrorPrefixKey + ".duplicate_label"
	ErrBlockLabelsKey     = ParseErrorPrefixKey + ".block_labels"
	ErrUnexpectedBlockKey = ParseErrorPrefixKey + ".unexpected_block"
)

// Validation errors
const (
	ErrValidationKey        = ValidationPrefixKey
	ErrValidationSummaryKey = ValidationPrefixKey + ".summary"
	ErrRequiredKey          = ValidationPrefixKey + ".required"
	ErrUnknownKeyKey        = ValidationPrefixKey + ".unknown_key"
	ErrUnknownKeySuggestKey = ValidationPrefixKey + ".unknown_key_suggest"
	ErrExpectedTableKey     = ValidationPrefixKey + ".expected_table"
	ErrExpectedStringKey    = ValidationPrefixKey + ".expected_string"
	ErrExpectedIntegerKey   = ValidationPrefixKey + ".expected_integer"
	ErrEmptyDescriptionKey  = ValidationPrefixKey + ".empty_description"
	ErrNotPositiveKey       = ValidationPrefixKey + ".not_positive"
	ErrPaddingExceedsKey    = ValidationPrefixKey + ".padding_exceeds"
	ErrZeroArityKey         = ValidationPrefixKey + ".zero_arity"
	ErrMultipleVariadicKey  = ValidationPrefixKey + ".multiple_variadic"
	ErrShortLengthKey       = ValidationPrefixKey + ".short_length"
	ErrShortConflictKey     = ValidationPrefixKey + ".short_conflict"
	ErrUnknownTargetKey     = ValidationPrefixKey + ".unknown_target"
	ErrInvalidNameKey       = ValidationPrefixKey + ".invalid_name"
	ErrDuplicateAliasKey    = ValidationPrefixKey + ".duplicate_alias"
)

// Backend errors
const (
	ErrUnsupportedTargetKey   = ErrorPrefixKey + ".unsupported_target"
	ErrEmissionKey            = EmissionPrefixKey
	ErrInvalidIdentifierKey   = EmissionPrefixKey + ".invalid_identifier"
	ErrReservedIdentifierKey  = EmissionPrefixKey + ".reserved_identifier"
	ErrIdentifierCollisionKey = EmissionPrefixKey + ".identifier_collision"
	ErrClassCollisionKey      = EmissionPrefixKey + ".class_collision"
)

// Dry-run dispatch errors
const (
	ErrUnknownOptionKey     = DispatchPrefixKey + ".unknown_option"
	ErrUnknownSubcommandKey = DispatchPrefixKey + ".unknown_subcommand"
	ErrMissingValueKey      = DispatchPrefixKey + ".missing_value"
	ErrUnexpectedValueKey   = DispatchPrefixKey + ".unexpected_value"
	ErrTooFewKey            = DispatchPrefixKey + ".too_few"
	ErrTooManyKey           = DispatchPrefixKey + ".too_many"
	ErrHelpRequestedKey     = DispatchPrefixKey + ".help_requested"
)

// Driver messages
const (
	CliErrorKey      = CliPrefixKey + ".error"
	CliUsageKey      = CliPrefixKey + ".usage"
	CliParsingKey    = CliPrefixKey + ".parsing"
	CliValidatingKey = CliPrefixKey + ".validating"
)
