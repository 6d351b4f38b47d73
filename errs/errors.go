package errs

import (
	"github.com/napalu/grassplain/i18n"
)

// Sentinels, one per error class of the taxonomy
var (
	ErrUsage             = i18n.NewError(ErrUsageKey)
	ErrParse             = i18n.NewError(ErrParseKey)
	ErrValidation        = i18n.NewError(ErrValidationKey)
	ErrUnsupportedTarget = i18n.NewError(ErrUnsupportedTargetKey)
	ErrEmission          = i18n.NewError(ErrEmissionKey)
)

// Usage errors
var (
	ErrNoConfig            = i18n.NewError(ErrNoConfigKey)
	ErrConfigNotFound      = i18n.NewError(ErrConfigNotFoundKey)
	ErrUnexpectedArgument  = i18n.NewError(ErrUnexpectedArgumentKey)
	ErrInvalidCommandLine  = i18n.NewError(ErrInvalidCommandLineKey)
	ErrUnsupportedFormat   = i18n.NewError(ErrUnsupportedFormatKey)
	ErrUnsupportedLanguage = i18n.NewError(ErrUnsupportedLanguageKey)
	ErrRead                = i18n.NewError(ErrReadKey)
	ErrOutput              = i18n.NewError(ErrOutputKey)
)

// Parse errors
var (
	ErrParseDetail     = i18n.NewError(ErrParseDetailKey)
	ErrParseDetailAt   = i18n.NewError(ErrParseDetailAtKey)
	ErrDuplicateLabel  = i18n.NewError(ErrDuplicateLabelKey)
	ErrBlockLabels     = i18n.NewError(ErrBlockLabelsKey)
	ErrUnexpectedBlock = i18n.NewError(ErrUnexpectedBlockKey)
)

// Validation errors
var (
	ErrValidationSummary = i18n.NewError(ErrValidationSummaryKey)
	ErrRequired          = i18n.NewError(ErrRequiredKey)
	ErrUnknownKey        = i18n.NewError(ErrUnknownKeyKey)
	ErrUnknownKeySuggest = i18n.NewError(ErrUnknownKeySuggestKey)
	ErrExpectedTable     = i18n.NewError(ErrExpectedTableKey)
	ErrExpectedString    = i18n.NewError(ErrExpectedStringKey)
	ErrExpectedInteger   = i18n.NewError(ErrExpectedIntegerKey)
	ErrEmptyDescription  = i18n.NewError(ErrEmptyDescriptionKey)
	ErrNotPositive       = i18n.NewError(ErrNotPositiveKey)
	ErrPaddingExceeds    = i18n.NewError(ErrPaddingExceedsKey)
	ErrZeroArity         = i18n.NewError(ErrZeroArityKey)
	ErrMultipleVariadic  = i18n.NewError(ErrMultipleVariadicKey)
	ErrShortLength       = i18n.NewError(ErrShortLengthKey)
	ErrShortConflict     = i18n.NewError(ErrShortConflictKey)
	ErrUnknownTarget     = i18n.NewError(ErrUnknownTargetKey)
	ErrInvalidName       = i18n.NewError(ErrInvalidNameKey)
	ErrDuplicateAlias    = i18n.NewError(ErrDuplicateAliasKey)
)

// Emission errors
var (
	ErrInvalidIdentifier   = i18n.NewError(ErrInvalidIdentifierKey)
	ErrReservedIdentifier  = i18n.NewError(ErrReservedIdentifierKey)
	ErrIdentifierCollision = i18n.NewError(ErrIdentifierCollisionKey)
	ErrClassCollision      = i18n.NewError(ErrClassCollisionKey)
)

// Dispatch errors
var (
	ErrUnknownOption     = i18n.NewError(ErrUnknownOptionKey)
	ErrUnknownSubcommand = i18n.NewError(ErrUnknownSubcommandKey)
	ErrMissingValue      = i18n.NewError(ErrMissingValueKey)
	ErrUnexpectedValue   = i18n.NewError(ErrUnexpectedValueKey)
	ErrTooFew            = i18n.NewError(ErrTooFewKey)
	ErrTooMany           = i18n.NewError(ErrTooManyKey)
	ErrHelpRequested     = i18n.NewError(ErrHelpRequestedKey)
)
