package errs

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/napalu/grassplain/i18n"
)

// UsageError reports a bad invocation of the grassplain command line.
type UsageError struct {
	Err error
}

func NewUsageError(err error) *UsageError {
	return &UsageError{Err: err}
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() []error {
	return []error{ErrUsage, e.Err}
}

// ParseError reports a document that is not well-formed. Line and Column are
// 1-based and zero when the parser did not supply a location.
type ParseError struct {
	Format string
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	var detail i18n.TranslatableError
	if e.Line > 0 {
		detail = ErrParseDetailAt.WithArgs(e.Format, e.Line, e.Column)
	} else {
		detail = ErrParseDetail.WithArgs(e.Format)
	}

	if e.Err == nil {
		return detail.Error()
	}

	return detail.Wrap(e.Err).Error()
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}

	return []error{ErrParse, e.Err}
}

// Violation is one broken invariant, located by the dotted path of the
// offending field.
type Violation struct {
	Path string
	Err  error
}

func (v Violation) Error() string {
	if v.Path == "" {
		return v.Err.Error()
	}

	return v.Path + ": " + v.Err.Error()
}

func (v Violation) Unwrap() error {
	return v.Err
}

// ValidationError lists every violation found in a document, in document order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrValidationSummary.WithArgs(len(e.Violations)).Error())
	for _, v := range e.Violations {
		sb.WriteString("\n  ")
		sb.WriteString(v.Error())
	}

	return sb.String()
}

func (e *ValidationError) Unwrap() []error {
	wrapped := make([]error, 0, len(e.Violations)+1)
	wrapped = append(wrapped, ErrValidation)
	for _, v := range e.Violations {
		wrapped = append(wrapped, v.Err)
	}

	return wrapped
}

// UnsupportedTargetError reports a target language without a backend.
type UnsupportedTargetError struct {
	Requested string
}

func (e *UnsupportedTargetError) Error() string {
	return ErrUnsupportedTarget.WithArgs(e.Requested).Error()
}

func (e *UnsupportedTargetError) Unwrap() error {
	return ErrUnsupportedTarget.WithArgs(e.Requested)
}

// EmissionError reports an inconsistency a backend can not resolve.
type EmissionError struct {
	Err error
}

func NewEmissionError(err error) *EmissionError {
	return &EmissionError{Err: err}
}

func (e *EmissionError) Error() string {
	return ErrEmission.Wrap(e.Err).Error()
}

func (e *EmissionError) Unwrap() []error {
	return []error{ErrEmission, e.Err}
}

// JoinPath appends a segment to a dotted path. Segments that are not bare
// keys are quoted the way TOML quotes them.
func JoinPath(base string, segment string) string {
	if !isBareKey(segment) {
		segment = strconv.Quote(segment)
	}
	if base == "" {
		return segment
	}

	return base + "." + segment
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-') {
			return false
		}
	}

	return true
}
