package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Sentinel kinds, matched with errors.Is.
var (
	ErrMalformedConfig     = errors.New("malformed config")
	ErrInvalidColorLiteral = errors.New("invalid color literal")
	ErrGlobResolutionEmpty = errors.New("glob matched no files")
	ErrUnknownKey          = errors.New("unknown key")
)

// location renders "file: path" skipping the empty parts.
func location(file, path string) string {
	return strings.Join(lo.Compact([]string{file, path}), ": ")
}

// MalformedConfigError is a structural violation of the document: a missing
// required key or a value of the wrong shape. It is always fatal.
type MalformedConfigError struct {
	File   string
	Path   string
	Reason string
	Err    error
}

func (e *MalformedConfigError) Error() string {
	if loc := location(e.File, e.Path); loc != "" {
		return fmt.Sprintf("%s: %s", loc, e.Reason)
	}
	return e.Reason
}

func (e *MalformedConfigError) Is(target error) bool { return target == ErrMalformedConfig }

func (e *MalformedConfigError) Unwrap() error { return e.Err }

// InvalidColorLiteralError reports a color leaf that is not a #RRGGBB literal.
// Path is the token path, e.g. "colors.amber.400"; Key is the full key path in
// the document it came from.
type InvalidColorLiteralError struct {
	File       string
	Key        string
	Path       string
	Value      string
	Suggestion string
}

func (e *InvalidColorLiteralError) Error() string {
	msg := fmt.Sprintf("%s: invalid color literal %q, expected #RRGGBB", location(e.File, e.keyPath()), e.Value)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(", did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *InvalidColorLiteralError) keyPath() string {
	if e.Key != "" {
		return e.Key
	}
	return e.Path
}

func (e *InvalidColorLiteralError) Is(target error) bool { return target == ErrInvalidColorLiteral }

// GlobResolutionEmptyError is the warning emitted for a content pattern that
// matched nothing. Err carries the pattern syntax error, if any.
type GlobResolutionEmptyError struct {
	Pattern string
	Err     error
}

func (e *GlobResolutionEmptyError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("content pattern %q matched no files: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("content pattern %q matched no files", e.Pattern)
}

func (e *GlobResolutionEmptyError) Is(target error) bool { return target == ErrGlobResolutionEmpty }

func (e *GlobResolutionEmptyError) Unwrap() error { return e.Err }

// UnknownKeyError is the warning emitted for a key the loader does not recognize.
type UnknownKeyError struct {
	File       string
	Path       string
	Suggestion string
}

func (e *UnknownKeyError) Error() string {
	msg := fmt.Sprintf("%s: unknown key, ignored", location(e.File, e.Path))
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", e.Suggestion)
	}
	return msg
}

func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }

// Diagnostics are the non-fatal findings of a load or a glob resolution.
type Diagnostics []error

// Of returns the diagnostics matching target.
func (d Diagnostics) Of(target error) Diagnostics {
	return lo.Filter(d, func(err error, _ int) bool { return errors.Is(err, target) })
}

// Without returns the diagnostics not matching target.
func (d Diagnostics) Without(target error) Diagnostics {
	return lo.Reject(d, func(err error, _ int) bool { return errors.Is(err, target) })
}
