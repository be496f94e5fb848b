package verborum

import "github.com/pkg/errors"

// LexiconLoadError reports a malformed record encountered while loading a
// lexicon file. Mirrors spec.md §7. Err is the pkg/errors-wrapped cause,
// built once at construction time, so it keeps its stack trace: callers
// can pull it out via Unwrap (errors.Cause, errors.As, or a direct
// StackTrace() type-assertion on the result of Unwrap) rather than just a
// flattened string.
type LexiconLoadError struct {
	File string
	Line int
	Err  error
}

func (e *LexiconLoadError) Error() string { return e.Err.Error() }

func (e *LexiconLoadError) Unwrap() error { return e.Err }

func newLexiconLoadError(file string, line int, msg string) *LexiconLoadError {
	return &LexiconLoadError{
		File: file,
		Line: line,
		Err:  errors.Wrapf(errors.New(msg), "%s:%d: malformed record", file, line),
	}
}

// CodeTranslationError reports an unknown short grammatical code seen by
// the output formatter. This always indicates lexicon corruption (spec.md
// §4.10, §7): a well-formed lexicon never produces an unrecognized code.
// Err is the pkg/errors-wrapped cause, kept for the same reason as
// LexiconLoadError.Err above.
type CodeTranslationError struct {
	Field string
	Code  string
	Err   error
}

func (e *CodeTranslationError) Error() string { return e.Err.Error() }

func (e *CodeTranslationError) Unwrap() error { return e.Err }

func newCodeTranslationError(field, code string) *CodeTranslationError {
	return &CodeTranslationError{
		Field: field,
		Code:  code,
		Err:   errors.Errorf("unknown %s code %q", field, code),
	}
}
