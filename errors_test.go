package verborum

import (
	"strings"
	"testing"
)

func TestLexiconLoadErrorMessage(t *testing.T) {
	err := newLexiconLoadError("dict.txt", 42, "empty orth")
	if !strings.Contains(err.Error(), "dict.txt:42") {
		t.Errorf("Error() = %q, want it to mention the file and line", err.Error())
	}
	if err.Unwrap() == nil {
		t.Error("Unwrap() returned nil, want the wrapped cause")
	}
}

func TestCodeTranslationErrorMessage(t *testing.T) {
	err := newCodeTranslationError("tense", "ZZZZ")
	if !strings.Contains(err.Error(), "ZZZZ") || !strings.Contains(err.Error(), "tense") {
		t.Errorf("Error() = %q, want it to mention the field and code", err.Error())
	}
	if err.Unwrap() == nil {
		t.Error("Unwrap() returned nil, want the pkg/errors-wrapped cause")
	}
}
