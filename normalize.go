package verborum

import (
	"strings"
	"unicode"
)

// mojibakeEmDash is the common mojibake for U+2014 EM DASH ("—") seen in
// scraped text: the dash's own three UTF-8 bytes (E2 80 94) each
// misinterpreted as a separate Latin-1/cp1252 code point and re-encoded as
// UTF-8, yielding "â€”" (C3 A2 E2 82 AC E2 80 9D).
const mojibakeEmDash = "\xc3\xa2\xe2\x82\xac\xe2\x80\x9d"

// dashReplacer turns em-dashes and their common mojibake into a space,
// mirroring the teacher's strings.NewReplacer-based table-replacement
// idiom (normalize.go's atoneReplacer/deramiseReplacer).
var dashReplacer = strings.NewReplacer(
	"—", " ",
	mojibakeEmDash, " ",
)

// Normalize lowercases s, strips punctuation and digits, and replaces
// em-dashes (and the common mojibake em-dash sequence) with a space.
// Mirrors spec.md §4.1 and open_words/parse.py's sanitize(). Idempotent:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(s string) string {
	s = dashReplacer.Replace(s)
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsDigit(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
