package verborum

import (
	"sort"
	"strings"
)

// principalPartSlotForms gives, per POS class, the paradigm-slot Form
// string to search the inflection table for when reconstructing principal
// parts. Mirrors the table in spec.md §4.7 verbatim. Slots 2 and 3 are
// meaningless for N/ADJ/PRON and are left empty.
var principalPartSlotForms = map[PartOfSpeech][4]string{
	POSVerb:     {"PRES ACTIVE IND 1 S", "PRES ACTIVE INF 0 X", "PERF ACTIVE IND 1 S", "NOM S M PRES PASSIVE PPL"},
	POSVerbPart: {"PRES ACTIVE IND 1 S", "PRES ACTIVE INF 0 X", "PERF ACTIVE IND 1 S", "NOM S M PRES PASSIVE PPL"},
	POSNoun:     {"NOM S", "GEN S", "", ""},
	POSAdjective: {"NOM S", "GEN S", "", ""},
	POSPronoun:  {"NOM S", "GEN S", "", ""},
}

// verbFallbackEndings are the hardcoded final-fallback endings for verb
// principal-part slots 0-3, applied only when no inflection-table match
// (preferred or [0,0]-wildcard) was found. Mirrors spec.md §4.7.
var verbFallbackEndings = [4]string{"o", "?re", "i", "us"}

// reconstructPrincipalParts operates on a deep copy of entry (spec.md §9:
// "clone-then-mutate... load-bearing, must not be optimized away") and
// appends a canonical ending to each non-empty, non-"-" principal-part
// slot so downstream display shows full inflected lemma forms. Skipped
// entirely in reduced mode by the caller (spec.md §4.7/§4.8).
func reconstructPrincipalParts(entry *DictEntry, inflsByForm map[string][]Infl) *DictEntry {
	out := entry.clone()

	slotForms, ok := principalPartSlotForms[out.POS]
	if !ok {
		return out
	}

	for i, part := range out.Parts {
		if i > 3 || part == "" || part == "-" {
			continue
		}
		form := slotForms[i]
		if form == "" {
			continue
		}

		ending, found := canonicalEnding(form, out.N, inflsByForm)
		if !found && (out.POS == POSVerb || out.POS == POSVerbPart) {
			ending = verbFallbackEndings[i]
			found = true
		}
		if found {
			out.Parts[i] = part + ending
		}
	}

	return out
}

// canonicalEnding searches inflsByForm for an ending realizing form,
// preferring one whose N equals want, falling back to the [0,0] wildcard.
func canonicalEnding(form string, want ParadigmNumber, inflsByForm map[string][]Infl) (string, bool) {
	var keys []string
	for key := range inflsByForm {
		if key == form || strings.HasPrefix(key, form) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var candidates []Infl
	for _, key := range keys {
		candidates = append(candidates, inflsByForm[key]...)
	}
	if len(candidates) == 0 {
		return "", false
	}

	for _, infl := range candidates {
		if infl.N == want {
			return infl.Ending, true
		}
	}
	for _, infl := range candidates {
		if infl.N.IsWildcard() {
			return infl.Ending, true
		}
	}
	return "", false
}
