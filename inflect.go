package verborum

import (
	"sort"
	"strings"
)

// sortedInflections returns infls sorted ascending by ending length, the
// precondition inflect.go's matcher relies on (spec.md §4.4). The loader
// establishes this order once at startup; matchInflections re-derives it
// defensively so the invariant holds even if a caller hands it an
// unsorted slice directly.
func sortedInflections(infls []Infl) []Infl {
	out := append([]Infl(nil), infls...)
	sort.Slice(out, func(i, j int) bool {
		return len(out[i].Ending) < len(out[j].Ending)
	})
	return out
}

// matchInflections finds candidate endings for s by longest-suffix match
// against infls (which must be sorted ascending by ending length).
// Scanning proceeds from the longest ending down to the shortest; once an
// ending matches, any subsequent (shorter) ending that also matches but is
// strictly shorter than the first match terminates the scan. Endings
// tying the longest matched length are all kept, which is how multiple
// paradigm interpretations of the same surface form survive. Mirrors
// spec.md §4.4.
func matchInflections(s string, infls []Infl) []Infl {
	var matches []Infl
	maxLen := -1

	for i := len(infls) - 1; i >= 0; i-- {
		e := infls[i]
		if !strings.HasSuffix(s, e.Ending) {
			continue
		}
		if maxLen == -1 {
			maxLen = len(e.Ending)
			matches = append(matches, e)
			continue
		}
		if len(e.Ending) < maxLen {
			break
		}
		matches = append(matches, e)
	}
	return matches
}
