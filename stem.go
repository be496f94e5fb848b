package verborum

import (
	"fmt"
	"strings"
)

// matchStems joins candidate endings to the stem table: for each ending e,
// strip it from s and look up the residue in stemsByOrth, keeping stems
// whose POS agrees with e (V/VPAR unified) and whose paradigm number
// agrees. Stems matched by several endings are grouped into one StemMatch
// each, per spec.md §4.5 and the §3 invariant that no two StemMatch
// entries within an Analysis share a stem.
//
// The empty-ending base-form exception (spec.md §3): when e.Ending == ""
// and the normal paradigm check yields no stems, e.N[0] == 0 is treated as
// a wildcard matching any stem.N[0].
func matchStems(s string, candidates []Infl, stemsByOrth map[string][]Stem) []StemMatch {
	var out []StemMatch
	index := make(map[string]int) // stemKey -> index into out, for stems already placed

	appendMatch := func(st Stem, infl Infl) {
		key := stemKey(st)
		if i, ok := index[key]; ok {
			if !hasForm(out[i].Infls, infl.Form) {
				out[i].Infls = append(out[i].Infls, infl)
			}
			return
		}
		index[key] = len(out)
		out = append(out, StemMatch{Stem: st, Infls: []Infl{infl}})
	}

	for _, e := range candidates {
		w := strings.TrimSuffix(s, e.Ending)
		stems := stemsByOrth[w]
		if len(stems) == 0 {
			continue
		}

		matchedAny := false
		for _, st := range stems {
			if !posAgree(e.POS, st.POS) {
				continue
			}
			if e.N[0] == st.N[0] {
				appendMatch(st, e)
				matchedAny = true
			}
		}

		if e.Ending == "" && !matchedAny && e.N[0] == 0 {
			for _, st := range stems {
				if !posAgree(e.POS, st.POS) {
					continue
				}
				appendMatch(st, e)
			}
		}
	}

	return out
}

// stemKey is the identity a Stem is de-duplicated by within one analysis.
func stemKey(st Stem) string {
	return fmt.Sprintf("%s\x00%s\x00%d,%d", st.Orth, st.POS, st.N[0], st.N[1])
}

func hasForm(infls []Infl, form string) bool {
	for _, i := range infls {
		if i.Form == form {
			return true
		}
	}
	return false
}
