package verborum

// joinStems resolves each StemMatch's Wid to its dictionary entry, applies
// the V/VPAR participle disambiguation, and groups the result into one
// Analysis per distinct entry. Mirrors spec.md §4.6.
//
// De-duplication is by entry id and, defensively, by orth (spec.md §4.6):
// two StemMatches resolving to entries with the same id, or the same orth
// under different ids (a lexicon-integrity smell but not fatal), are
// merged into a single Analysis rather than emitted twice.
func joinStems(matches []StemMatch, dictByID map[int]*DictEntry) []Analysis {
	var out []Analysis
	byID := make(map[int]int)   // entry id -> index into out
	byOrth := make(map[string]int)

	for _, sm := range matches {
		entry, ok := dictByID[sm.Stem.Wid]
		if !ok || entry == nil {
			// Unresolved wid: recoverable, drop the candidate (spec.md §7).
			continue
		}

		sm = disambiguateVPar(sm, entry)
		if len(sm.Infls) == 0 {
			continue
		}

		if idx, ok := byID[entry.ID]; ok {
			out[idx].Stems = append(out[idx].Stems, sm)
			continue
		}
		if idx, ok := byOrth[entry.Orth]; ok {
			out[idx].Stems = append(out[idx].Stems, sm)
			byID[entry.ID] = idx
			continue
		}

		out = append(out, Analysis{
			Source: sourceDict,
			Entry:  entry,
			Stems:  []StemMatch{sm},
		})
		idx := len(out) - 1
		byID[entry.ID] = idx
		byOrth[entry.Orth] = idx
	}

	return out
}

// disambiguateVPar implements spec.md §4.6's sole V/VPAR split mechanism:
// if the stem occupies the perfect-passive-participle slot (index 3) of a
// verb's principal parts, it is behaving as a participle, so finite-verb
// (V) inflections are dropped and VPAR ones kept; otherwise the reverse.
// Non-verb entries are returned unchanged.
func disambiguateVPar(sm StemMatch, entry *DictEntry) StemMatch {
	if entry.POS != POSVerb {
		return sm
	}

	isParticipleSlot := false
	for i, p := range entry.Parts {
		if i == 3 && p == sm.Stem.Orth {
			isParticipleSlot = true
			break
		}
	}

	kept := sm.Infls[:0:0]
	for _, infl := range sm.Infls {
		switch {
		case isParticipleSlot && infl.POS == POSVerb:
			continue
		case !isParticipleSlot && infl.POS == POSVerbPart:
			continue
		default:
			kept = append(kept, infl)
		}
	}
	sm.Infls = kept
	return sm
}
