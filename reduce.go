package verborum

import "strings"

// reduce peels at most one derivational prefix and at most one
// derivational suffix from s and returns the residue along with the
// addon analysis records seeded for whichever were stripped. Mirrors
// spec.md §4.8: only the first matching prefix and first matching suffix
// (table order) are ever tried; no recursion beyond this one level.
func reduce(s string, addons AddonTables) (string, []Analysis) {
	var seeded []Analysis

	for i := range addons.Prefixes {
		p := &addons.Prefixes[i]
		if residue, ok := stripPrefix(s, p); ok {
			s = residue
			seeded = append(seeded, Analysis{
				Source:     sourceAddon,
				AddonEntry: p,
				AddonKind:  "prefix",
			})
			break
		}
	}

	for i := range addons.Suffixes {
		suf := &addons.Suffixes[i]
		if strings.HasSuffix(s, suf.Orth) {
			s = strings.TrimSuffix(s, suf.Orth)
			seeded = append(seeded, Analysis{
				Source:     sourceAddon,
				AddonEntry: suf,
				AddonKind:  "suffix",
			})
			break
		}
	}

	return s, seeded
}

// stripPrefix strips p from the front of s, trying the connect-assimilated
// spelling first when p declares one (SPEC_FULL.md's supplemented CONNECT
// feature: "ad" applied to a c-initial stem surfaces as "ac-", grounded on
// original_source/open_words/addons.py's CONNECT-character documentation).
func stripPrefix(s string, p *Addon) (string, bool) {
	if p.Connect != 0 && len(p.Orth) > 0 {
		assimilated := p.Orth[:len(p.Orth)-1] + string(p.Connect)
		if strings.HasPrefix(s, assimilated) {
			return s[len(assimilated):], true
		}
	}
	if strings.HasPrefix(s, p.Orth) {
		return s[len(p.Orth):], true
	}
	return s, false
}
