package verborum

import "strings"

// splitEnclitic removes at most one trailing tackon, then at most one
// trailing packon (if the residue begins with "qu") or not-packon
// (otherwise). Tickons are reserved for future use and are never applied
// here, per spec.md §4.2 and §9. Returns the residue and the seeded
// analysis records for whichever enclitics were split off, in the order
// they were found.
func splitEnclitic(s string, addons AddonTables) (string, []Analysis) {
	var seeded []Analysis

	// 1. Tackons: first table entry whose orth suffixes s wins; "est" is
	// never split from itself.
	for i := range addons.Tackons {
		a := &addons.Tackons[i]
		if !strings.HasSuffix(s, a.Orth) {
			continue
		}
		if s != "est" {
			s = strings.TrimSuffix(s, a.Orth)
			seeded = append(seeded, Analysis{
				Source:     sourceAddon,
				AddonEntry: a,
				AddonKind:  "tackon",
			})
		}
		break
	}

	// 2. Packons (qu- residues) or not-packons (everything else); at most
	// one of either.
	table := addons.NotPackons
	kind := "not_packon"
	if strings.HasPrefix(s, "qu") {
		table = addons.Packons
		kind = "packon"
	}
	for i := range table {
		a := &table[i]
		if !strings.HasSuffix(s, a.Orth) {
			continue
		}
		s = strings.TrimSuffix(s, a.Orth)
		seeded = append(seeded, Analysis{
			Source:     sourceAddon,
			AddonEntry: a,
			AddonKind:  kind,
		})
		break
	}

	return s, seeded
}
