package verborum

import "testing"

func TestReducePrefixAndSuffix(t *testing.T) {
	addons := AddonTables{
		Prefixes: []Addon{{Orth: "in"}},
		Suffixes: []Addon{{Orth: "bilis"}},
	}

	residue, seeded := reduce("incredibilis", addons)
	if residue != "cred" {
		t.Errorf("residue = %q, want %q", residue, "cred")
	}
	if len(seeded) != 2 {
		t.Fatalf("seeded = %+v, want one prefix and one suffix record", seeded)
	}
	if seeded[0].AddonKind != "prefix" || seeded[1].AddonKind != "suffix" {
		t.Errorf("seeded kinds = %s, %s, want prefix then suffix", seeded[0].AddonKind, seeded[1].AddonKind)
	}
}

func TestReduceOnlyFirstMatchPerTable(t *testing.T) {
	addons := AddonTables{
		Prefixes: []Addon{{Orth: "in"}, {Orth: "incurr"}},
	}

	residue, seeded := reduce("incurro", addons)
	if residue != "curro" {
		t.Errorf("residue = %q, want %q (only the first matching prefix peeled)", residue, "curro")
	}
	if len(seeded) != 1 {
		t.Errorf("seeded = %+v, want exactly one prefix record", seeded)
	}
}

func TestStripPrefixConnectAssimilation(t *testing.T) {
	p := &Addon{Orth: "ad", Connect: 'c'}

	residue, ok := stripPrefix("accurro", p)
	if !ok || residue != "curro" {
		t.Errorf("stripPrefix(%q) = (%q, %v), want (%q, true)", "accurro", residue, ok, "curro")
	}
}

func TestStripPrefixNoMatch(t *testing.T) {
	p := &Addon{Orth: "in"}
	residue, ok := stripPrefix("amo", p)
	if ok || residue != "amo" {
		t.Errorf("stripPrefix(%q) = (%q, %v), want (%q, false)", "amo", residue, ok, "amo")
	}
}
