package verborum

import (
	"reflect"
	"testing"
)

func testAddons() AddonTables {
	return AddonTables{
		Tackons: []Addon{
			{Orth: "que"},
			{Orth: "st"},
		},
		Packons:    []Addon{{Orth: "dam"}},
		NotPackons: []Addon{{Orth: "ne"}},
		Prefixes:   []Addon{{Orth: "in"}},
	}
}

func TestSplitEncliticTackon(t *testing.T) {
	addons := testAddons()
	residue, seeded := splitEnclitic("amatque", addons)
	if residue != "amat" {
		t.Errorf("residue = %q, want %q", residue, "amat")
	}
	if len(seeded) != 1 || seeded[0].AddonKind != "tackon" {
		t.Errorf("seeded = %+v, want one tackon record", seeded)
	}
}

func TestSplitEncliticEstException(t *testing.T) {
	addons := testAddons()
	residue, seeded := splitEnclitic("est", addons)
	if residue != "est" {
		t.Errorf("residue = %q, want unchanged %q", residue, "est")
	}
	if len(seeded) != 0 {
		t.Errorf("seeded = %+v, want none ('est' must never split itself)", seeded)
	}
}

func TestSplitEncliticPackon(t *testing.T) {
	addons := testAddons()
	residue, seeded := splitEnclitic("quidam", addons)
	if residue != "qui" {
		t.Errorf("residue = %q, want %q", residue, "qui")
	}
	if len(seeded) != 1 || seeded[0].AddonKind != "packon" {
		t.Errorf("seeded = %+v, want one packon record", seeded)
	}
}

func TestSplitEncliticNoMatch(t *testing.T) {
	addons := testAddons()
	residue, seeded := splitEnclitic("xyzzy", addons)
	if residue != "xyzzy" {
		t.Errorf("residue = %q, want unchanged %q", residue, "xyzzy")
	}
	if !reflect.DeepEqual(seeded, ([]Analysis)(nil)) {
		t.Errorf("seeded = %+v, want nil", seeded)
	}
}
