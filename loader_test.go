package verborum

import "testing"

func TestLoadDictionary(t *testing.T) {
	entries, err := loadDictionary(testDataDir)
	if err != nil {
		t.Fatalf("loadDictionary: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("loadDictionary returned %d entries, want 3", len(entries))
	}

	rex := entries[0]
	if rex.Orth != "rex" || rex.POS != POSNoun || rex.N != (ParadigmNumber{3, 1}) {
		t.Errorf("rex entry = %+v", rex)
	}
	if rex.Parts[1] != "reg" || rex.Parts[2] != "-" || rex.Parts[3] != "-" {
		t.Errorf("rex.Parts = %v, want [rex reg - -]", rex.Parts)
	}
	if len(rex.Senses) != 1 || rex.Senses[0] != "king" {
		t.Errorf("rex.Senses = %v, want [king]", rex.Senses)
	}
	if rex.ID != 1 {
		t.Errorf("rex.ID = %d, want 1", rex.ID)
	}
}

func TestLoadStems(t *testing.T) {
	stems, err := loadStems(testDataDir)
	if err != nil {
		t.Fatalf("loadStems: %v", err)
	}
	if len(stems) != 4 {
		t.Fatalf("loadStems returned %d stems, want 4", len(stems))
	}
	if stems[0].Orth != "reg" || stems[0].Wid != 1 {
		t.Errorf("stems[0] = %+v, want Orth=reg Wid=1", stems[0])
	}
}

func TestLoadInflectionsMultiSection(t *testing.T) {
	infls, err := loadInflections(testDataDir)
	if err != nil {
		t.Fatalf("loadInflections: %v", err)
	}
	if len(infls) != 5 {
		t.Fatalf("loadInflections returned %d entries, want 5", len(infls))
	}

	var sawNominal, sawVerbal bool
	for _, infl := range infls {
		switch infl.POS {
		case POSNoun:
			sawNominal = true
		case POSVerb:
			sawVerbal = true
		}
	}
	if !sawNominal || !sawVerbal {
		t.Errorf("expected both section layouts to parse: nominal=%v verbal=%v", sawNominal, sawVerbal)
	}

	for _, infl := range infls {
		if infl.Ending == "is" && infl.Form != "GEN S" {
			t.Errorf("nominal section mis-sliced: %+v", infl)
		}
		if infl.Ending == "t" && infl.Form != "PRES ACTIVE IND 3 S" {
			t.Errorf("verbal section mis-sliced: %+v", infl)
		}
	}
}

func TestLoadUniques(t *testing.T) {
	uniques, err := loadUniques(testDataDir)
	if err != nil {
		t.Fatalf("loadUniques: %v", err)
	}
	if len(uniques) != 2 {
		t.Fatalf("loadUniques returned %d entries, want 2", len(uniques))
	}
	if uniques[0].Orth != "qui" || uniques[1].Orth != "est" {
		t.Errorf("uniques = %+v", uniques)
	}
}

func TestLoadAddons(t *testing.T) {
	tables, err := loadAddons(testDataDir)
	if err != nil {
		t.Fatalf("loadAddons: %v", err)
	}
	if len(tables.Prefixes) != 1 || tables.Prefixes[0].Orth != "in" {
		t.Errorf("Prefixes = %+v", tables.Prefixes)
	}
	if len(tables.Tackons) != 2 {
		t.Errorf("Tackons = %+v, want 2", tables.Tackons)
	}
	if len(tables.Packons) != 1 || tables.Packons[0].Orth != "dam" {
		t.Errorf("Packons = %+v", tables.Packons)
	}
	if len(tables.Tickons) != 1 {
		t.Errorf("Tickons = %+v, want 1 (loaded but never consulted)", tables.Tickons)
	}
}

func TestParseColRange(t *testing.T) {
	r, err := parseColRange("4-20")
	if err != nil {
		t.Fatalf("parseColRange: %v", err)
	}
	if r != ([2]int{4, 20}) {
		t.Errorf("parseColRange(4-20) = %v, want [4 20]", r)
	}

	if _, err := parseColRange("bad"); err == nil {
		t.Error("parseColRange(\"bad\") returned no error")
	}
}
