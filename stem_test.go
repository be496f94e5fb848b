package verborum

import "testing"

func TestMatchStemsAgreement(t *testing.T) {
	stemsByOrth := map[string][]Stem{
		"reg": {{Orth: "reg", POS: POSNoun, N: ParadigmNumber{3, 1}, Wid: 1}},
	}
	candidates := []Infl{
		{Ending: "is", POS: POSNoun, Form: "GEN S", N: ParadigmNumber{3, 1}},
	}

	got := matchStems("regis", candidates, stemsByOrth)
	if len(got) != 1 {
		t.Fatalf("matchStems = %+v, want 1 match", got)
	}
	if got[0].Stem.Wid != 1 || len(got[0].Infls) != 1 {
		t.Errorf("unexpected match: %+v", got[0])
	}
}

func TestMatchStemsParadigmMismatch(t *testing.T) {
	stemsByOrth := map[string][]Stem{
		"reg": {{Orth: "reg", POS: POSNoun, N: ParadigmNumber{1, 1}, Wid: 1}},
	}
	candidates := []Infl{
		{Ending: "is", POS: POSNoun, Form: "GEN S", N: ParadigmNumber{3, 1}},
	}

	got := matchStems("regis", candidates, stemsByOrth)
	if len(got) != 0 {
		t.Errorf("matchStems = %+v, want no match (declension mismatch)", got)
	}
}

func TestMatchStemsEmptyEndingWildcard(t *testing.T) {
	stemsByOrth := map[string][]Stem{
		"foo": {{Orth: "foo", POS: POSNoun, N: ParadigmNumber{3, 1}, Wid: 5}},
	}
	candidates := []Infl{
		{Ending: "", POS: POSNoun, Form: "NOM S", N: ParadigmNumber{0, 0}},
	}

	got := matchStems("foo", candidates, stemsByOrth)
	if len(got) != 1 || got[0].Stem.Wid != 5 {
		t.Errorf("matchStems = %+v, want the wildcard base-form match", got)
	}
}

func TestMatchStemsDedupesSharedStem(t *testing.T) {
	stemsByOrth := map[string][]Stem{
		"am": {{Orth: "am", POS: POSVerb, N: ParadigmNumber{1, 1}, Wid: 2}},
	}
	candidates := []Infl{
		{Ending: "o", POS: POSVerb, Form: "PRES ACTIVE IND 1 S", N: ParadigmNumber{1, 1}},
		{Ending: "o", POS: POSVerb, Form: "PRES ACTIVE IND 1 S", N: ParadigmNumber{1, 1}},
	}

	got := matchStems("amo", candidates, stemsByOrth)
	if len(got) != 1 {
		t.Fatalf("matchStems = %+v, want one StemMatch (same stem, same form)", got)
	}
	if len(got[0].Infls) != 1 {
		t.Errorf("Infls = %+v, want the duplicate (ending, pos, form) collapsed to one", got[0].Infls)
	}
}
