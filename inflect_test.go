package verborum

import "testing"

func TestSortedInflections(t *testing.T) {
	in := []Infl{
		{Ending: "is"},
		{Ending: ""},
		{Ending: "o"},
		{Ending: "ibus"},
	}
	out := sortedInflections(in)

	if len(out) != len(in) {
		t.Fatalf("sortedInflections changed length: got %d, want %d", len(out), len(in))
	}
	for i := 1; i < len(out); i++ {
		if len(out[i].Ending) < len(out[i-1].Ending) {
			t.Errorf("not ascending at %d: %q before %q", i, out[i-1].Ending, out[i].Ending)
		}
	}
	// input must not be mutated in place
	if in[0].Ending != "is" {
		t.Errorf("sortedInflections mutated its input: %+v", in)
	}
}

func TestMatchInflectionsLongestSuffixWins(t *testing.T) {
	infls := sortedInflections([]Infl{
		{Ending: "", Form: "base"},
		{Ending: "s", Form: "short"},
		{Ending: "is", Form: "long"},
	})

	got := matchInflections("regis", infls)
	if len(got) != 1 || got[0].Form != "long" {
		t.Errorf("matchInflections(%q) = %+v, want only the %q ending", "regis", got, "is")
	}
}

func TestMatchInflectionsTiesSurvive(t *testing.T) {
	infls := sortedInflections([]Infl{
		{Ending: "o", Form: "first-conj"},
		{Ending: "o", Form: "third-conj"},
		{Ending: "", Form: "base"},
	})

	got := matchInflections("curro", infls)
	if len(got) != 2 {
		t.Fatalf("matchInflections(%q) = %+v, want 2 tied matches", "curro", got)
	}
}

func TestMatchInflectionsNoMatch(t *testing.T) {
	infls := sortedInflections([]Infl{{Ending: "is"}, {Ending: "o"}})
	got := matchInflections("xyzzy", infls)
	if len(got) != 0 {
		t.Errorf("matchInflections(%q) = %+v, want none", "xyzzy", got)
	}
}
