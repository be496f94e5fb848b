package verborum

import "strings"

// Analyzer holds all loaded lexicons and provides the public API. Mirrors
// the teacher's Lemmatizer: built once by New, safe for any number of
// concurrent Parse/ParseLine calls thereafter (spec.md §5).
type Analyzer struct {
	dictByID    map[int]*DictEntry
	stemsByOrth map[string][]Stem
	infls       []Infl // sorted ascending by ending length
	inflsByForm map[string][]Infl
	uniques     map[string][]*UniqueEntry
	addons      AddonTables
}

// New loads all lexicons from dataDir and returns a ready-to-use Analyzer.
func New(dataDir string) (*Analyzer, error) {
	a := &Analyzer{
		dictByID:    make(map[int]*DictEntry),
		stemsByOrth: make(map[string][]Stem),
		inflsByForm: make(map[string][]Infl),
		uniques:     make(map[string][]*UniqueEntry),
	}

	dict, err := loadDictionary(dataDir)
	if err != nil {
		return nil, err
	}
	for _, e := range dict {
		a.dictByID[e.ID] = e
	}

	stems, err := loadStems(dataDir)
	if err != nil {
		return nil, err
	}
	for _, st := range stems {
		a.stemsByOrth[st.Orth] = append(a.stemsByOrth[st.Orth], st)
	}

	infls, err := loadInflections(dataDir)
	if err != nil {
		return nil, err
	}
	a.infls = sortedInflections(infls)
	for _, infl := range a.infls {
		a.inflsByForm[infl.Form] = append(a.inflsByForm[infl.Form], infl)
	}

	uniques, err := loadUniques(dataDir)
	if err != nil {
		return nil, err
	}
	for _, u := range uniques {
		a.uniques[u.Orth] = append(a.uniques[u.Orth], u)
	}

	addons, err := loadAddons(dataDir)
	if err != nil {
		return nil, err
	}
	a.addons = addons

	return a, nil
}

// Parse analyzes a single Latin surface word form. Mirrors spec.md §6's
// parse(word, direction, formatted). EnglishToLatin always returns an
// empty Defs list, without error (the reverse direction is genuinely
// unimplemented). formatted=false skips the output formatter's code
// translation, so it can never return a CodeTranslationError.
func (a *Analyzer) Parse(word string, direction Direction, formatted bool) (Result, error) {
	if direction == EnglishToLatin {
		return Result{Word: word}, nil
	}

	normalized := Normalize(word)
	analyses := a.analyze(normalized)

	defs := make([]FormattedAnalysis, 0, len(analyses))
	for _, an := range analyses {
		fa, err := formatAnalysis(an, formatted)
		if err != nil {
			return Result{}, err
		}
		defs = append(defs, fa)
	}

	return Result{Word: word, Defs: defs}, nil
}

// ParseLine splits line on single spaces after normalization, drops empty
// tokens, and analyzes each with formatted output. Mirrors spec.md §6's
// parse_line.
func (a *Analyzer) ParseLine(line string) ([]Result, error) {
	var results []Result
	for _, tok := range strings.Split(Normalize(line), " ") {
		if tok == "" {
			continue
		}
		r, err := a.Parse(tok, LatinToEnglish, true)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// analyze runs the full cascade (spec.md §2's data flow) for one already-
// normalized surface word and returns the accumulated, unformatted
// analyses: uniques short-circuit direct analysis; otherwise direct
// analysis, and, only if that yields nothing, one reduce pass.
func (a *Analyzer) analyze(s string) []Analysis {
	residue, encliticSeed := splitEnclitic(s, a.addons)

	if uniques, ok := matchUniques(residue, a.uniques); ok {
		return append(encliticSeed, uniques...)
	}

	direct := a.directAnalyses(residue, false)
	if len(direct) > 0 {
		return append(encliticSeed, direct...)
	}

	reduced, ok := a.tryReduce(residue)
	if !ok {
		return encliticSeed
	}
	return append(encliticSeed, reduced...)
}

// directAnalyses runs the inflection matcher, stem matcher and dictionary
// joiner, then (unless reduced) the principal-parts reconstructor.
// Mirrors spec.md §4.4-§4.7.
func (a *Analyzer) directAnalyses(s string, reduced bool) []Analysis {
	candidates := matchInflections(s, a.infls)
	stemMatches := matchStems(s, candidates, a.stemsByOrth)
	analyses := joinStems(stemMatches, a.dictByID)

	if reduced {
		return analyses
	}
	for i := range analyses {
		if analyses[i].Source == sourceDict {
			analyses[i].Entry = reconstructPrincipalParts(analyses[i].Entry, a.inflsByForm)
		}
	}
	return analyses
}

// tryReduce implements spec.md §4.8: invoked only on direct-mode failure.
// Peels one prefix and/or one suffix, re-runs the cascade in reduced mode,
// and discards the addon records if the second pass still finds nothing.
func (a *Analyzer) tryReduce(s string) ([]Analysis, bool) {
	residue, addonSeed := reduce(s, a.addons)

	direct := a.directAnalyses(residue, true)
	if len(direct) == 0 {
		return nil, false
	}
	return append(addonSeed, direct...), true
}
