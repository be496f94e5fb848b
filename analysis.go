package verborum

// analysisSource tags which lexicon produced an Analysis, per spec.md §9's
// Design Note ("model as tagged variants with a common Analysis envelope").
type analysisSource int

const (
	sourceDict analysisSource = iota
	sourceUnique
	sourceAddon
)

// StemMatch pairs a matched stem with the inflections joined to it.
// Mirrors spec.md §3's StemMatch.
type StemMatch struct {
	Stem   Stem
	Infls  []Infl
}

// Analysis is the pipeline's internal unit: a dictionary entry (or addon,
// or unique) together with the stem matches that produced it. Mirrors
// spec.md §3's Analysis.
//
// Exactly one of Entry/Unique/AddonEntry is populated, selected by Source;
// every variant carries a (possibly empty) Stems list per spec.md §9's
// Open Question about not_packons/packons lacking a stems field in the
// original — here every analysis has one, nil or not.
type Analysis struct {
	Source analysisSource

	Entry      *DictEntry
	Unique     *UniqueEntry
	AddonEntry *Addon
	// AddonKind records which table AddonEntry came from ("prefix",
	// "suffix", "tackon", "packon", "not_packon"). Set by the enclitic
	// splitter and the reducer; the output formatter does not read it.
	AddonKind string

	Stems []StemMatch
}

// Result is the public envelope returned by Parse. Mirrors spec.md §6's
// `{ word, defs }` shape.
type Result struct {
	Word string
	Defs []FormattedAnalysis
}

// Direction selects the analysis direction for Parse. Only LatinToEnglish
// is implemented; spec.md §6 requires EnglishToLatin to return an empty
// Defs list without error.
type Direction int

const (
	LatinToEnglish Direction = iota
	EnglishToLatin
)
