package verborum

import (
	"strconv"
	"strings"
)

// posEnglish maps the part-of-speech codes spec.md §4.9 names to full
// English terms. PACK and X have no corresponding English term and pass
// through as their raw tag; this is deliberate (they are legitimate POS
// values, not corrupt codes) and is not a CodeTranslationError case.
var posEnglish = map[PartOfSpeech]string{
	POSNoun:         "noun",
	POSVerb:         "verb",
	POSVerbPart:     "participle",
	POSAdjective:    "adjective",
	POSPronoun:      "pronoun",
	POSNumeral:      "numeral",
	POSAdverb:       "adverb",
	POSConjunction:  "conjunction",
	POSInterjection: "interjection",
	POSPreposition:  "preposition",
}

func posName(p PartOfSpeech) string {
	if name, ok := posEnglish[p]; ok {
		return name
	}
	return string(p)
}

var caseEnglish = map[string]string{
	"NOM": "nominative",
	"GEN": "genitive",
	"DAT": "dative",
	"ACC": "accusative",
	"ABL": "ablative",
	"VOC": "vocative",
	"LOC": "locative",
}

var numberEnglish = map[string]string{
	"S": "singular",
	"P": "plural",
}

var genderEnglish = map[string]string{
	"M": "masculine",
	"F": "feminine",
	"N": "neuter",
	"C": "common",
}

var tenseEnglish = map[string]string{
	"PRES": "present",
	"IMPF": "imperfect",
	"FUT":  "future",
	"PERF": "perfect",
	"PLUP": "pluperfect",
	"FUTP": "future perfect",
}

var voiceEnglish = map[string]string{
	"ACTIVE":  "active",
	"PASSIVE": "passive",
}

var moodEnglish = map[string]string{
	"IND": "indicative",
	"SUB": "subjunctive",
	"IMP": "imperative",
	"INF": "infinitive",
}

func lookup(table map[string]string, field, code string) (string, error) {
	v, ok := table[code]
	if !ok {
		return "", newCodeTranslationError(field, code)
	}
	return v, nil
}

// NominalForm is the typed breakdown of an N/PRON/ADJ/NUM form string.
// Mirrors spec.md §4.9's "three-token form: {declension, number, gender}".
// Despite the field's name (inherited from the legacy layout spec.md
// names it after), it carries the translated case code, not a declension
// number.
type NominalForm struct {
	Declension string
	Number     string
	Gender     string
}

// VerbForm is the typed breakdown of a V form string, a 22-character
// fixed-width record: tense (cols 0-6), voice (6-14), mood (14-19),
// person (int, 19-21), number (21-).
type VerbForm struct {
	Tense  string
	Voice  string
	Mood   string
	Person int
	Number string
}

// ParticipleForm is the typed breakdown of a VPAR form string, a
// 24-character fixed-width record: declension (cols 0-4), number (4-6),
// gender (6-8), tense (8-14), voice (14-).
type ParticipleForm struct {
	Declension string
	Number     string
	Gender     string
	Tense      string
	Voice      string
}

const (
	verbFormWidth       = 22
	participleFormWidth = 24
)

// RawForm is the fallback shape for POS classes spec.md §4.9 doesn't
// break down, and for any form string whose length doesn't match its
// POS class's expected fixed-width layout.
type RawForm struct {
	Form string
}

// FormattedInfl is one (ending, pos, form) triple in a FormattedAnalysis,
// with form translated into its typed breakdown. Mirrors spec.md §4.9.
type FormattedInfl struct {
	Ending string
	POS    string
	// Form is exactly one of NominalForm, VerbForm, ParticipleForm or
	// RawForm, selected by the source Infl's POS.
	Form any
}

// FormattedAnalysis is one output record: the dictionary orth/senses plus
// the de-duplicated, translated list of inflections that produced it (or
// a single synthetic entry holding the raw form code, if none). Mirrors
// spec.md §4.9.
type FormattedAnalysis struct {
	Orth   []string
	Senses []string
	Infls  []FormattedInfl
}

// formatAnalysis translates one internal Analysis into its output shape.
// When formatted is false, pos/form codes are passed through raw (spec.md
// §6's formatted=false mode) and translateForm/posName are never called,
// so a CodeTranslationError cannot occur.
func formatAnalysis(a Analysis, formatted bool) (FormattedAnalysis, error) {
	switch a.Source {
	case sourceUnique:
		return formatEntryLike(a.Unique.Orth, a.Unique.Parts, a.Unique.Senses, a.Unique.POS, a.Unique.Form, nil, formatted)
	case sourceAddon:
		return formatEntryLike(a.AddonEntry.Orth, nil, a.AddonEntry.Senses, a.AddonEntry.POS, "", nil, formatted)
	default:
		return formatDictAnalysis(a, formatted)
	}
}

func formatDictAnalysis(a Analysis, formatted bool) (FormattedAnalysis, error) {
	entry := a.Entry
	var infls []Infl
	for _, sm := range a.Stems {
		infls = append(infls, sm.Infls...)
	}
	return formatEntryLike(entry.Orth, entry.Parts, entry.Senses, entry.POS, entry.Form, infls, formatted)
}

func formatEntryLike(orth string, parts, senses []string, pos PartOfSpeech, rawForm string, infls []Infl, formatted bool) (FormattedAnalysis, error) {
	out := FormattedAnalysis{Senses: senses}

	if len(parts) > 0 {
		out.Orth = parts
	} else {
		out.Orth = []string{orth}
	}

	seen := make(map[string]bool)
	for _, infl := range infls {
		key := infl.Ending + "\x00" + string(infl.POS) + "\x00" + infl.Form
		if seen[key] {
			continue
		}
		seen[key] = true

		fi, err := formatInfl(infl, formatted)
		if err != nil {
			return FormattedAnalysis{}, err
		}
		out.Infls = append(out.Infls, fi)
	}

	if len(out.Infls) == 0 {
		form, posStr, err := formatPOSForm(pos, rawForm, formatted)
		if err != nil {
			return FormattedAnalysis{}, err
		}
		out.Infls = []FormattedInfl{{POS: posStr, Form: form}}
	}

	return out, nil
}

func formatInfl(infl Infl, formatted bool) (FormattedInfl, error) {
	form, posStr, err := formatPOSForm(infl.POS, infl.Form, formatted)
	if err != nil {
		return FormattedInfl{}, err
	}
	return FormattedInfl{Ending: infl.Ending, POS: posStr, Form: form}, nil
}

func formatPOSForm(pos PartOfSpeech, rawForm string, formatted bool) (any, string, error) {
	if !formatted {
		return RawForm{Form: rawForm}, string(pos), nil
	}
	form, err := translateForm(pos, rawForm)
	if err != nil {
		return nil, "", err
	}
	return form, posName(pos), nil
}

// translateForm parses raw per spec.md §4.9's POS-class breakdown rules,
// falling back to RawForm when the layout doesn't fit (length mismatch or
// unhandled POS class).
func translateForm(pos PartOfSpeech, raw string) (any, error) {
	switch pos {
	case POSNoun, POSPronoun, POSAdjective, POSNumeral:
		tokens := strings.Fields(raw)
		if len(tokens) != 3 {
			return RawForm{Form: raw}, nil
		}
		decl, err := lookup(caseEnglish, "declension", tokens[0])
		if err != nil {
			return nil, err
		}
		num, err := lookup(numberEnglish, "number", tokens[1])
		if err != nil {
			return nil, err
		}
		gen, err := lookup(genderEnglish, "gender", tokens[2])
		if err != nil {
			return nil, err
		}
		return NominalForm{Declension: decl, Number: num, Gender: gen}, nil

	case POSVerb:
		if len(raw) != verbFormWidth {
			return RawForm{Form: raw}, nil
		}
		return parseVerbForm(raw)

	case POSVerbPart:
		if len(raw) != participleFormWidth {
			return RawForm{Form: raw}, nil
		}
		return parseParticipleForm(raw)

	default:
		return RawForm{Form: raw}, nil
	}
}

func parseVerbForm(raw string) (VerbForm, error) {
	tense, err := lookup(tenseEnglish, "tense", strings.TrimSpace(raw[0:6]))
	if err != nil {
		return VerbForm{}, err
	}
	voice, err := lookup(voiceEnglish, "voice", strings.TrimSpace(raw[6:14]))
	if err != nil {
		return VerbForm{}, err
	}
	mood, err := lookup(moodEnglish, "mood", strings.TrimSpace(raw[14:19]))
	if err != nil {
		return VerbForm{}, err
	}
	personStr := strings.TrimSpace(raw[19:21])
	person, _ := strconv.Atoi(personStr)
	number, err := lookup(numberEnglish, "number", strings.TrimSpace(raw[21:]))
	if err != nil {
		return VerbForm{}, err
	}
	return VerbForm{Tense: tense, Voice: voice, Mood: mood, Person: person, Number: number}, nil
}

func parseParticipleForm(raw string) (ParticipleForm, error) {
	decl, err := lookup(caseEnglish, "declension", strings.TrimSpace(raw[0:4]))
	if err != nil {
		return ParticipleForm{}, err
	}
	num, err := lookup(numberEnglish, "number", strings.TrimSpace(raw[4:6]))
	if err != nil {
		return ParticipleForm{}, err
	}
	gen, err := lookup(genderEnglish, "gender", strings.TrimSpace(raw[6:8]))
	if err != nil {
		return ParticipleForm{}, err
	}
	tense, err := lookup(tenseEnglish, "tense", strings.TrimSpace(raw[8:14]))
	if err != nil {
		return ParticipleForm{}, err
	}
	voice, err := lookup(voiceEnglish, "voice", strings.TrimSpace(raw[14:]))
	if err != nil {
		return ParticipleForm{}, err
	}
	return ParticipleForm{Declension: decl, Number: num, Gender: gen, Tense: tense, Voice: voice}, nil
}
