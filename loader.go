package verborum

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Loading and parsing the raw lexicon files is explicitly out of scope
// (spec.md §1): the record layouts below are only as faithful as §6
// describes them. Column offsets for the dictionary and stem files match
// open_words/format_data.py's import_dicts/import_stems exactly. The
// inflections file's offsets genuinely depend on line number in the
// legacy data (declension/conjugation sections each have their own
// column layout); rather than reproduce the legacy file's hundreds of
// line ranges, this loader reads an explicit "#section" header line
// naming the columns for the records that follow, which is the same
// "build a section table up front" architecture spec.md §6 calls for,
// expressed as data instead of a hardcoded line-range table.

// loadDictionary reads dict.txt: columns 0:19 orth; 19:38, 38:57, 57:76
// additional principal parts; 76:83 pos; 83:100 form (first two
// space-separated tokens at 83:87 are the n vector); 109:end
// semicolon-separated senses. "zzz" decodes to "-". id is the 1-based
// line number.
func loadDictionary(dataDir string) ([]*DictEntry, error) {
	const file = "dict.txt"
	lines, err := readLines(filepath.Join(dataDir, file))
	if err != nil {
		return nil, err
	}

	var out []*DictEntry
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = padTo(line, 109)

		orth := decodeZzz(sliceCols(line, 0, 19))
		parts := []string{orth}
		for _, rng := range [][2]int{{19, 38}, {38, 57}, {57, 76}} {
			p := decodeZzz(sliceCols(line, rng[0], rng[1]))
			parts = append(parts, p)
		}

		pos := PartOfSpeech(strings.TrimSpace(sliceCols(line, 76, 83)))
		form := sliceCols(line, 83, 100)
		n := parseN(sliceCols(line, 83, 87))

		var senses []string
		for _, s := range strings.Split(sliceColsToEnd(line, 109), ";") {
			s = strings.TrimSpace(s)
			if s != "" {
				senses = append(senses, s)
			}
		}

		if orth == "" || pos == "" {
			return nil, newLexiconLoadError(file, i+1, "empty orth or pos")
		}

		out = append(out, &DictEntry{
			ID:     i + 1,
			Orth:   orth,
			Parts:  parts,
			POS:    pos,
			Form:   form,
			N:      n,
			Senses: senses,
		})
	}
	return out, nil
}

// loadStems reads stems.txt: 0:19 orth, 19:26 pos, 26:45 form (first two
// tokens → n), 50:end wid.
func loadStems(dataDir string) ([]Stem, error) {
	const file = "stems.txt"
	lines, err := readLines(filepath.Join(dataDir, file))
	if err != nil {
		return nil, err
	}

	var out []Stem
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = padTo(line, 50)

		orth := strings.TrimSpace(sliceCols(line, 0, 19))
		pos := PartOfSpeech(strings.TrimSpace(sliceCols(line, 19, 26)))
		form := sliceCols(line, 26, 45)
		n := parseN(sliceCols(line, 26, 34))
		widStr := strings.TrimSpace(sliceColsToEnd(line, 50))

		wid, err := strconv.Atoi(widStr)
		if err != nil {
			return nil, newLexiconLoadError(file, i+1, "bad wid: "+widStr)
		}

		out = append(out, Stem{Orth: orth, POS: pos, Form: form, N: n, Wid: wid})
	}
	return out, nil
}

// loadInflections reads inflections.txt's "#section" blocks. A section
// header is: "#section pos=<col0-col1> form=<col0-col1> ending=<col0-col1>
// n=<col0-col1> note=<text>"; every non-blank, non-header line until the
// next header is a data record using that section's columns.
func loadInflections(dataDir string) ([]Infl, error) {
	const file = "inflections.txt"
	lines, err := readLines(filepath.Join(dataDir, file))
	if err != nil {
		return nil, err
	}

	var out []Infl
	var sec inflSection
	haveSec := false

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "#section") {
			s, err := parseInflSection(line)
			if err != nil {
				return nil, newLexiconLoadError(file, i+1, err.Error())
			}
			sec = s
			haveSec = true
			continue
		}
		if !haveSec {
			return nil, newLexiconLoadError(file, i+1, "data line before any #section header")
		}

		pos := PartOfSpeech(strings.TrimSpace(sliceCols(line, sec.posCol[0], sec.posCol[1])))
		form := strings.TrimSpace(sliceCols(line, sec.formCol[0], sec.formCol[1]))
		ending := strings.TrimSpace(sliceCols(line, sec.endingCol[0], sec.endingCol[1]))
		n := parseN(sliceCols(line, sec.nCol[0], sec.nCol[1]))

		out = append(out, Infl{Ending: ending, POS: pos, Form: form, N: n, Note: sec.note})
	}
	return out, nil
}

type inflSection struct {
	posCol, formCol, endingCol, nCol [2]int
	note                             string
}

// parseInflSection parses one "#section key=lo-hi ... note=text" header.
func parseInflSection(line string) (inflSection, error) {
	var sec inflSection
	fields := strings.Fields(strings.TrimPrefix(line, "#section"))
	for _, f := range fields {
		kv := strings.SplitN(f, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key, val := kv[0], kv[1]
		if key == "note" {
			sec.note = val
			continue
		}
		rng, err := parseColRange(val)
		if err != nil {
			return sec, err
		}
		switch key {
		case "pos":
			sec.posCol = rng
		case "form":
			sec.formCol = rng
		case "ending":
			sec.endingCol = rng
		case "n":
			sec.nCol = rng
		}
	}
	return sec, nil
}

func parseColRange(s string) ([2]int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return [2]int{}, errLoad("bad column range " + s)
	}
	lo, err1 := strconv.Atoi(parts[0])
	hi, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return [2]int{}, errLoad("bad column range " + s)
	}
	return [2]int{lo, hi}, nil
}

type errLoad string

func (e errLoad) Error() string { return string(e) }

// loadUniques reads uniques.txt: three-line records (orth / pos+form /
// senses), matching open_words/format_data.py's import_uniques.
func loadUniques(dataDir string) ([]*UniqueEntry, error) {
	const file = "uniques.txt"
	lines, err := readLines(filepath.Join(dataDir, file))
	if err != nil {
		return nil, err
	}

	var out []*UniqueEntry
	records, err := chunkRecords(file, lines, 3)
	if err != nil {
		return nil, err
	}
	for id, rec := range records {
		orth := strings.TrimSpace(rec[0])
		posForm := rec[1]
		pos := PartOfSpeech(strings.TrimSpace(firstField(posForm)))
		form := strings.TrimSpace(posForm)
		senses := splitSenses(rec[2])

		out = append(out, &UniqueEntry{
			ID:     id + 1,
			Orth:   orth,
			Parts:  []string{orth},
			POS:    pos,
			Form:   form,
			Senses: senses,
		})
	}
	return out, nil
}

// loadAddons reads addons.txt: six named tables, each entry a three-line
// record (orth[ connect] / pos+form / senses) under a "#prefixes" /
// "#suffixes" / "#tackons" / "#not_packons" / "#packons" / "#tickons"
// header, matching open_words/format_data.py's import_prefixes/
// import_suffixes shape generalized to all six addon tables.
func loadAddons(dataDir string) (AddonTables, error) {
	const file = "addons.txt"
	lines, err := readLines(filepath.Join(dataDir, file))
	if err != nil {
		return AddonTables{}, err
	}

	var tables AddonTables
	var current *[]Addon
	var buf []string

	flush := func() error {
		if current == nil || len(buf) == 0 {
			buf = nil
			return nil
		}
		recs, err := chunkRecords(file, buf, 3)
		if err != nil {
			return err
		}
		for _, rec := range recs {
			orthLine := strings.TrimRight(rec[0], "\r")
			orth := orthLine
			var connect byte
			if idx := strings.IndexByte(orthLine, ' '); idx >= 0 {
				orth = orthLine[:idx]
				rest := strings.TrimSpace(orthLine[idx+1:])
				if len(rest) == 1 {
					connect = rest[0]
				}
			}
			pos := PartOfSpeech(strings.TrimSpace(firstField(rec[1])))
			senses := splitSenses(rec[2])
			*current = append(*current, Addon{Orth: orth, POS: pos, Senses: senses, Connect: connect})
		}
		buf = nil
		return nil
	}

	for _, line := range lines {
		switch strings.TrimSpace(line) {
		case "#prefixes":
			if err := flush(); err != nil {
				return AddonTables{}, err
			}
			current = &tables.Prefixes
			continue
		case "#suffixes":
			if err := flush(); err != nil {
				return AddonTables{}, err
			}
			current = &tables.Suffixes
			continue
		case "#tackons":
			if err := flush(); err != nil {
				return AddonTables{}, err
			}
			current = &tables.Tackons
			continue
		case "#not_packons":
			if err := flush(); err != nil {
				return AddonTables{}, err
			}
			current = &tables.NotPackons
			continue
		case "#packons":
			if err := flush(); err != nil {
				return AddonTables{}, err
			}
			current = &tables.Packons
			continue
		case "#tickons":
			if err := flush(); err != nil {
				return AddonTables{}, err
			}
			current = &tables.Tickons
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		buf = append(buf, line)
	}
	if err := flush(); err != nil {
		return AddonTables{}, err
	}

	return tables, nil
}

// --- shared helpers -------------------------------------------------

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

func sliceCols(line string, lo, hi int) string {
	runes := []rune(line)
	if lo > len(runes) {
		lo = len(runes)
	}
	if hi > len(runes) {
		hi = len(runes)
	}
	if hi < lo {
		hi = lo
	}
	return string(runes[lo:hi])
}

func sliceColsToEnd(line string, lo int) string {
	runes := []rune(line)
	if lo > len(runes) {
		lo = len(runes)
	}
	return string(runes[lo:])
}

func padTo(line string, n int) string {
	if len([]rune(line)) >= n {
		return line
	}
	return line + strings.Repeat(" ", n-len([]rune(line)))
}

func decodeZzz(s string) string {
	s = strings.TrimSpace(s)
	if s == "zzz" {
		return "-"
	}
	return s
}

// parseN parses up to the first two whitespace-separated integer tokens
// in s into a ParadigmNumber; non-numeric or missing tokens default to 0.
func parseN(s string) ParadigmNumber {
	var n ParadigmNumber
	fields := strings.Fields(s)
	for i := 0; i < len(n) && i < len(fields); i++ {
		if v, err := strconv.Atoi(fields[i]); err == nil {
			n[i] = v
		}
	}
	return n
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func splitSenses(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// chunkRecords groups lines into fixed-size records, erroring if the
// total isn't a multiple of size.
func chunkRecords(file string, lines []string, size int) ([][]string, error) {
	if len(lines)%size != 0 {
		return nil, newLexiconLoadError(file, len(lines), "record count not a multiple of "+strconv.Itoa(size))
	}
	var out [][]string
	for i := 0; i < len(lines); i += size {
		out = append(out, lines[i:i+size])
	}
	return out, nil
}
