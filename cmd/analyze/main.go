// Command analyze is a line-oriented front end to the analyzer: one word
// per -word invocation, or one line of space-separated words per line of
// stdin when no -word is given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	verborum "github.com/cours-de-latin/verborum"
)

func main() {
	dataDir := flag.String("data", "data", "path to the lexicon data directory")
	word := flag.String("word", "", "analyze a single word and exit")
	formatted := flag.Bool("formatted", true, "translate grammatical codes to English (applies to -word only; stdin lines are always translated)")
	flag.Parse()

	a, err := verborum.New(*dataDir)
	if err != nil {
		log.Fatalf("failed to load lexicon: %v", err)
	}

	if *word != "" {
		printResult(mustParse(a, *word, *formatted))
		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		results, err := a.ParseLine(line)
		if err != nil {
			log.Fatalf("parse line %q: %v", line, err)
		}
		for _, r := range results {
			printResult(r)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("reading stdin: %v", err)
	}
}

func mustParse(a *verborum.Analyzer, word string, formatted bool) verborum.Result {
	result, err := a.Parse(word, verborum.LatinToEnglish, formatted)
	if err != nil {
		log.Fatalf("parse %q: %v", word, err)
	}
	return result
}

func printResult(r verborum.Result) {
	if len(r.Defs) == 0 {
		fmt.Printf("%s\tno analysis\n", r.Word)
		return
	}
	for _, def := range r.Defs {
		fmt.Printf("%s\t%s\t%s\n", r.Word, strings.Join(def.Orth, ", "), strings.Join(def.Senses, "; "))
		for _, infl := range def.Infls {
			fmt.Printf("\t\t%s %s %v\n", infl.Ending, infl.POS, infl.Form)
		}
	}
}
