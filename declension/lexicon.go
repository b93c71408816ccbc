// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

import "strings"

// Gender is a grammatical gender constraint attached to declension
// patterns and propagated across the words of a multi-word name.
type Gender int

const (
	Unknown Gender = iota
	Masculine
	Feminine
	Neuter

	// Indeclinable marks patterns applicable regardless of any
	// established gender. Matching such pattern leaves all the forms
	// equal to the original word and does not pin a gender.
	Indeclinable
)

func (g Gender) String() string {
	switch g {
	case Masculine:
		return "masculine"
	case Feminine:
		return "feminine"
	case Neuter:
		return "neuter"
	case Indeclinable:
		return "indeclinable"
	}
	return "unknown"
}

// The lexicons below pin grammatical gender of words whose surface form
// would match a pattern of a wrong gender. Typical cases are masculine
// names and surnames ending in -a (which would otherwise decline as
// feminines - the word to the left of them in a full name relies on the
// pinned value), feminine first names ending in a consonant (these do
// not decline at all in Czech) and a few neuters.

var forceMasculine = []string{
	"ilja",
	"nikita",
	"honza",
	"jirka",
	"ota",
	"jura",
	"svoboda",
	"procházka",
	"růžička",
	"smetana",
	"kučera",
	"fiala",
	"janda",
	"vávra",
	"skočdopole",
}

var forceFeminine = []string{
	"dagmar",
	"miriam",
	"ester",
	"ingrid",
	"nikol",
	"karin",
	"rút",
	"ruth",
	"dolores",
	"carmen",
	"paní",
}

var forceNeuter = []string{
	"slunce",
	"město",
	"dítě",
}

// buildLexicon merges the three force-lists into a single lookup table.
// The masculine list has the highest priority, the neuter one the
// lowest, mirroring the order in which the lists are consulted.
func buildLexicon() map[string]Gender {
	ans := make(map[string]Gender)
	add := func(words []string, g Gender) {
		for _, w := range words {
			key := breakAccents(strings.ToLower(w))
			if _, ok := ans[key]; !ok {
				ans[key] = g
			}
		}
	}
	add(forceMasculine, Masculine)
	add(forceFeminine, Feminine)
	add(forceNeuter, Neuter)
	return ans
}
