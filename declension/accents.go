// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

import "strings"

// Czech orthography writes the palatalized d/t/n using the following
// vowel instead of a haček (di, ti, ni, dě, tě, ně). For suffix matching
// this is a problem as e.g. 'zdeněk' and 'vašek' belong to the same
// paradigm but their endings look different. We therefore temporarily
// rewrite the digraphs so the palatalization sits on the consonant
// ('zdeňek') and undo the rewrite once a suffix is attached.

var accentBreaker = strings.NewReplacer(
	"dě", "ďe",
	"tě", "ťe",
	"ně", "ňe",
	"di", "ďi",
	"ti", "ťi",
	"ni", "ňi",
)

var accentFixer = strings.NewReplacer(
	"ďe", "dě",
	"ťe", "tě",
	"ňe", "ně",
	"ďi", "di",
	"ťi", "ti",
	"ňi", "ni",
)

// breakAccents moves palatalization marks from vowels to the preceding
// d/t/n consonant. It must be inverted by fixAccents before any value
// leaves the engine.
func breakAccents(s string) string {
	return accentBreaker.Replace(s)
}

// fixAccents restores standard Czech orthography after suffix handling.
func fixAccents(s string) string {
	return accentFixer.Replace(s)
}
