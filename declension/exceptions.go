// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

import "strings"

// Exception describes an irregular word whose stem cannot be obtained
// by regular suffix stripping (typically the fleeting -e-: pes -> psa,
// Karel -> Karla). The rewritten stem is matched against the pattern
// table in place of the original word; Accusative, when non-empty,
// additionally pins the accusative slot of the result.
type Exception struct {
	Word       string `json:"word"`
	Stem       string `json:"stem"`
	Accusative string `json:"accusative"`
}

var coreExceptions = []Exception{
	{Word: "pes", Stem: "ps", Accusative: "psa"},
	{Word: "lev", Stem: "lv", Accusative: "lva"},
	{Word: "osel", Stem: "osl", Accusative: "osla"},
	{Word: "švec", Stem: "ševc", Accusative: "ševce"},
	{Word: "karel", Stem: "karl", Accusative: "karla"},
	{Word: "pavel", Stem: "pavl", Accusative: "pavla"},
	{Word: "havel", Stem: "havl", Accusative: "havla"},
	{Word: "daněk", Stem: "daňk", Accusative: "daňka"},
}

// buildExceptions creates a lookup table over the core exceptions plus
// any user supplied ones (the latter win on key conflicts). Keys are
// normalized the same way matched words are.
func buildExceptions(extra []Exception) map[string]Exception {
	ans := make(map[string]Exception, len(coreExceptions)+len(extra))
	for _, ex := range coreExceptions {
		ans[breakAccents(strings.ToLower(ex.Word))] = ex.normalized()
	}
	for _, ex := range extra {
		ans[breakAccents(strings.ToLower(ex.Word))] = ex.normalized()
	}
	return ans
}

func (ex Exception) normalized() Exception {
	return Exception{
		Word:       breakAccents(strings.ToLower(ex.Word)),
		Stem:       breakAccents(strings.ToLower(ex.Stem)),
		Accusative: breakAccents(strings.ToLower(ex.Accusative)),
	}
}
