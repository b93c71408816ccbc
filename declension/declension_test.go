// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNominativePassthrough(t *testing.T) {
	ans := Inflect("Novák", false)
	assert.Equal(t, "Novák", ans.Get(Nominative))
}

func TestNominativePassthroughLowercase(t *testing.T) {
	ans := Inflect("novák", false)
	assert.Equal(t, "novák", ans.Get(Nominative))
}

func TestNovakInstrumental(t *testing.T) {
	ans := Inflect("Novák", false)
	assert.Equal(t, "Novákem", ans.Get(Instrumental))
}

func TestNovakSingularCases(t *testing.T) {
	ans := Inflect("Novák", false)
	assert.Equal(t, "Nováka", ans.Get(Genitive))
	assert.Equal(t, "Novákovi", ans.Get(Dative))
	assert.Equal(t, "Nováka", ans.Get(Accusative))
	assert.Equal(t, "Nováku", ans.Get(Vocative))
	assert.Equal(t, "Novákovi", ans.Get(Locative))
	assert.Equal(t, "Novákův", ans.Get(Possessive))
}

func TestExceptionStemPrecedence(t *testing.T) {
	ans := Inflect("pes", false)
	assert.Equal(t, "pes", ans.Get(Nominative))
	assert.Equal(t, "psa", ans.Get(Genitive))
	assert.Equal(t, "psa", ans.Get(Accusative))
	assert.Equal(t, "psem", ans.Get(Instrumental))
}

func TestExceptionKarel(t *testing.T) {
	ans := Inflect("Karel", false)
	assert.Equal(t, "Karla", ans.Get(Genitive))
	assert.Equal(t, "Karle", ans.Get(Vocative))
	assert.Equal(t, "Karlem", ans.Get(Instrumental))
}

func TestCapitalizationPreserved(t *testing.T) {
	upper := Inflect("Novák", false)
	lower := Inflect("novák", false)
	for _, f := range AllForms() {
		assert.Equal(t, strings.ToLower(upper.Get(f)), lower.Get(f))
		assert.True(t, startsUpper(upper.Get(f)), "form %s not capitalized", f.Key())
	}
}

func TestGenderPropagationFromSurname(t *testing.T) {
	ans := Inflect("Jana Nováková", false)
	assert.Equal(t, "Janě Novákové", ans.Get(Dative))
	assert.Equal(t, "Janou Novákovou", ans.Get(Instrumental))
}

func TestGenderPropagationMasculine(t *testing.T) {
	ans := Inflect("Jan Novák", false)
	assert.Equal(t, "Jana Nováka", ans.Get(Genitive))
	assert.Equal(t, "Janem Novákem", ans.Get(Instrumental))
}

func TestMultiWordJoining(t *testing.T) {
	ans := Inflect("Jan Novák", false)
	for _, f := range AllForms() {
		v := ans.Get(f)
		assert.Equal(t, 1, strings.Count(v, " "), "form %s: %s", f.Key(), v)
		assert.False(t, strings.HasPrefix(v, " "))
		assert.False(t, strings.HasSuffix(v, " "))
	}
}

func TestAccentRoundTrip(t *testing.T) {
	ans := Inflect("Martin", false)
	assert.Equal(t, "Martina", ans.Get(Genitive))
	assert.Equal(t, "Martinem", ans.Get(Instrumental))
	for _, f := range AllForms() {
		assert.NotContains(t, ans.Get(f), "ť")
		assert.NotContains(t, ans.Get(f), "ď")
		assert.NotContains(t, ans.Get(f), "ň")
	}
}

func TestAccentRoundTripZdenek(t *testing.T) {
	ans := Inflect("Zdeněk", false)
	assert.Equal(t, "Zdeňka", ans.Get(Genitive))
	assert.Equal(t, "Zdeňkem", ans.Get(Instrumental))
}

func TestAnimateBranching(t *testing.T) {
	animate := Inflect("Novák", true)
	inanimate := Inflect("Novák", false)
	assert.Equal(t, "Novákové", animate.Get(NominativePlural))
	assert.Equal(t, "Nováky", inanimate.Get(NominativePlural))
	// forms without an alternative must not be affected
	assert.Equal(t, inanimate.Get(Instrumental), animate.Get(Instrumental))
	assert.Equal(t, inanimate.Get(GenitivePlural), animate.Get(GenitivePlural))
}

func TestAnimateBranchingAdjective(t *testing.T) {
	animate := Inflect("Novotný", true)
	inanimate := Inflect("Novotný", false)
	assert.Equal(t, "Novotní", animate.Get(NominativePlural))
	assert.Equal(t, "Novotné", inanimate.Get(NominativePlural))
}

func TestUnmatchedWordPassthrough(t *testing.T) {
	ans := Inflect("XY42", false)
	for _, f := range AllForms() {
		assert.Equal(t, "XY42", ans.Get(f))
	}
}

func TestEmptyInput(t *testing.T) {
	ans := Inflect("", false)
	for _, f := range AllForms() {
		assert.Equal(t, "", ans.Get(f))
	}
}

func TestTitlePassthrough(t *testing.T) {
	ans := Inflect("JUDr. Jan Novák", false)
	assert.Equal(t, "JUDr. Janem Novákem", ans.Get(Instrumental))
	assert.Equal(t, "JUDr. Janovi Novákovi", ans.Get(Dative))
	assert.Equal(t, "JUDr. Jan Novák", ans.Get(Nominative))
}

func TestFeminineAdjectivalSurname(t *testing.T) {
	ans := Inflect("Veselá", false)
	assert.Equal(t, "Veselé", ans.Get(Genitive))
	assert.Equal(t, "Veselou", ans.Get(Instrumental))
}

func TestSoftAdjectivalSurname(t *testing.T) {
	ans := Inflect("Jiří", false)
	assert.Equal(t, "Jiřího", ans.Get(Genitive))
	assert.Equal(t, "Jiřím", ans.Get(Instrumental))
}

func TestForcedFeminineIndeclinable(t *testing.T) {
	ans := Inflect("Dagmar", false)
	for _, f := range AllForms() {
		assert.Equal(t, "Dagmar", ans.Get(f))
	}
}

func TestForcedFeminineGovernsPhrase(t *testing.T) {
	// 'Ester' pins the feminine gender so 'Malá' must not be treated
	// as an unknown word
	ans := Inflect("Malá Ester", false)
	assert.Equal(t, "Malou Ester", ans.Get(Instrumental))
}

func TestForcedMasculineSurnameInA(t *testing.T) {
	ans := Inflect("Svoboda", false)
	assert.Equal(t, "Svobodovi", ans.Get(Dative))
	assert.Equal(t, "Svobodou", ans.Get(Instrumental))
}

func TestMariePattern(t *testing.T) {
	ans := Inflect("Marie", false)
	assert.Equal(t, "Marii", ans.Get(Dative))
	assert.Equal(t, "Marií", ans.Get(Instrumental))
}

func TestSoftConsonantSurname(t *testing.T) {
	ans := Inflect("Tomáš", false)
	assert.Equal(t, "Tomáše", ans.Get(Genitive))
	assert.Equal(t, "Tomáši", ans.Get(Vocative))
	assert.Equal(t, "Tomášem", ans.Get(Instrumental))
}

func TestFleetingESurname(t *testing.T) {
	ans := Inflect("Vašek", false)
	assert.Equal(t, "Vaška", ans.Get(Genitive))
	assert.Equal(t, "Vaškem", ans.Get(Instrumental))
}

func TestVocativeRPalatalization(t *testing.T) {
	ans := Inflect("Petr", false)
	assert.Equal(t, "Petře", ans.Get(Vocative))
	assert.Equal(t, "Viktore", Inflect("Viktor", false).Get(Vocative))
}

func TestCustomException(t *testing.T) {
	inf := NewInflector(WithExceptions([]Exception{
		{Word: "mráz", Stem: "mraz", Accusative: "mraza"},
	}))
	ans := inf.Inflect("Mráz", false)
	assert.Equal(t, "Mrazem", ans.Get(Instrumental))
	assert.Equal(t, "Mraza", ans.Get(Accusative))
	assert.Equal(t, "Mráz", ans.Get(Nominative))
}

func TestConcurrentUse(t *testing.T) {
	done := make(chan Forms)
	for i := 0; i < 8; i++ {
		go func() {
			done <- Inflect("Jan Novák", false)
		}()
	}
	for i := 0; i < 8; i++ {
		ans := <-done
		assert.Equal(t, "Janem Novákem", ans.Get(Instrumental))
	}
}
