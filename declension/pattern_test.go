// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternSuffixMatch(t *testing.T) {
	ps := compilePatterns([]patternSpec{{gender: Masculine, suffix: "([bdfmnpstvwxz])"}})
	prefix, captures, ok := ps[0].match("jan")
	require.True(t, ok)
	assert.Equal(t, "ja", prefix)
	require.Len(t, captures, 1)
	assert.Equal(t, "n", captures[0])
}

func TestPatternSuffixNoMatch(t *testing.T) {
	ps := compilePatterns([]patternSpec{{gender: Feminine, suffix: "ová"}})
	_, _, ok := ps[0].match("novák")
	assert.False(t, ok)
}

func TestPatternLiteralMatch(t *testing.T) {
	ps := compilePatterns([]patternSpec{{gender: Indeclinable, literal: "JUDr."}})
	prefix, captures, ok := ps[0].match("judr.")
	require.True(t, ok)
	assert.Equal(t, "", prefix)
	assert.Empty(t, captures)
}

func TestExpandTemplateCaptures(t *testing.T) {
	assert.Equal(t, "tře", expandTemplate("1ře", []string{"t"}, false))
	assert.Equal(t, "em", expandTemplate("em", nil, false))
}

func TestExpandTemplateAnimacy(t *testing.T) {
	assert.Equal(t, "kové", expandTemplate("kové/ky", nil, true))
	assert.Equal(t, "ky", expandTemplate("kové/ky", nil, false))
}

func TestPatternOrderPriority(t *testing.T) {
	// the fleeting -e- row must win over the generic -k row
	inf := NewInflector()
	assert.Equal(t, "Vaškem", inf.Inflect("Vašek", false).Get(Instrumental))
	assert.Equal(t, "Novákem", inf.Inflect("Novák", false).Get(Instrumental))
}
