// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakAccents(t *testing.T) {
	assert.Equal(t, "zdeňek", breakAccents("zdeněk"))
	assert.Equal(t, "marťin", breakAccents("martin"))
	assert.Equal(t, "ďivadlo", breakAccents("divadlo"))
	assert.Equal(t, "vokaťivňe", breakAccents("vokativně"))
}

func TestFixAccentsInvertsBreak(t *testing.T) {
	for _, w := range []string{"zdeněk", "martin", "kateřina", "dítě", "novák", "x"} {
		assert.Equal(t, w, fixAccents(breakAccents(w)))
	}
}

func TestBreakAccentsNoTarget(t *testing.T) {
	assert.Equal(t, "novák", breakAccents("novák"))
}
