// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

// Form identifies one of the 14 output slots produced by Inflect.
// The first seven slots cover the singular (with an extra possessive
// slot squeezed between locative and instrumental, as required by
// caption templates), the remaining six the plural. Plural vocative
// is not carried as it always equals plural nominative.
type Form int

const (
	Nominative Form = iota
	Genitive
	Dative
	Accusative
	Vocative
	Locative
	Possessive
	Instrumental
	NominativePlural
	GenitivePlural
	DativePlural
	AccusativePlural
	LocativePlural
	InstrumentalPlural

	// NumForms is the size of the Forms sequence
	NumForms
)

var formKeys = map[Form]string{
	Nominative:         "nominative",
	Genitive:           "genitive",
	Dative:             "dative",
	Accusative:         "accusative",
	Vocative:           "vocative",
	Locative:           "locative",
	Possessive:         "possessive",
	Instrumental:       "instrumental",
	NominativePlural:   "nominativePl",
	GenitivePlural:     "genitivePl",
	DativePlural:       "dativePl",
	AccusativePlural:   "accusativePl",
	LocativePlural:     "locativePl",
	InstrumentalPlural: "instrumentalPl",
}

var formLabels = map[Form]string{
	Nominative:         "1. pád j. č.",
	Genitive:           "2. pád j. č.",
	Dative:             "3. pád j. č.",
	Accusative:         "4. pád j. č.",
	Vocative:           "5. pád j. č.",
	Locative:           "6. pád j. č.",
	Possessive:         "přivlastňovací tvar",
	Instrumental:       "7. pád j. č.",
	NominativePlural:   "1. pád mn. č.",
	GenitivePlural:     "2. pád mn. č.",
	DativePlural:       "3. pád mn. č.",
	AccusativePlural:   "4. pád mn. č.",
	LocativePlural:     "6. pád mn. č.",
	InstrumentalPlural: "7. pád mn. č.",
}

// Key provides a stable machine-friendly identifier of the form
// (used e.g. in JSON API responses).
func (f Form) Key() string {
	return formKeys[f]
}

// String returns a human readable (Czech) label of the form.
func (f Form) String() string {
	return formLabels[f]
}

// AllForms lists the forms in their slot order.
func AllForms() []Form {
	ans := make([]Form, NumForms)
	for i := 0; i < int(NumForms); i++ {
		ans[i] = Form(i)
	}
	return ans
}

// Forms is a complete declension of a word or a phrase. The zero slot
// (Nominative) always carries the original input unmodified.
type Forms [NumForms]string

// Get returns the value of the provided form slot.
func (fs Forms) Get(f Form) string {
	return fs[f]
}

// AsMap exports the declension as a key=>value mapping using Form keys.
func (fs Forms) AsMap() map[string]string {
	ans := make(map[string]string, NumForms)
	for i, v := range fs {
		ans[Form(i).Key()] = v
	}
	return ans
}
