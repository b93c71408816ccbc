// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

// The declension table. Order is significant - rows are tried top to
// bottom and the first one whose gender does not conflict with the
// already established gender of the name and whose suffix (or literal)
// matches the word wins. More specific rows therefore must precede the
// general single-consonant rows near the end of the table.
//
// Form templates are listed in the slot order genitive, dative,
// accusative, vocative, locative, possessive, instrumental, plural
// nominative, genitive, dative, accusative, locative, instrumental.
// Where Czech has no possessive adjective, the possessive slot carries
// the genitive value.
var corePatterns = []patternSpec{

	// academic titles appearing in front of names in legal captions
	{gender: Indeclinable, literal: "judr."},
	{gender: Indeclinable, literal: "mudr."},
	{gender: Indeclinable, literal: "mgr."},
	{gender: Indeclinable, literal: "ing."},
	{gender: Indeclinable, literal: "bc."},
	{gender: Indeclinable, literal: "dr."},
	{gender: Indeclinable, literal: "doc."},
	{gender: Indeclinable, literal: "prof."},
	{gender: Indeclinable, literal: "ph.d."},
	{gender: Indeclinable, literal: "csc."},
	{gender: Indeclinable, literal: "dis."},

	// feminine surnames of the Nováková type
	{gender: Feminine, suffix: "ová", forms: [NumForms - 1]string{
		"ové", "ové", "ovou", "ová", "ové", "ové", "ovou",
		"ové", "ových", "ovým", "ové", "ových", "ovými"}},

	// adjectival feminine surnames (Malá, Veselá)
	{gender: Feminine, suffix: "á", forms: [NumForms - 1]string{
		"é", "é", "ou", "á", "é", "é", "ou",
		"é", "ých", "ým", "é", "ých", "ými"}},

	// adjectival masculine surnames (Novotný, Černý)
	{gender: Masculine, suffix: "ý", forms: [NumForms - 1]string{
		"ého", "ému", "ého", "ý", "ém", "ého", "ým",
		"í/é", "ých", "ým", "é", "ých", "ými"}},

	// soft adjectival masculine surnames and names (Krejčí, Jiří)
	{gender: Masculine, suffix: "í", forms: [NumForms - 1]string{
		"ího", "ímu", "ího", "í", "ím", "ího", "ím",
		"í", "ích", "ím", "í", "ích", "ími"}},

	// invariant feminines (paní; reached via pinned gender)
	{gender: Feminine, suffix: "í", forms: [NumForms - 1]string{
		"í", "í", "í", "í", "í", "í", "í",
		"í", "ích", "ím", "í", "ích", "ími"}},

	// neuter -í (stavení type)
	{gender: Neuter, suffix: "í", forms: [NumForms - 1]string{
		"í", "í", "í", "í", "í", "í", "ím",
		"í", "í", "ím", "í", "ích", "ími"}},

	// feminine -a after a vowel (Andrea, Lea)
	{gender: Feminine, suffix: "([aeiou])a", forms: [NumForms - 1]string{
		"1y", "1e", "1u", "1o", "1e", "1y", "1ou",
		"1y", "1", "1ám", "1y", "1ách", "1ami"}},

	// feminine -ka (Jitka, Eliška; fleeting -e- in plural genitive)
	{gender: Feminine, suffix: "ka", forms: [NumForms - 1]string{
		"ky", "ce", "ku", "ko", "ce", "ky", "kou",
		"ky", "ek", "kám", "ky", "kách", "kami"}},

	// feminine -ha/-ga (Olga; dative/locative palatalization g -> z)
	{gender: Feminine, suffix: "([gh])a", forms: [NumForms - 1]string{
		"1y", "ze", "1u", "1o", "ze", "1y", "1ou",
		"1y", "1", "1ám", "1y", "1ách", "1ami"}},

	// feminine -cha (dative/locative ch -> š)
	{gender: Feminine, suffix: "cha", forms: [NumForms - 1]string{
		"chy", "še", "chu", "cho", "še", "chy", "chou",
		"chy", "ch", "chám", "chy", "chách", "chami"}},

	// feminine -ra (Klára; dative/locative r -> ř)
	{gender: Feminine, suffix: "ra", forms: [NumForms - 1]string{
		"ry", "ře", "ru", "ro", "ře", "ry", "rou",
		"ry", "r", "rám", "ry", "rách", "rami"}},

	// feminine -a after a soft or ambivalent consonant where the
	// dative/locative takes plain -e (Tereza, Denisa, Jarmila, Dáša)
	{gender: Feminine, suffix: "([cčjlřsšzž])a", forms: [NumForms - 1]string{
		"1y", "1e", "1u", "1o", "1e", "1y", "1ou",
		"1y", "1", "1ám", "1y", "1ách", "1ami"}},

	// the žena paradigm (Jana, Zuzana, Eva, Iveta)
	{gender: Feminine, suffix: "a", forms: [NumForms - 1]string{
		"y", "ě", "u", "o", "ě", "y", "ou",
		"y", "", "ám", "y", "ách", "ami"}},

	// the předseda paradigm (Svoboda, Honza; gender comes from
	// the lexicon as the surface form looks feminine)
	{gender: Masculine, suffix: "a", forms: [NumForms - 1]string{
		"y", "ovi", "u", "o", "ovi", "ův", "ou",
		"ové", "ů", "ům", "y", "ech", "y"}},

	// the růže paradigm incl. names in -ie (Marie, Lucie)
	{gender: Feminine, suffix: "e", forms: [NumForms - 1]string{
		"e", "i", "i", "e", "i", "e", "í",
		"e", "í", "ím", "e", "ích", "emi"}},

	// the soudce paradigm and surnames like Purkyně
	{gender: Masculine, suffix: "e", forms: [NumForms - 1]string{
		"e", "ovi", "e", "e", "ovi", "ův", "em",
		"ové", "ů", "ům", "e", "ích", "i"}},

	// neuter -e (moře type; slunce)
	{gender: Neuter, suffix: "e", forms: [NumForms - 1]string{
		"e", "i", "e", "e", "i", "e", "em",
		"e", "í", "ím", "e", "ích", "i"}},

	// masculine names in -o (Ivo, Hugo, Oto)
	{gender: Masculine, suffix: "o", forms: [NumForms - 1]string{
		"a", "ovi", "a", "o", "ovi", "ův", "em",
		"ové", "ů", "ům", "y", "ech", "y"}},

	// the město paradigm (Brno)
	{gender: Neuter, suffix: "o", forms: [NumForms - 1]string{
		"a", "u", "o", "o", "ě", "a", "em",
		"a", "", "ům", "a", "ech", "y"}},

	// foreign masculine names in -y (Harry)
	{gender: Masculine, suffix: "y", forms: [NumForms - 1]string{
		"yho", "ymu", "yho", "y", "ym", "yho", "ym",
		"yové", "yů", "yům", "ye", "yích", "yi"}},

	// foreign masculine names in -i (Toni, Niki)
	{gender: Masculine, suffix: "i", forms: [NumForms - 1]string{
		"iho", "imu", "iho", "i", "im", "iho", "im",
		"iové", "iů", "iům", "ie", "iích", "ii"}},

	// masculine -ek with the fleeting -e- (Vašek, Zdeněk, Havlíček)
	{gender: Masculine, suffix: "ek", forms: [NumForms - 1]string{
		"ka", "kovi", "ka", "ku", "kovi", "kův", "kem",
		"kové/ky", "ků", "kům", "ky", "cích", "ky"}},

	// masculine -ec with the fleeting -e- (Němec, Kadlec)
	{gender: Masculine, suffix: "ec", forms: [NumForms - 1]string{
		"ce", "covi", "ce", "če", "covi", "cův", "cem",
		"ci/ce", "ců", "cům", "ce", "cích", "ci"}},

	// hard masculine -k (Novák, Polák)
	{gender: Masculine, suffix: "k", forms: [NumForms - 1]string{
		"ka", "kovi", "ka", "ku", "kovi", "kův", "kem",
		"kové/ky", "ků", "kům", "ky", "cích", "ky"}},

	// remaining velars take -u in vocative (Oleg, Valach)
	{gender: Masculine, suffix: "(ch|g|h)", forms: [NumForms - 1]string{
		"1a", "1ovi", "1a", "1u", "1ovi", "1ův", "1em",
		"1ové/1y", "1ů", "1ům", "1y", "1ech", "1y"}},

	// -r after a consonant palatalizes in vocative (Petr -> Petře)
	{gender: Masculine, suffix: "([bcdfghjklmnpqrstvwxz])r", forms: [NumForms - 1]string{
		"1ra", "1rovi", "1ra", "1ře", "1rovi", "1rův", "1rem",
		"1rové/1ry", "1rů", "1rům", "1ry", "1rech", "1ry"}},

	// -r after a vowel keeps it (Viktor -> Viktore)
	{gender: Masculine, suffix: "r", forms: [NumForms - 1]string{
		"ra", "rovi", "ra", "re", "rovi", "rův", "rem",
		"rové/ry", "rů", "rům", "ry", "rech", "ry"}},

	// soft masculine consonants (Tomáš, Ondřej, Kmeť)
	{gender: Masculine, suffix: "([cčďjňřšťž])", forms: [NumForms - 1]string{
		"1e", "1ovi", "1e", "1i", "1ovi", "1ův", "1em",
		"1ové/1e", "1ů", "1ům", "1e", "1ích", "1i"}},

	// masculine -l (Michal, Daniel; Karel resolves via exception)
	{gender: Masculine, suffix: "l", forms: [NumForms - 1]string{
		"la", "lovi", "la", "le", "lovi", "lův", "lem",
		"lové/ly", "lů", "lům", "ly", "lech", "ly"}},

	// the hard masculine catch-all, single consonant at a time
	// (Jan, David, Klaus, Felix)
	{gender: Masculine, suffix: "([bdfmnpstvwxz])", forms: [NumForms - 1]string{
		"1a", "1ovi", "1a", "1e", "1ovi", "1ův", "1em",
		"1ové/1y", "1ů", "1ům", "1y", "1ech", "1y"}},

	// anything else (digits, abbreviations, foreign endings like
	// the surname Janů) passes through unchanged
	{gender: Indeclinable, suffix: "."},
}
