// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

// Package declension inflects Czech names and similar noun phrases
// into all their grammatical cases. It is a rule-based engine driven
// by an ordered table of suffix patterns, a short list of irregular
// stems and gender-forcing lexicons. The tables are immutable once an
// Inflector is created and all per-call state is local, so a single
// Inflector is safe for concurrent use by multiple goroutines.
package declension

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Inflector holds the compiled declension tables.
type Inflector struct {
	patterns   []pattern
	exceptions map[string]Exception
	lexicon    map[string]Gender
}

// Option customizes a new Inflector.
type Option func(*options)

type options struct {
	extraExceptions []Exception
}

// WithExceptions adds user-defined irregular words on top of the
// built-in exception table. User entries win on conflicts.
func WithExceptions(exc []Exception) Option {
	return func(o *options) {
		o.extraExceptions = append(o.extraExceptions, exc...)
	}
}

// NewInflector compiles the declension tables. The call is relatively
// expensive - create one Inflector and reuse it.
func NewInflector(opts ...Option) *Inflector {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Inflector{
		patterns:   compilePatterns(corePatterns),
		exceptions: buildExceptions(o.extraExceptions),
		lexicon:    buildLexicon(),
	}
}

var dfltInflector = NewInflector()

// Inflect runs the default Inflector (no user exceptions).
func Inflect(text string, animate bool) Forms {
	return dfltInflector.Inflect(text, animate)
}

// Inflect declines a space-separated phrase. Words are processed from
// the right so that a grammatically unambiguous trailing word (e.g.
// the surname in 'Jana Nováková') can establish the gender for the
// words before it. Each output slot joins the per-word results back
// in the original order. Words matched by no rule, as well as an empty
// input, come out unchanged in every slot.
//
// The animate flag selects the animate variant of masculine plural
// endings (doktoři vs. doktory); all observed callers pass false.
func (inf *Inflector) Inflect(text string, animate bool) Forms {
	words := strings.Split(text, " ")
	inflected := make([][NumForms]string, len(words))
	gender := Unknown
	for i := len(words) - 1; i >= 0; i-- {
		inflected[i] = inf.inflectWord(words[i], animate, &gender)
	}
	var ans Forms
	parts := make([]string, len(words))
	for f := 0; f < int(NumForms); f++ {
		for i := range words {
			parts[i] = inflected[i][f]
		}
		ans[f] = strings.Join(parts, " ")
	}
	return ans
}

// inflectWord computes all form slots of a single word. The gender
// pointer carries the context established so far within the phrase;
// the function may pin it (from the lexicon or from the first matched
// pattern) but never overrides an already known value.
func (inf *Inflector) inflectWord(word string, animate bool, gender *Gender) [NumForms]string {
	var ans [NumForms]string
	for i := range ans {
		ans[i] = word
	}
	if word == "" {
		return ans
	}
	isUpper := startsUpper(word)
	normWord := breakAccents(strings.ToLower(word))

	if *gender == Unknown {
		if g, ok := inf.lexicon[normWord]; ok {
			*gender = g
		}
	}

	exc, hasExc := inf.exceptions[normWord]
	matchWord := normWord
	if hasExc {
		matchWord = exc.Stem
	}

	for pi := range inf.patterns {
		p := &inf.patterns[pi]
		if p.gender != Indeclinable && *gender != Unknown && p.gender != *gender {
			continue
		}
		prefix, captures, ok := p.match(matchWord)
		if !ok {
			continue
		}
		if p.gender == Indeclinable {
			// matched, but there is nothing to decline
			break
		}
		for f := int(Genitive); f < int(NumForms); f++ {
			suffix := expandTemplate(p.forms[f-1], captures, animate)
			ans[f] = restoreWord(fixAccents(prefix+suffix), isUpper)
		}
		if hasExc && exc.Accusative != "" {
			ans[Accusative] = restoreWord(fixAccents(exc.Accusative), isUpper)
		}
		if *gender == Unknown {
			*gender = p.gender
		}
		break
	}
	return ans
}

func startsUpper(word string) bool {
	r, _ := utf8.DecodeRuneInString(word)
	return unicode.IsUpper(r)
}

// restoreWord re-applies the capitalization recorded before the word
// was normalized.
func restoreWord(word string, isUpper bool) string {
	if !isUpper || word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}
