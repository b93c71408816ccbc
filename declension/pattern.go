// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Charles University - Faculty of Arts,
//                Institute of the Czech National Corpus
// All rights reserved.

package declension

import (
	"regexp"
	"strings"
)

// patternSpec is a single row of the declension table as written down
// by hand. Either literal or suffix must be set. A suffix is a regular
// expression matched at the end of a (normalized) word; its capturing
// groups can be referenced from the form templates by digits 1-9.
// A template may carry two variants separated by '/' - the left one is
// used for animate declension, the right one for inanimate.
type patternSpec struct {
	gender  Gender
	literal string
	suffix  string

	// forms holds the templates for the slots Genitive..InstrumentalPlural
	// (the nominative slot is always the original word)
	forms [NumForms - 1]string
}

type pattern struct {
	gender  Gender
	literal string
	re      *regexp.Regexp
	forms   [NumForms - 1]string
}

func compilePatterns(specs []patternSpec) []pattern {
	ans := make([]pattern, len(specs))
	for i, ps := range specs {
		p := pattern{gender: ps.gender, forms: ps.forms}
		if ps.literal != "" {
			p.literal = breakAccents(strings.ToLower(ps.literal))

		} else {
			p.re = regexp.MustCompile("(?:" + ps.suffix + ")$")
		}
		ans[i] = p
	}
	return ans
}

// match tests the pattern against a normalized word. On success it
// returns the word prefix preceding the matched suffix along with the
// values of any capturing groups. The capture slice is freshly
// allocated on each call so concurrent invocations cannot interfere.
func (p *pattern) match(word string) (prefix string, captures []string, ok bool) {
	if p.literal != "" {
		if word == p.literal {
			return "", nil, true
		}
		return "", nil, false
	}
	loc := p.re.FindStringSubmatchIndex(word)
	if loc == nil {
		return "", nil, false
	}
	captures = make([]string, 0, len(loc)/2-1)
	for i := 2; i < len(loc); i += 2 {
		if loc[i] < 0 {
			captures = append(captures, "")

		} else {
			captures = append(captures, word[loc[i]:loc[i+1]])
		}
	}
	return word[:loc[0]], captures, true
}

// expandTemplate resolves the animate/inanimate alternative and
// substitutes captured groups for the digit back-references.
func expandTemplate(tpl string, captures []string, animate bool) string {
	if i := strings.IndexByte(tpl, '/'); i >= 0 {
		if animate {
			tpl = tpl[:i]

		} else {
			tpl = tpl[i+1:]
		}
	}
	if !strings.ContainsAny(tpl, "123456789") {
		return tpl
	}
	var sb strings.Builder
	for _, c := range tpl {
		if c >= '1' && c <= '9' {
			idx := int(c - '1')
			if idx < len(captures) {
				sb.WriteString(captures[idx])
			}

		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
