// Package stemmer implements the Porter stemming algorithm for English.
//
// Grounded on original_source/lib/stemmer/stemmer.h and
// stemmer_const.h: the same consonant/vowel classification, measure-m
// and CVC primitives, and the same eight ordered steps.
package stemmer

type suffixRule struct {
	from string
	to   string
}

var step2Suffixes = []suffixRule{
	{"ational", "ate"},
	{"tional", "tion"},
	{"enci", "ence"},
	{"anci", "ance"},
	{"izer", "ize"},
	{"abli", "able"},
	{"alli", "al"},
	{"entli", "ent"},
	{"eli", "e"},
	{"ousli", "ous"},
	{"ization", "ize"},
	{"ation", "ate"},
	{"ator", "ate"},
	{"alism", "al"},
	{"iveness", "ive"},
	{"fulness", "ful"},
	{"ousness", "ous"},
	{"aliti", "al"},
	{"iviti", "ive"},
	{"biliti", "ble"},
	{"logi", "log"},
	{"fulli", "ful"},
	{"lessli", "less"},
}

var step3Suffixes = []suffixRule{
	{"icate", "ic"},
	{"ative", ""},
	{"alize", "al"},
	{"iciti", "ic"},
	{"ical", "ic"},
	{"ful", ""},
	{"ness", ""},
}

var step4Suffixes = []string{
	"ement", "ance", "ence", "able", "ible", "ment", "ant", "ent",
	"ion", "ism", "ate", "iti", "ous", "ive", "ize", "al", "er", "ic", "ou",
}

// Stem reduces word to its Porter stem. Inputs shorter than three bytes
// are returned unchanged; longer inputs are ASCII-lowercased before the
// steps run. Stem holds no state and is safe for concurrent use.
func Stem(word string) string {
	if len(word) < 3 {
		return word
	}

	s := toLower(word)
	s = step1a(s)
	s = step1b(s)
	s = step1c(s)
	s = step2(s)
	s = step3(s)
	s = step4(s)
	s = step5a(s)
	s = step5b(s)
	return s
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// isConsonant reports whether the byte at index i of s is a consonant.
// y is a consonant iff it is at index 0 or the character immediately
// before it is a vowel.
func isConsonant(s string, i int) bool {
	switch c := s[i]; c {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		if i == 0 {
			return true
		}
		return !isConsonant(s, i-1)
	default:
		return true
	}
}

// measureM counts the number of VC groups in the word viewed as
// [C](VC)^m[V]: strip an optional leading consonant run, then count
// each subsequent vowel-run-followed-by-consonant-run pair.
func measureM(s string) int {
	i := 0
	for i < len(s) && isConsonant(s, i) {
		i++
	}
	m := 0
	for i < len(s) {
		for i < len(s) && !isConsonant(s, i) {
			i++
		}
		if i >= len(s) {
			break
		}
		for i < len(s) && isConsonant(s, i) {
			i++
		}
		m++
	}
	return m
}

func hasVowel(s string) bool {
	for i := range s {
		if !isConsonant(s, i) {
			return true
		}
	}
	return false
}

func endsWithDoubleConsonant(s string) bool {
	n := len(s)
	if n < 2 {
		return false
	}
	if s[n-1] != s[n-2] {
		return false
	}
	return isConsonant(s, n-1)
}

func endsCVC(s string) bool {
	n := len(s)
	if n < 3 {
		return false
	}
	if !isConsonant(s, n-1) || isConsonant(s, n-2) || !isConsonant(s, n-3) {
		return false
	}
	switch s[n-1] {
	case 'w', 'x', 'y':
		return false
	}
	return true
}

func endsWith(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return s[len(s)-len(suffix):] == suffix
}

func removeSuffix(s string, n int) string {
	if len(s) <= n {
		return ""
	}
	return s[:len(s)-n]
}

func replaceSuffix(s string, removeLen int, add string) string {
	return removeSuffix(s, removeLen) + add
}

func step1a(s string) string {
	switch {
	case endsWith(s, "sses"):
		return replaceSuffix(s, 4, "ss")
	case endsWith(s, "ies"):
		return replaceSuffix(s, 3, "i")
	case endsWith(s, "ss"):
		return s
	case endsWith(s, "s"):
		return removeSuffix(s, 1)
	}
	return s
}

func step1b(s string) string {
	if endsWith(s, "eed") {
		stem := removeSuffix(s, 3)
		if measureM(stem) > 0 {
			return replaceSuffix(s, 3, "ee")
		}
		return s
	}

	result := s
	fired := false

	switch {
	case endsWith(s, "ed"):
		if stem := removeSuffix(s, 2); hasVowel(stem) {
			result, fired = stem, true
		}
	case endsWith(s, "ing"):
		if stem := removeSuffix(s, 3); hasVowel(stem) {
			result, fired = stem, true
		}
	}

	if !fired {
		return result
	}

	switch {
	case endsWith(result, "at"):
		return replaceSuffix(result, 2, "ate")
	case endsWith(result, "bl"):
		return replaceSuffix(result, 2, "ble")
	case endsWith(result, "iz"):
		return replaceSuffix(result, 2, "ize")
	case endsWithDoubleConsonant(result):
		switch result[len(result)-1] {
		case 'l', 's', 'z':
		default:
			return removeSuffix(result, 1)
		}
	case measureM(result) == 1 && endsCVC(result):
		return result + "e"
	}

	return result
}

func step1c(s string) string {
	if endsWith(s, "y") {
		if stem := removeSuffix(s, 1); hasVowel(stem) {
			return replaceSuffix(s, 1, "i")
		}
	}
	return s
}

func step2(s string) string {
	for _, rule := range step2Suffixes {
		if endsWith(s, rule.from) {
			stem := removeSuffix(s, len(rule.from))
			if measureM(stem) > 0 {
				return replaceSuffix(s, len(rule.from), rule.to)
			}
			return s
		}
	}
	return s
}

func step3(s string) string {
	for _, rule := range step3Suffixes {
		if endsWith(s, rule.from) {
			stem := removeSuffix(s, len(rule.from))
			if measureM(stem) > 0 {
				return replaceSuffix(s, len(rule.from), rule.to)
			}
			return s
		}
	}
	return s
}

func step4(s string) string {
	for _, suffix := range step4Suffixes {
		if !endsWith(s, suffix) {
			continue
		}
		stem := removeSuffix(s, len(suffix))

		if suffix == "ion" {
			if len(stem) > 0 {
				c := stem[len(stem)-1]
				if (c == 's' || c == 't') && measureM(stem) > 1 {
					return stem
				}
			}
			continue
		}

		if measureM(stem) > 1 {
			return stem
		}
	}
	return s
}

func step5a(s string) string {
	if endsWith(s, "e") {
		stem := removeSuffix(s, 1)
		if measureM(stem) > 1 {
			return stem
		}
		if measureM(stem) == 1 && !endsCVC(stem) {
			return stem
		}
	}
	return s
}

func step5b(s string) string {
	if measureM(s) > 1 && endsWithDoubleConsonant(s) && endsWith(s, "l") {
		return removeSuffix(s, 1)
	}
	return s
}
