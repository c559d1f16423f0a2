// Package similarity provides the fuzzy string scores the filtering and
// matching stages share. Scores are on a 0-100 scale, Levenshtein-based
// and case-sensitive: callers normalize case first.
package similarity

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio scores how alike two strings are, 100 meaning identical.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}

	distance := levenshtein.ComputeDistance(a, b)
	return (1 - float64(distance)/float64(longest)) * 100
}

// PartialRatio scores the best alignment of the shorter string against
// any equally long window of the longer one. A literal substring scores
// 100 no matter how much surrounding text the longer string carries.
func PartialRatio(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}
	if strings.Contains(string(longer), string(shorter)) {
		return 100
	}

	best := 0.0
	for offset := 0; offset+len(shorter) <= len(longer); offset++ {
		window := string(longer[offset : offset+len(shorter)])
		if score := Ratio(string(shorter), window); score > best {
			best = score
		}
	}
	return best
}

// TokenOverlap scores the fraction of query words literally present in
// the text's words, as a percentage.
func TokenOverlap(query, text string) float64 {
	queryWords := strings.Fields(query)
	if len(queryWords) == 0 {
		return 0
	}

	textWords := map[string]bool{}
	for _, word := range strings.Fields(text) {
		textWords[word] = true
	}

	matched := 0
	for _, word := range queryWords {
		if textWords[word] {
			matched++
		}
	}
	return float64(matched) / float64(len(queryWords)) * 100
}
