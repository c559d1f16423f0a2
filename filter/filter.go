// Package filter decides which raw video-search results are plausibly
// songs, collapses duplicate uploads and, for artist-style queries,
// re-groups results so each underlying song appears once.
package filter

import (
	"regexp"
	"strings"

	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/normalize"
	"github.com/wavecrossed/tubefy/similarity"
)

const (
	// Duration bounds for anything that can count as a song.
	MinDuration = 30
	MaxDuration = 600

	// Relevance gates. Artist-style queries use the relaxed one since
	// their titles rarely echo the query verbatim.
	strictRelevanceGate  = 40
	relaxedRelevanceGate = 25

	// DefaultMaxResults bounds the final result list.
	DefaultMaxResults = 5
)

// exclusionKeywords flag non-song content. Matched as substrings of the
// lowercased title, like the upstream sources these lists were tuned
// against. Cover content is excluded only at phrase level ("covers",
// "cover version"): a bare "cover", like a bare "remix", marks a
// legitimate variant and never disqualifies on its own.
var exclusionKeywords = []string{
	"live", "concert", "tour", "performance", "festival",
	"album", "full album", "playlist", "compilation",
	"cover version", "covers", "instrumental", "karaoke",
	"reaction", "review", "interview", "behind the scenes",
	"making of", "documentary", "trailer", "teaser",
	"how to", "tutorial", "lesson", "guide",
}

var exclusionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\blive\b.*\bconcert\b`),
	regexp.MustCompile(`\bfull\s+album\b`),
	regexp.MustCompile(`\bcover\s+by\b`),
	regexp.MustCompile(`\breaction\s+to\b`),
	regexp.MustCompile(`\blyrics?\s+video\b`),
	regexp.MustCompile(`\bofficial\s+trailer\b`),
}

// strictPatterns apply only to song-style queries; artist searches skip
// them so legitimate remixes and long-form uploads of an artist's
// catalogue are not thrown away wholesale.
var strictPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\blive\s+(at|in|from)\b`),
	regexp.MustCompile(`\b\d+\s*hours?\b`),
	regexp.MustCompile(`\bmix\s*#?\d+\b`),
	regexp.MustCompile(`\bfull\s+concert\b`),
	regexp.MustCompile(`\bsetlist\b`),
	regexp.MustCompile(`\bmashup\s+of\b`),
}

// variantIndicators mark a title as a derivative work. They tighten the
// metadata search strategy and lower variety quality, but never exclude.
var variantIndicators = []string{"remix", "cover", "bootleg", "edit", "rework", "flip"}

var songShapePatterns = []*regexp.Regexp{
	regexp.MustCompile(`[\w\s]+ - [\w\s]+`),
	regexp.MustCompile(`[\w\s]+ by [\w\s]+`),
	regexp.MustCompile(`[\w\s]+\s*\|\s*[\w\s]+`),
	regexp.MustCompile(`[\w\s]+:\s*[\w\s]+`),
	regexp.MustCompile(`\(official.*\)`),
	regexp.MustCompile(`\[official.*\]`),
	regexp.MustCompile(`[\w\s]+\s*\([\w\s]+\s+remix\)`),
	regexp.MustCompile(`[\w\s]+\s+remix`),
}

var remixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\w+\s+remix`),
	regexp.MustCompile(`\(.*remix.*\)`),
	regexp.MustCompile(`remix\s+by\s+\w+`),
}

// Valid classifies a single candidate as plausibly being a song for the
// given query. Relaxed mode, used for artist-style queries, skips the
// strict-only patterns and lowers the relevance gate.
func Valid(candidate entity.Candidate, query string, relaxed bool) bool {
	if candidate.Duration < MinDuration || candidate.Duration > MaxDuration {
		return false
	}
	if excluded(strings.ToLower(candidate.Title), relaxed) {
		return false
	}

	gate := float64(strictRelevanceGate)
	if relaxed {
		gate = relaxedRelevanceGate
	}
	return Relevance(candidate, query) >= gate
}

func excluded(title string, relaxed bool) bool {
	for _, keyword := range exclusionKeywords {
		if strings.Contains(title, keyword) {
			return true
		}
	}
	for _, pattern := range exclusionPatterns {
		if pattern.MatchString(title) {
			return true
		}
	}
	if relaxed {
		return false
	}
	for _, pattern := range strictPatterns {
		if pattern.MatchString(title) {
			return true
		}
	}
	return false
}

// Relevance scores how well a candidate answers the query on its own,
// without any metadata provider involved: direct fuzzy similarity
// (50%), query words present in the title (30%) and recognizable song
// title shapes (20%).
func Relevance(candidate entity.Candidate, query string) float64 {
	title := normalize.CleanQuery(candidate.Title)
	cleaned := normalize.CleanQuery(query)

	score := similarity.Ratio(cleaned, title)*0.5 +
		similarity.TokenOverlap(cleaned, title)*0.3 +
		shapeScore(strings.ToLower(candidate.Title))*0.2

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func shapeScore(title string) float64 {
	hits := 0
	for _, pattern := range songShapePatterns {
		if pattern.MatchString(title) {
			hits++
		}
	}

	remix := false
	for _, pattern := range remixPatterns {
		if pattern.MatchString(title) {
			remix = true
			break
		}
	}

	switch {
	case hits >= 2 || remix:
		return 90
	case hits == 1:
		return 75
	default:
		return 40
	}
}

// IsVariant reports whether a title presents itself as a remix, cover
// or similar derivative of another song.
func IsVariant(title string) bool {
	title = strings.ToLower(title)
	for _, indicator := range variantIndicators {
		if strings.Contains(title, indicator) {
			return true
		}
	}
	return false
}

// Apply runs the full filtering pass: validation, deduplication,
// variety for artist searches and the final result cap. A non-positive
// max falls back to DefaultMaxResults.
func Apply(candidates []entity.Candidate, query string, max int) []entity.Candidate {
	if max <= 0 {
		max = DefaultMaxResults
	}

	artistQuery := ArtistSearch(query)
	valid := make([]entity.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if Valid(candidate, query, artistQuery) {
			valid = append(valid, candidate)
		}
	}

	result := Dedup(valid, query)
	if artistQuery {
		result = Variety(result, query)
	}
	if len(result) > max {
		result = result[:max]
	}
	return result
}
