package filter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/similarity"
)

const (
	varietyGroupGate  = 70 // song-part similarity above which two results are the same song
	varietyMaxResults = 10
	varietyMinInput   = 5 // below this, grouping would only shrink an already small list
)

var artistQueryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-z\s&]+$`),
	regexp.MustCompile(`^[a-z\s&]+ songs?$`),
	regexp.MustCompile(`^[a-z\s&]+ hits?$`),
	regexp.MustCompile(`^best of [a-z\s&]+$`),
}

var (
	leadingDash       = regexp.MustCompile(`^\s*[-–]\s*`)
	trailingParens    = regexp.MustCompile(`\s*\(.*?\)\s*$`)
	trailingBrackets  = regexp.MustCompile(`\s*\[.*?\]\s*$`)
	trailingDecorWord = regexp.MustCompile(`(?i)\s*(official|music|video|audio|lyric|lyrics)\s*$`)
)

// ArtistSearch reports whether the query names an artist rather than a
// specific song: letters, spaces and ampersands only, optionally
// followed by "songs"/"hits", or a "best of X" shape.
func ArtistSearch(query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	for _, pattern := range artistQueryPatterns {
		if pattern.MatchString(query) {
			return !strings.Contains(query, " - ") &&
				!strings.Contains(query, "(") &&
				!strings.Contains(query, "[")
		}
	}
	return false
}

type songGroup struct {
	songPart string
	members  []entity.Candidate
}

// Variety re-groups an artist search's results by underlying song and
// keeps the best-quality upload per group, so the caller gets ten
// different songs instead of ten uploads of the hit single.
func Variety(candidates []entity.Candidate, query string) []entity.Candidate {
	if len(candidates) <= varietyMinInput {
		return candidates
	}

	groups := make([]*songGroup, 0, len(candidates))
	for _, candidate := range candidates {
		songPart := songFromTitle(candidate.Title, query)

		grouped := false
		for _, group := range groups {
			if similarity.Ratio(strings.ToLower(songPart), strings.ToLower(group.songPart)) > varietyGroupGate {
				group.members = append(group.members, candidate)
				grouped = true
				break
			}
		}
		if !grouped {
			groups = append(groups, &songGroup{songPart: songPart, members: []entity.Candidate{candidate}})
		}
	}

	diverse := make([]entity.Candidate, 0, len(groups))
	for _, group := range groups {
		best := group.members[0]
		bestScore := qualityScore(best)
		for _, member := range group.members[1:] {
			if score := qualityScore(member); score > bestScore {
				best, bestScore = member, score
			}
		}
		diverse = append(diverse, best)
	}

	sort.SliceStable(diverse, func(i, j int) bool {
		return Relevance(diverse[i], query) > Relevance(diverse[j], query)
	})

	if len(diverse) > varietyMaxResults {
		diverse = diverse[:varietyMaxResults]
	}
	return diverse
}

// songFromTitle strips the leading artist-name phrase and trailing
// decorations, leaving the part of the title naming the song itself.
func songFromTitle(title, artistQuery string) string {
	songPart := title
	titleLower := strings.ToLower(title)
	artistWords := strings.Fields(strings.ToLower(artistQuery))

	for i := len(artistWords); i > 0; i-- {
		phrase := strings.Join(artistWords[:i], " ")
		if strings.HasPrefix(titleLower, phrase) {
			songPart = strings.Trim(title[len(phrase):], " -")
			break
		}
	}

	songPart = leadingDash.ReplaceAllString(songPart, "")
	songPart = trailingParens.ReplaceAllString(songPart, "")
	songPart = trailingBrackets.ReplaceAllString(songPart, "")
	songPart = trailingDecorWord.ReplaceAllString(songPart, "")
	return strings.TrimSpace(songPart)
}

// qualityScore ranks uploads of the same song: official channels and
// official video/audio tags win, covers and karaoke lose, and short
// titles get a nudge for being cleaner.
func qualityScore(candidate entity.Candidate) float64 {
	title := strings.ToLower(candidate.Title)
	channel := strings.ToLower(candidate.Channel)

	score := 0.0
	if officialChannel(channel) {
		score += 3
	}
	if strings.Contains(title, "official video") || strings.Contains(title, "official audio") {
		score += 2
	}
	for _, word := range []string{"cover", "karaoke", "instrumental"} {
		if strings.Contains(title, word) {
			score -= 2
			break
		}
	}
	if len(title) < 100 {
		score++
	}
	return score
}
