package filter

import (
	"strings"

	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/normalize"
	"github.com/wavecrossed/tubefy/similarity"
)

const (
	duplicateTitleGate   = 80 // core-title similarity above which two uploads are the same song
	duplicateDurationGap = 10 // seconds
)

var officialIndicators = []string{"official", "records", "music", "vevo"}

// Dedup collapses near-identical uploads of the same song into one
// representative, preferring the better source. Candidates are scanned
// once and compared only against already-kept representatives, so the
// outcome depends on input order; an accepted approximation of real
// clustering, not a bug.
func Dedup(candidates []entity.Candidate, query string) []entity.Candidate {
	if len(candidates) == 0 {
		return candidates
	}

	kept := make([]entity.Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		core := strings.ToLower(normalize.CoreTitle(candidate.Title))

		duplicate := false
		for i, existing := range kept {
			existingCore := strings.ToLower(normalize.CoreTitle(existing.Title))
			if similarity.Ratio(core, existingCore) > duplicateTitleGate &&
				durationsClose(candidate, existing) {
				if betterSource(candidate, existing) {
					kept[i] = candidate
				}
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, candidate)
		}
	}
	return kept
}

func durationsClose(a, b entity.Candidate) bool {
	gap := a.Duration - b.Duration
	if gap < 0 {
		gap = -gap
	}
	return gap <= duplicateDurationGap
}

// betterSource prefers official-looking channels, then the shorter
// title as a proxy for the cleaner upload.
func betterSource(a, b entity.Candidate) bool {
	aOfficial := officialChannel(a.Channel)
	bOfficial := officialChannel(b.Channel)
	if aOfficial != bOfficial {
		return aOfficial
	}
	return len(a.Title) < len(b.Title)
}

func officialChannel(channel string) bool {
	channel = strings.ToLower(channel)
	for _, indicator := range officialIndicators {
		if strings.Contains(channel, indicator) {
			return true
		}
	}
	return false
}
