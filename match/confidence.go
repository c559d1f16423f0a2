package match

import (
	"strings"

	"github.com/wavecrossed/tubefy/entity"
	"github.com/wavecrossed/tubefy/normalize"
	"github.com/wavecrossed/tubefy/similarity"
)

// Confidence weights. Title dominates: a coincidentally same-length
// cover would sail through a duration-led score.
const (
	titleWeight    = 0.40
	durationWeight = 0.35
	artistWeight   = 0.25

	titleSubstringFloor = 85
	artistInTitleBoost  = 15
	artistSubstring     = 90
	artistNeutral       = 50

	durationTolerance = 5 // seconds
)

// Confidence scores how certain the candidate↔track correspondence is,
// in [0,100]. Fed to the inclusion policy once a track has been chosen.
func Confidence(candidate entity.Candidate, track *entity.Track) float64 {
	if track == nil {
		return 0
	}

	confidence := titleScore(candidate, track)*titleWeight +
		durationScore(candidate, track)*durationWeight +
		artistScore(candidate, track)*artistWeight

	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}

func titleScore(candidate entity.Candidate, track *entity.Track) float64 {
	candidateTitle := normalize.CleanQuery(candidate.Title)
	trackTitle := normalize.CleanQuery(track.Title)

	score := titleSimilarity(candidateTitle, trackTitle)

	// provider titles often carry the variant suffix ("Name - Acoustic")
	// while the upload names it differently; the stripped base title gets
	// a shot too and the better alignment wins
	if base := normalize.CleanQuery(track.Song()); base != trackTitle {
		if alternate := titleSimilarity(candidateTitle, base); alternate > score {
			score = alternate
		}
	}

	if lead := normalize.CleanQuery(track.Lead()); lead != "" && strings.Contains(candidateTitle, lead) {
		score += artistInTitleBoost
		if score > 100 {
			score = 100
		}
	}
	return score
}

func titleSimilarity(candidateTitle, trackTitle string) float64 {
	score := similarity.Ratio(candidateTitle, trackTitle)
	if trackTitle != "" && strings.Contains(candidateTitle, trackTitle) && score < titleSubstringFloor {
		score = titleSubstringFloor
	}
	return score
}

func durationScore(candidate entity.Candidate, track *entity.Track) float64 {
	if !candidate.KnownDuration() || track.Duration() == 0 {
		return 0
	}

	gap := candidate.Duration - track.Duration()
	if gap < 0 {
		gap = -gap
	}
	switch {
	case gap <= durationTolerance:
		return 100
	case gap <= 10:
		return 80
	case gap <= 20:
		return 60
	case gap <= 30:
		return 40
	default:
		return 0
	}
}

func artistScore(candidate entity.Candidate, track *entity.Track) float64 {
	if len(track.Artists) == 0 {
		return artistNeutral
	}

	candidateTitle := normalize.CleanQuery(candidate.Title)
	best := 0.0
	for _, artist := range track.Artists {
		cleaned := normalize.CleanQuery(artist)
		if cleaned == "" {
			continue
		}
		if strings.Contains(candidateTitle, cleaned) {
			if artistSubstring > best {
				best = artistSubstring
			}
			continue
		}
		if score := similarity.PartialRatio(cleaned, candidateTitle); score > best {
			best = score
		}
	}
	return best
}
