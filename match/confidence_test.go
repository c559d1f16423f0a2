package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wavecrossed/tubefy/entity"
)

func TestConfidence(t *testing.T) {
	candidate := entity.Candidate{
		Title:    "Daft Punk - One More Time (Official Video)",
		Channel:  "Daft Punk",
		Duration: 320,
	}
	track := &entity.Track{
		Title:      "One More Time",
		Artists:    []string{"Daft Punk"},
		DurationMS: 320000,
	}

	// title substring floor + artist-in-title boost, exact duration,
	// artist substring: 100*0.40 + 100*0.35 + 90*0.25
	assert.InDelta(t, 97.5, Confidence(candidate, track), 0.01)
	assert.GreaterOrEqual(t, Confidence(candidate, track), float64(HighConfidenceThreshold))
}

func TestConfidenceVariantTitle(t *testing.T) {
	// the provider names the variant in its title; the upload decorates
	// it differently, so the stripped base title must carry the match
	candidate := entity.Candidate{Title: "Artist - Name (Acoustic)", Duration: 200}
	track := &entity.Track{
		Title:      "Name - Acoustic",
		Artists:    []string{"Artist"},
		DurationMS: 200000,
	}

	// base title substring floor + artist-in-title boost, exact
	// duration, artist substring: 100*0.40 + 100*0.35 + 90*0.25
	assert.InDelta(t, 97.5, Confidence(candidate, track), 0.01)
}

func TestConfidenceNilTrack(t *testing.T) {
	assert.Zero(t, Confidence(entity.Candidate{Title: "whatever"}, nil))
}

func TestConfidenceBounds(t *testing.T) {
	candidate := entity.Candidate{Title: "something else entirely", Duration: 100}
	track := &entity.Track{Title: "unrelated", Artists: []string{"nobody"}, DurationMS: 500000}

	confidence := Confidence(candidate, track)
	assert.GreaterOrEqual(t, confidence, 0.0)
	assert.LessOrEqual(t, confidence, 100.0)
	assert.Less(t, confidence, float64(MediumConfidenceThreshold))
}

func TestConfidenceDurationTiers(t *testing.T) {
	// identical titles, no artist data: only the duration component moves
	track := &entity.Track{Title: "one more time", DurationMS: 320000}
	at := func(duration int) float64 {
		return Confidence(entity.Candidate{Title: "one more time", Duration: duration}, track)
	}

	assert.InDelta(t, 87.5, at(320), 0.01) // 100*0.40 + 100*0.35 + 50*0.25
	assert.InDelta(t, 80.5, at(328), 0.01) // gap 8 scores 80
	assert.InDelta(t, 73.5, at(335), 0.01) // gap 15 scores 60
	assert.InDelta(t, 66.5, at(345), 0.01) // gap 25 scores 40
	assert.InDelta(t, 52.5, at(400), 0.01) // gap 80 scores 0
}

func TestConfidenceUnknownDuration(t *testing.T) {
	track := &entity.Track{Title: "one more time", DurationMS: 320000}
	known := Confidence(entity.Candidate{Title: "one more time", Duration: 320}, track)
	unknown := Confidence(entity.Candidate{Title: "one more time"}, track)

	// unknown duration contributes nothing rather than being punished as
	// a mismatch, but cannot reach the full-score tier either
	assert.InDelta(t, known-unknown, 35.0, 0.01)
}
