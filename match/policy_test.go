package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wavecrossed/tubefy/entity"
)

func TestDecideHighConfidence(t *testing.T) {
	candidate := entity.Candidate{
		Title:    "Daft Punk - One More Time (Official Video)",
		Duration: 320,
	}
	track := &entity.Track{
		ID:         "id",
		Title:      "One More Time",
		Artists:    []string{"Daft Punk"},
		DurationMS: 320000,
	}

	decision := Decide(candidate, track, "daft punk one more time")
	assert.Equal(t, entity.ReasonHighConfidence, decision.Reason)
	assert.Same(t, track, decision.Track)
	assert.GreaterOrEqual(t, decision.Confidence, float64(HighConfidenceThreshold))
}

func TestDecidePoorMatchFallsBackToSource(t *testing.T) {
	// a relevant candidate whose only track match is a stranger: the
	// track must not ride along into the result
	candidate := entity.Candidate{
		Title:    "Artist Name - Some Song (Official Video)",
		Duration: 210,
	}
	stranger := &entity.Track{Title: "Unrelated Thing", Artists: []string{"Nobody"}, DurationMS: 500000}

	decision := Decide(candidate, stranger, "artist name some song")
	assert.Equal(t, entity.ReasonSourceOnly, decision.Reason)
	assert.Nil(t, decision.Track)
}

func TestDecidePoorMatchIrrelevantCandidate(t *testing.T) {
	candidate := entity.Candidate{Title: "random vlog #42", Duration: 210}
	stranger := &entity.Track{Title: "Unrelated Thing", Artists: []string{"Nobody"}, DurationMS: 500000}

	decision := Decide(candidate, stranger, "daft punk one more time")
	assert.Equal(t, entity.ReasonLowConfidence, decision.Reason)
	assert.Nil(t, decision.Track)
	assert.False(t, decision.Reason.Included())
}

func TestDecideNoTrack(t *testing.T) {
	relevant := entity.Candidate{Title: "Artist Name - Some Song (Official Video)", Duration: 210}
	decision := Decide(relevant, nil, "artist name some song")
	assert.Equal(t, entity.ReasonSourceOnly, decision.Reason)
	assert.Nil(t, decision.Track)
	assert.GreaterOrEqual(t, decision.Confidence, float64(SourceOnlyRelevanceGate))

	junk := entity.Candidate{Title: "random vlog #42", Duration: 210}
	decision = Decide(junk, nil, "daft punk one more time")
	assert.Equal(t, entity.ReasonIrrelevant, decision.Reason)
}
