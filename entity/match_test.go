package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReason(t *testing.T) {
	assert.True(t, ReasonHighConfidence.Included())
	assert.True(t, ReasonMediumConfidence.Included())
	assert.True(t, ReasonSourceOnly.Included())
	assert.False(t, ReasonLowConfidence.Included())
	assert.False(t, ReasonIrrelevant.Included())

	assert.True(t, ReasonHighConfidence.Tagged())
	assert.True(t, ReasonMediumConfidence.Tagged())
	assert.False(t, ReasonSourceOnly.Tagged())
}

func TestFilename(t *testing.T) {
	track := &Track{Title: "One More Time", Artists: []string{"Daft Punk"}}

	tagged := Match{
		Candidate: Candidate{Title: "Daft Punk - One More Time (Official Video)"},
		Track:     track,
		Reason:    ReasonHighConfidence,
	}
	assert.Equal(t, "Daft Punk - One More Time.mp3", tagged.Filename())

	// source-only results never borrow the track's metadata
	sourceOnly := Match{
		Candidate: Candidate{Title: "Some Upload"},
		Reason:    ReasonSourceOnly,
	}
	assert.Equal(t, "Some Upload.mp3", sourceOnly.Filename())
}

func TestKnownDuration(t *testing.T) {
	assert.True(t, Candidate{Duration: 1}.KnownDuration())
	assert.False(t, Candidate{}.KnownDuration())
}
