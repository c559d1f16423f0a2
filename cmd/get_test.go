package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wavecrossed/tubefy/entity"
)

func TestFirstIncluded(t *testing.T) {
	matches := []entity.Match{
		{Candidate: entity.Candidate{Title: "junk"}, Reason: entity.ReasonIrrelevant},
		{Candidate: entity.Candidate{Title: "weak"}, Reason: entity.ReasonLowConfidence},
		{Candidate: entity.Candidate{Title: "good"}, Reason: entity.ReasonHighConfidence},
	}

	chosen := firstIncluded(matches)
	assert.NotNil(t, chosen)
	assert.Equal(t, "good", chosen.Candidate.Title)

	assert.Nil(t, firstIncluded(matches[:2]))
	assert.Nil(t, firstIncluded(nil))
}

func TestAssetPaths(t *testing.T) {
	tagged := &entity.Match{
		Candidate: entity.Candidate{Title: "Daft Punk - One More Time (Official Video)"},
		Track: &entity.Track{
			ID:         "6c1YDxyRTse2d7BKV1FpCU",
			ArtworkURL: "https://i.scdn.co/image/cover",
		},
		Reason: entity.ReasonHighConfidence,
	}

	// tagged matches cache under the track's own paths
	audio, artwork := assetPaths(tagged)
	assert.Equal(t, tagged.Track.Path().Download(), audio)
	assert.Equal(t, tagged.Track.Path().Artwork(), artwork)

	sourceOnly := &entity.Match{
		Candidate: entity.Candidate{Title: "Some Upload"},
		Reason:    entity.ReasonSourceOnly,
	}
	audio, artwork = assetPaths(sourceOnly)
	assert.Contains(t, audio, "some-upload")
	assert.True(t, strings.HasSuffix(audio, "."+entity.TrackFormat))
	assert.True(t, strings.HasSuffix(artwork, "."+entity.ArtworkFormat))
}

func TestParseSelection(t *testing.T) {
	assert.Equal(t, 1, parseSelection("", 3))
	assert.Equal(t, 2, parseSelection(" 2 ", 3))
	assert.Equal(t, 0, parseSelection("0", 3))
	assert.Equal(t, 0, parseSelection("4", 3))
	assert.Equal(t, 0, parseSelection("-1", 3))
	assert.Equal(t, 0, parseSelection("two", 3))
}
