package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wavecrossed/tubefy/entity"
)

func TestArtistSearch(t *testing.T) {
	assert.True(t, ArtistSearch("illenium"))
	assert.True(t, ArtistSearch("ILLENIUM"))
	assert.True(t, ArtistSearch("illenium songs"))
	assert.True(t, ArtistSearch("best of illenium"))
	assert.True(t, ArtistSearch("simon & garfunkel"))

	assert.False(t, ArtistSearch("daft punk - one more time"))
	assert.False(t, ArtistSearch("song (remix)"))
	assert.False(t, ArtistSearch("artist song 2023"))
}

func TestVariety(t *testing.T) {
	candidates := []entity.Candidate{
		{Title: "ILLENIUM - Good Things Fall Apart (Official Video)", Channel: "ILLENIUM", Duration: 218},
		{Title: "ILLENIUM - Good Things Fall Apart (Lyric Video)", Channel: "randomfan", Duration: 220},
		{Title: "ILLENIUM - Takeaway", Channel: "ILLENIUM", Duration: 210},
		{Title: "ILLENIUM - Crawl Outta Love", Channel: "Proximity", Duration: 230},
		{Title: "ILLENIUM - Beautiful Creatures", Channel: "ILLENIUM", Duration: 200},
		{Title: "ILLENIUM - Sound of Walking Away", Channel: "ILLENIUM", Duration: 240},
	}

	diverse := Variety(candidates, "illenium")
	assert.Len(t, diverse, 5)

	// one upload per underlying song, the better-quality one
	goodThings := 0
	for _, candidate := range diverse {
		if strings.Contains(candidate.Title, "Good Things Fall Apart") {
			goodThings++
			assert.Contains(t, candidate.Title, "Official Video")
		}
	}
	assert.Equal(t, 1, goodThings)
}

func TestVarietySkipsSmallInput(t *testing.T) {
	candidates := []entity.Candidate{
		{Title: "Artist - Song A", Duration: 200},
		{Title: "Artist - Song A (Lyric Video)", Duration: 201},
	}
	assert.Equal(t, candidates, Variety(candidates, "artist"))
}

func TestSongFromTitle(t *testing.T) {
	assert.Equal(t, "Good Things Fall Apart", songFromTitle("ILLENIUM - Good Things Fall Apart (Official Video)", "illenium"))
	assert.Equal(t, "Takeaway", songFromTitle("ILLENIUM - Takeaway", "illenium"))
	assert.Equal(t, "Standalone Title", songFromTitle("Standalone Title", "illenium"))
}

func TestQualityScore(t *testing.T) {
	official := entity.Candidate{Title: "Artist - Song (Official Video)", Channel: "Label Records"}
	karaoke := entity.Candidate{Title: "Artist - Song Karaoke Version", Channel: "karaokehub"}
	assert.Greater(t, qualityScore(official), qualityScore(karaoke))
}
