package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	spotifyapi "github.com/zmb3/spotify/v2"
)

func TestAsTrack(t *testing.T) {
	full := &spotifyapi.FullTrack{
		SimpleTrack: spotifyapi.SimpleTrack{
			ID:       "id",
			Name:     "One More Time",
			Duration: 320000,
			Artists: []spotifyapi.SimpleArtist{
				{Name: "Daft Punk"},
				{Name: "Guest"},
			},
		},
		Album: spotifyapi.SimpleAlbum{
			Name: "Discovery",
			Images: []spotifyapi.Image{
				{URL: "large", Width: 640},
				{URL: "small", Width: 64},
			},
		},
		Popularity: 80,
	}

	track := asTrack(full)
	assert.Equal(t, "id", track.ID)
	assert.Equal(t, "One More Time", track.Title)
	assert.Equal(t, "Daft Punk, Guest", track.Artist)
	assert.Equal(t, []string{"Daft Punk", "Guest"}, track.Artists)
	assert.Equal(t, "Discovery", track.Album)
	assert.Equal(t, "small", track.ArtworkURL)
	assert.Equal(t, 320000, track.DurationMS)
	assert.Equal(t, 80, track.Popularity)
}

func TestArtworkURL(t *testing.T) {
	images := []spotifyapi.Image{
		{URL: "medium", Width: 300},
		{URL: "large", Width: 640},
		{URL: "small", Width: 64},
	}
	assert.Equal(t, "large", artworkURL(images, true))
	assert.Equal(t, "small", artworkURL(images, false))
	assert.Empty(t, artworkURL(nil, true))
}

func TestReleaseYear(t *testing.T) {
	assert.Equal(t, "2001", releaseYear("2001-03-12"))
	assert.Equal(t, "2001", releaseYear("2001"))
	assert.Empty(t, releaseYear(""))
}
