// Package spotify is the metadata search and detail collaborator. It
// speaks the provider's API through client-credentials auth and
// consults an injected cache before going to the network.
package spotify

import (
	"context"
	"errors"
	"os"
	"sort"
	"strings"

	"github.com/wavecrossed/tubefy/cache"
	"github.com/wavecrossed/tubefy/entity"
	spotifyapi "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

const defaultSearchLimit = 5

type Client struct {
	client *spotifyapi.Client
	cache  cache.Cache
}

// Authenticate builds a client from SPOTIFY_ID/SPOTIFY_SECRET. The
// cache argument may be nil, in which case every search hits the
// network.
func Authenticate(ctx context.Context, store cache.Cache) (*Client, error) {
	id, secret := os.Getenv("SPOTIFY_ID"), os.Getenv("SPOTIFY_SECRET")
	if id == "" || secret == "" {
		return nil, errors.New("spotify credentials not set")
	}

	config := &clientcredentials.Config{
		ClientID:     id,
		ClientSecret: secret,
		TokenURL:     spotifyauth.TokenURL,
	}
	token, err := config.Token(ctx)
	if err != nil {
		return nil, err
	}

	return &Client{
		client: spotifyapi.New(spotifyauth.New().Client(ctx, token)),
		cache:  store,
	}, nil
}

// SearchTrack returns up to limit track records for a free-text query.
// No results is a nil slice, not an error. Empty responses are cached
// too, so a known-missing track does not trigger repeat lookups.
func (client *Client) SearchTrack(ctx context.Context, query string, limit int) ([]entity.Track, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	key := cache.Key(query, limit)
	if client.cache != nil {
		if tracks, ok := client.cache.Get(key); ok {
			return tracks, nil
		}
	}

	results, err := client.client.Search(ctx, query, spotifyapi.SearchTypeTrack, spotifyapi.Limit(limit))
	if err != nil {
		return nil, err
	}

	var tracks []entity.Track
	if results.Tracks != nil {
		for i := range results.Tracks.Tracks {
			tracks = append(tracks, asTrack(&results.Tracks.Tracks[i]))
		}
	}

	if client.cache != nil {
		client.cache.Put(key, tracks)
	}
	return tracks, nil
}

// TrackMetadata fetches the tag-ready detail record for one track.
func (client *Client) TrackMetadata(ctx context.Context, id string) (*entity.TrackDetail, error) {
	track, err := client.client.GetTrack(ctx, spotifyapi.ID(id))
	if err != nil {
		return nil, err
	}

	names := artistNames(track.Artists)
	return &entity.TrackDetail{
		Title:       track.Name,
		Artist:      strings.Join(names, ", "),
		Album:       track.Album.Name,
		Year:        releaseYear(track.Album.ReleaseDate),
		ArtworkURL:  artworkURL(track.Album.Images, true),
		TrackNumber: int(track.TrackNumber),
		DiscNumber:  int(track.DiscNumber),
		DurationMS:  int(track.Duration),
	}, nil
}

func asTrack(track *spotifyapi.FullTrack) entity.Track {
	names := artistNames(track.Artists)
	return entity.Track{
		ID:         track.ID.String(),
		Title:      track.Name,
		Artist:     strings.Join(names, ", "),
		Artists:    names,
		Album:      track.Album.Name,
		ArtworkURL: artworkURL(track.Album.Images, false),
		DurationMS: int(track.Duration),
		Popularity: int(track.Popularity),
	}
}

func artistNames(artists []spotifyapi.SimpleArtist) []string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		names = append(names, artist.Name)
	}
	return names
}

// artworkURL picks the smallest image for previews and the largest for
// final tagging.
func artworkURL(images []spotifyapi.Image, largest bool) string {
	if len(images) == 0 {
		return ""
	}
	sorted := make([]spotifyapi.Image, len(images))
	copy(sorted, images)
	sort.Slice(sorted, func(i, j int) bool {
		if largest {
			return sorted[i].Width > sorted[j].Width
		}
		return sorted[i].Width < sorted[j].Width
	})
	return sorted[0].URL
}

func releaseYear(date string) string {
	if date == "" {
		return ""
	}
	return strings.SplitN(date, "-", 2)[0]
}
