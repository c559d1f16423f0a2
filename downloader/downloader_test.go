package downloader

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/stretchr/testify/assert"
	cmdutil "github.com/wavecrossed/tubefy/util/cmd"
)

func TestParseQuality(t *testing.T) {
	quality, err := ParseQuality("320k")
	assert.Nil(t, err)
	assert.Equal(t, QualityBest, quality)

	_, err = ParseQuality("640k")
	assert.Error(t, err)
}

func TestAudio(t *testing.T) {
	var got []string
	patch := gomonkey.ApplyFunc(cmdutil.YouTubeDl, func(url, path, bitrate string) error {
		got = []string{url, path, bitrate}
		return nil
	})
	defer patch.Reset()

	assert.Nil(t, Audio("https://youtu.be/x", "/tmp/x.mp3", QualityBest))
	assert.Equal(t, []string{"https://youtu.be/x", "/tmp/x.mp3", "320K"}, got)
}

func TestArtwork(t *testing.T) {
	var encoded bytes.Buffer
	assert.Nil(t, png.Encode(&encoded, image.NewRGBA(image.Rect(0, 0, 8, 8))))

	patch := gomonkey.ApplyFunc(http.Get, func(_ string) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader(encoded.Bytes())),
		}, nil
	})
	defer patch.Reset()

	var (
		path    = filepath.Join(t.TempDir(), "artwork.jpg")
		channel = make(chan []byte, 1)
	)
	assert.Nil(t, Artwork("https://upstream/cover.png", path, channel))
	assert.FileExists(t, path)

	data := <-channel
	assert.NotEmpty(t, data)
}

func TestArtworkUpstreamError(t *testing.T) {
	patch := gomonkey.ApplyFunc(http.Get, func(_ string) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	})
	defer patch.Reset()

	err := Artwork("https://upstream/cover.png", filepath.Join(t.TempDir(), "artwork.jpg"))
	assert.Error(t, err)
}
