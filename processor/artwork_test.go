package processor

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtwork(t *testing.T) {
	var encoded bytes.Buffer
	assert.Nil(t, png.Encode(&encoded, image.NewRGBA(image.Rect(0, 0, 1000, 800))))

	data, err := Artwork{}.Do(encoded.Bytes())
	assert.Nil(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	assert.Nil(t, err)
	assert.LessOrEqual(t, decoded.Bounds().Dx(), artworkMaxEdge)
	assert.LessOrEqual(t, decoded.Bounds().Dy(), artworkMaxEdge)
}

func TestArtworkSmallImagesKeepSize(t *testing.T) {
	var encoded bytes.Buffer
	assert.Nil(t, png.Encode(&encoded, image.NewRGBA(image.Rect(0, 0, 100, 100))))

	data, err := Artwork{}.Do(encoded.Bytes())
	assert.Nil(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	assert.Nil(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
}

func TestArtworkRejectsGarbage(t *testing.T) {
	_, err := Artwork{}.Do([]byte("not an image"))
	assert.Error(t, err)
}
