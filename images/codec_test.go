package images

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper functions to create test data for different formats
func getJPEGBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	err := jpeg.Encode(&buf, getTestImage(100, 100), nil)
	require.NoError(t, err)
	return buf.Bytes()
}

func getPNGBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	err := png.Encode(&buf, getTestImage(100, 100))
	require.NoError(t, err)
	return buf.Bytes()
}

func getWebPBytes(t *testing.T) []byte {
	var buf bytes.Buffer
	err := webp.Encode(&buf, getTestImage(100, 100), &webp.Options{Quality: 80})
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDecodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		format ImageFormat
	}{
		{"JPEG", getJPEGBytes(t), FormatJPEG},
		{"PNG", getPNGBytes(t), FormatPNG},
		{"WebP", getWebPBytes(t), FormatWebP},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.format, DetectFormat(tt.data))

			img := &Image{Data: tt.data}
			decoded, err := Decode(img)
			require.NoError(t, err)
			assert.Equal(t, tt.format, img.Format, "format should be detected")
			assert.Equal(t, 100, img.Width)
			assert.Equal(t, 100, img.Height)
			assert.Equal(t, 100, decoded.Bounds().Dx())

			r, g, _, _ := decoded.At(50, 50).RGBA()
			assert.InDelta(t, 255, int(r>>8), 8, "red channel")
			assert.InDelta(t, 0, int(g>>8), 8, "green channel")
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(nil)
	assert.Error(t, err, "nil image")

	_, err = Decode(&Image{Format: FormatPNG})
	assert.Error(t, err, "empty data")

	_, err = Decode(&Image{Format: FormatJPEG, Data: []byte("not a jpeg")})
	assert.Error(t, err, "bad JPEG")

	_, err = Decode(&Image{Data: []byte("not an image at all")})
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

// TestEncodeRoundTrip encodes through every supported format and decodes back.
func TestEncodeRoundTrip(t *testing.T) {
	src := getTestImage(16, 8)
	for _, format := range []ImageFormat{FormatJPEG, FormatPNG, FormatGIF, FormatWebP, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, format, 95))
			assert.Equal(t, format, DetectFormat(buf.Bytes()))

			decoded, err := DecodeReader(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 16, 8), decoded.Bounds())
		})
	}

	err := Encode(&bytes.Buffer{}, src, ImageFormat("heic"), 90)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "out.png")
	require.NoError(t, Save(path, getTestImage(12, 6), 0))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, loaded.Format)
	_, err = Decode(loaded)
	require.NoError(t, err)
	assert.Equal(t, 12, loaded.Width)
	assert.Equal(t, 6, loaded.Height)

	// Extension fallback for content that cannot be sniffed.
	odd := filepath.Join(dir, "mystery.jpg")
	require.NoError(t, os.WriteFile(odd, []byte("??"), 0o644))
	loaded, err = Load(odd)
	require.NoError(t, err)
	assert.Equal(t, FormatJPEG, loaded.Format)

	unknown := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(unknown, []byte("hello"), 0o644))
	_, err = Load(unknown)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	assert.True(t, errors.Is(Save(filepath.Join(dir, "x.heic"), getTestImage(1, 1), 0), ErrUnsupportedFormat))
}
