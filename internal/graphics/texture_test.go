package graphics_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"gllights/internal/graphics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG writes a 2x3 image whose rows are red, green and blue from the top.
func writePNG(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	rows := []color.NRGBA{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	for y, c := range rows {
		for x := 0; x < 2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "rows.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestDecodeImageFlipsRows(t *testing.T) {
	rgba, err := graphics.DecodeImage(writePNG(t))
	require.NoError(t, err)

	assert.Equal(t, 2, rgba.Bounds().Dx())
	assert.Equal(t, 3, rgba.Bounds().Dy())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, rgba.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, rgba.RGBAAt(1, 2))
}

func TestDecodeImageMissing(t *testing.T) {
	_, err := graphics.DecodeImage(filepath.Join(t.TempDir(), "missing.png"))

	var loadErr *graphics.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDecodeImageGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))

	_, err := graphics.DecodeImage(path)
	var loadErr *graphics.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestLoadTextureMissingFailsBeforeUpload(t *testing.T) {
	tex, err := graphics.LoadTexture(filepath.Join(t.TempDir(), "missing.png"))
	var loadErr *graphics.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Zero(t, tex.ID)
}

func TestLoadTexture(t *testing.T) {
	path := writePNG(t)
	onGL(t, func() {
		tex, err := graphics.LoadTexture(path)
		if !assert.NoError(t, err) {
			return
		}
		defer tex.Delete()

		assert.NotZero(t, tex.ID)
		assert.Equal(t, 2, tex.Width)
		assert.Equal(t, 3, tex.Height)
	})
}
