package picker

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madihagulraiz771/Color-detection-sys/internal/imagebuf"
	"github.com/madihagulraiz771/Color-detection-sys/internal/palette"
)

func writeFixtures(t *testing.T) (imgPath, palPath string) {
	t.Helper()
	dir := t.TempDir()
	imgPath = filepath.Join(dir, "pic.png")
	palPath = filepath.Join(dir, "colors.csv")
	require.NoError(t, imaging.Save(imaging.New(3, 3, color.NRGBA{R: 250, G: 160, B: 5, A: 255}), imgPath))
	require.NoError(t, os.WriteFile(palPath, []byte(fixture), 0o644))
	return imgPath, palPath
}

func TestOpen(t *testing.T) {
	imgPath, palPath := writeFixtures(t)

	s, err := Open(imgPath, palPath)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Image().Width())

	require.NoError(t, s.Handle(ClickAt(1, 1)))
	assert.Equal(t, "Orange", s.Selection().Name)
}

func TestOpenMissingImage(t *testing.T) {
	_, palPath := writeFixtures(t)

	_, err := Open(filepath.Join(t.TempDir(), "nope.png"), palPath)
	assert.True(t, errors.Is(err, imagebuf.ErrNotFound))
}

func TestOpenMissingPalette(t *testing.T) {
	imgPath, _ := writeFixtures(t)

	_, err := Open(imgPath, filepath.Join(t.TempDir(), "nope.csv"))
	assert.True(t, errors.Is(err, palette.ErrNotFound))
}

func TestOpenEmptyPalette(t *testing.T) {
	imgPath, palPath := writeFixtures(t)
	require.NoError(t, os.WriteFile(palPath, nil, 0o644))

	_, err := Open(imgPath, palPath)
	assert.True(t, errors.Is(err, palette.ErrEmpty))
}
