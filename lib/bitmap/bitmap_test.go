package bitmap_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oss.terrastruct.com/timeline/lib/bitmap"
	"oss.terrastruct.com/timeline/tlstep"
)

const circleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
<circle cx="5" cy="5" r="5" fill="#ff0000"/>
</svg>`

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRasterIcon(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"icons/done.png": {Data: solidPNG(t, 8, 8, color.RGBA{0, 0, 255, 255})},
	}
	p := bitmap.NewProvider(fsys)

	img, err := p.Bitmap("icons/done.png", 32)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())

	r, g, b, a := img.At(16, 16).RGBA()
	assert.Less(t, r, uint32(0x100))
	assert.Less(t, g, uint32(0x100))
	assert.Greater(t, b, uint32(0xff00))
	assert.Greater(t, a, uint32(0xff00))
}

func TestSVGIcon(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"dot.svg": {Data: []byte(circleSVG)},
	}
	p := bitmap.NewProvider(fsys)

	img, err := p.Bitmap("dot.svg", 20)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 20), img.Bounds())

	// the center is painted, the corner is outside the circle
	r, _, _, a := img.At(10, 10).RGBA()
	assert.Greater(t, r, uint32(0))
	assert.Greater(t, a, uint32(0))
	_, _, _, a = img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestUnsupported(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"notes.txt": {Data: []byte("hello")},
	}
	p := bitmap.NewProvider(fsys)

	for _, h := range []string{"notes.txt", "noext", "shape.xml"} {
		_, err := p.Bitmap(tlstep.IconHandle(h), 16)
		var unsupported *bitmap.UnsupportedResourceError
		require.True(t, errors.As(err, &unsupported), h)
	}
}

func TestMissing(t *testing.T) {
	t.Parallel()

	p := bitmap.NewProvider(fstest.MapFS{})
	_, err := p.Bitmap("gone.png", 16)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = bitmap.NewProvider(nil).Bitmap("gone.png", 16)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = p.Bitmap("gone.png", 0)
	assert.Error(t, err)
}

func TestCorruptImage(t *testing.T) {
	t.Parallel()

	p := bitmap.NewProvider(fstest.MapFS{"bad.png": {Data: []byte("nope")}})
	_, err := p.Bitmap("bad.png", 16)
	assert.Error(t, err)
}

func TestRegistered(t *testing.T) {
	t.Parallel()

	p := bitmap.NewProvider(nil)
	src := image.NewRGBA(image.Rect(0, 0, 24, 24))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	p.Register("marker", src)

	img, err := p.Bitmap("marker", 24)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.At(0, 0))
	// the registered image is copied, not returned
	assert.NotSame(t, src, img)

	img, err = p.Bitmap("marker", 12)
	require.NoError(t, err)
	assert.Equal(t, 12, img.Bounds().Dx())
}
