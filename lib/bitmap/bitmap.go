// Package bitmap resolves icon handles to square bitmaps.
//
// Handles are slash separated paths into an fs.FS, or names registered with
// Register. Raster formats are decoded and scaled; SVG icons are rasterized
// at the requested size.
package bitmap

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/timeline/tlstep"
)

var rasterExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

type UnsupportedResourceError struct {
	Handle tlstep.IconHandle
	Ext    string
}

func (e *UnsupportedResourceError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("icon %q has no file extension", e.Handle)
	}
	return fmt.Sprintf("icon %q has unsupported type %q", e.Handle, e.Ext)
}

type Provider struct {
	fsys   fs.FS
	images map[tlstep.IconHandle]image.Image
}

// NewProvider reads icons from fsys. fsys may be nil when every icon is
// registered in code.
func NewProvider(fsys fs.FS) *Provider {
	return &Provider{
		fsys:   fsys,
		images: make(map[tlstep.IconHandle]image.Image),
	}
}

// Register makes img available under h. Registered images take precedence
// over files.
func (p *Provider) Register(h tlstep.IconHandle, img image.Image) {
	p.images[h] = img
}

func (p *Provider) Bitmap(h tlstep.IconHandle, size int) (_ image.Image, err error) {
	defer xdefer.Errorf(&err, "failed to load icon %q", h)

	if size <= 0 {
		return nil, fmt.Errorf("invalid icon size %d", size)
	}
	if img, ok := p.images[h]; ok {
		return Scale(img, size), nil
	}

	ext := strings.ToLower(path.Ext(string(h)))
	_, raster := rasterExts[ext]
	if !raster && ext != ".svg" {
		return nil, &UnsupportedResourceError{Handle: h, Ext: ext}
	}
	if p.fsys == nil {
		return nil, fmt.Errorf("no file system: %w", fs.ErrNotExist)
	}
	b, err := fs.ReadFile(p.fsys, string(h))
	if err != nil {
		return nil, err
	}

	if ext == ".svg" {
		return RasterizeSVG(b, size)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return Scale(img, size), nil
}

// Scale resizes img into a size x size RGBA image.
func Scale(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	if b := img.Bounds(); b.Dx() == size && b.Dy() == size {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		return dst
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// RasterizeSVG draws an SVG document into a size x size RGBA image.
func RasterizeSVG(svg []byte, size int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1)
	return dst, nil
}
