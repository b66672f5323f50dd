// Package preview rasterizes extracted icons to PNG.
package preview

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/go-playground/colors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/goosestudio/acficons/pkg/errors"
)

// DefaultSize is the edge length used when Options.Size is not set.
const DefaultSize = 128

// Options controls rendering.
type Options struct {
	Size int    // output edge length in pixels
	Tint string // optional colour ("#3b82f6", "rgb(59,130,246)")
}

// RenderPNG draws svg centered on a transparent square canvas, scaled to
// fit while keeping its aspect ratio, and returns the PNG encoding.
func RenderPNG(svg []byte, opts Options) ([]byte, error) {
	img, err := Render(svg, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Render is RenderPNG without the encoding step.
func Render(svg []byte, opts Options) (*image.NRGBA, error) {
	size := opts.Size
	if size <= 0 {
		size = DefaultSize
	}

	var tint *color.NRGBA
	if opts.Tint != "" {
		c, err := parseTint(opts.Tint)
		if err != nil {
			return nil, err
		}
		tint = &c
	}

	doc, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse svg")
	}

	w, h := doc.ViewBox.W, doc.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	scale := float64(size) / max(w, h)
	outW, outH := int(w*scale), int(h*scale)
	offX, offY := (size-outW)/2, (size-outH)/2
	doc.SetTarget(float64(offX), float64(offY), float64(outW), float64(outH))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	doc.Draw(rasterx.NewDasher(size, size, scanner), 1.0)

	out := imaging.Clone(rgba)
	if tint != nil {
		recolor(out, *tint)
	}
	return out, nil
}

// recolor paints every visible pixel with c, keeping the pixel's coverage.
func recolor(img *image.NRGBA, c color.NRGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if a == 0 {
			continue
		}
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = uint8(uint16(a) * uint16(c.A) / 0xff)
	}
}

func parseTint(s string) (color.NRGBA, error) {
	c, err := colors.Parse(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid tint %q", s)
	}
	rgba := c.ToRGBA()
	return color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: uint8(rgba.A*0xff + 0.5)}, nil
}
