// Implements a raster backend to render path operations,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"

	"github.com/Jorge-Gonzalez/svg-paths-to-pixi/svgicon"
	"github.com/Jorge-Gonzalez/svg-paths-to-pixi/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgpath.Drawer = (*Renderer)(nil) // assert interface conformance

// Renderer rasterizes canonical path operations. Paths are filled
// with a plain color: style state is out of scope of this package.
type Renderer struct {
	filler *rasterx.Filler
}

// NewRenderer returns a renderer drawing on the given scanner.
// In addition to rasterizing lines, it can also rasterize quadratic
// and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{filler: rasterx.NewFiller(width, height, scanner)}
}

// toFixedP converts a point to the fixed geometry used by rasterx.
func toFixedP(p svgpath.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func (rd *Renderer) Start(a svgpath.Point) { rd.filler.Start(toFixedP(a)) }

func (rd *Renderer) Line(b svgpath.Point) { rd.filler.Line(toFixedP(b)) }

func (rd *Renderer) QuadBezier(b, c svgpath.Point) {
	rd.filler.QuadBezier(toFixedP(b), toFixedP(c))
}

func (rd *Renderer) CubeBezier(b, c, d svgpath.Point) {
	rd.filler.CubeBezier(toFixedP(b), toFixedP(c), toFixedP(d))
}

func (rd *Renderer) Stop(closeLoop bool) { rd.filler.Stop(closeLoop) }

// SetColor sets the fill color for the following paths.
func (rd *Renderer) SetColor(c color.Color) { rd.filler.SetColor(c) }

// Draw fills the accumulated paths.
func (rd *Renderer) Draw() { rd.filler.Draw() }

// Clear resets the accumulated paths.
func (rd *Renderer) Clear() { rd.filler.Clear() }

// RasterSVGIconToImage renders all the paths of the icon, filled
// black, into a new image sized from its viewBox.
func RasterSVGIconToImage(icon io.Reader) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	w, h := int(parsedIcon.ViewBox.W), int(parsedIcon.ViewBox.H)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	renderer := NewRenderer(w, h, scanner)
	renderer.SetColor(color.NRGBA{A: 0xff})
	for _, p := range parsedIcon.Paths {
		p.AddTo(renderer)
	}
	renderer.Draw()
	return img, nil
}

// RasterPathToImage compiles a bare path string and renders it,
// filled black, into a new image of the given size.
func RasterPathToImage(d string, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	renderer.SetColor(color.NRGBA{A: 0xff})
	if err := svgpath.DrawPath(d, renderer); err != nil {
		return nil, err
	}
	renderer.Draw()
	return img, nil
}
