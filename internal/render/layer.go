// Package render rasterizes placed images with their transform applied.
package render

import (
	"image"
	"image/color"
	"math"

	"DragBoard/internal/geometry"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// maxLayerPixels bounds the raster size of one layer. Larger layers are
// rendered at a lower resolution and stretched by the canvas.
const maxLayerPixels = 2048 * 2048

// OutlineColor is the border drawn around a selected image.
var OutlineColor = color.NRGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}

// Layer draws src aspect-filled into a frame of the given size, rotated and
// scaled about the frame center. It returns the raster together with the
// rectangle, in board coordinates, it should be displayed in.
func Layer(src image.Image, size geometry.Size, t geometry.Transform) (*image.NRGBA, geometry.Rect) {
	bounds := t.Bounds(size)
	w := int(math.Ceil(bounds.Width))
	h := int(math.Ceil(bounds.Height))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	resolution := 1.0
	if px := float64(w) * float64(h); px > maxLayerPixels {
		resolution = math.Sqrt(maxLayerPixels / px)
		w = max(1, int(float64(w)*resolution))
		h = max(1, int(float64(h)*resolution))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if src == nil || size.Width <= 0 || size.Height <= 0 {
		return dst, bounds
	}
	sr := AspectFill(src.Bounds(), size)
	if sr.Empty() {
		return dst, bounds
	}

	k := t.Scale * resolution * size.Width / float64(sr.Dx())
	sin, cos := math.Sincos(t.Rotation)
	a, b := k*cos, -k*sin
	d, e := k*sin, k*cos
	scx := float64(sr.Min.X) + float64(sr.Dx())/2
	scy := float64(sr.Min.Y) + float64(sr.Dy())/2
	dcx := float64(w) / 2
	dcy := float64(h) / 2

	m := f64.Aff3{
		a, b, dcx - a*scx - b*scy,
		d, e, dcy - d*scx - e*scy,
	}
	draw.BiLinear.Transform(dst, m, src, sr, draw.Over, nil)
	return dst, bounds
}

// AspectFill returns the centered part of r that has the aspect ratio of
// size, so that scaling it to size fills the frame without distortion.
func AspectFill(r image.Rectangle, size geometry.Size) image.Rectangle {
	if r.Empty() || size.Width <= 0 || size.Height <= 0 {
		return image.Rectangle{}
	}
	target := size.Width / size.Height
	w, h := float64(r.Dx()), float64(r.Dy())
	if w/h > target {
		cw := int(math.Round(h * target))
		x0 := r.Min.X + (r.Dx()-cw)/2
		return image.Rect(x0, r.Min.Y, x0+cw, r.Max.Y)
	}
	ch := int(math.Round(w / target))
	y0 := r.Min.Y + (r.Dy()-ch)/2
	return image.Rect(r.Min.X, y0, r.Max.X, y0+ch)
}

// Outline returns src enlarged by ratio as a silhouette in c, with the
// original drawn centered on top.
func Outline(src image.Image, ratio float64, c color.Color) *image.NRGBA {
	b := src.Bounds()
	if ratio < 1 {
		ratio = 1
	}
	ow := int(math.Round(float64(b.Dx()) * ratio))
	oh := int(math.Round(float64(b.Dy()) * ratio))
	dst := image.NewNRGBA(image.Rect(0, 0, ow, oh))
	if b.Empty() {
		return dst
	}

	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	// Keep the silhouette's alpha, replace its color.
	fill := color.NRGBAModel.Convert(c).(color.NRGBA)
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = fill.R
		dst.Pix[i+1] = fill.G
		dst.Pix[i+2] = fill.B
		dst.Pix[i+3] = uint8(uint16(dst.Pix[i+3]) * uint16(fill.A) / 0xFF)
	}

	at := image.Pt((ow-b.Dx())/2, (oh-b.Dy())/2)
	draw.Copy(dst, at, src, b, draw.Over, nil)
	return dst
}
