package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"DragBoard/internal/geometry"

	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestAspectFill(t *testing.T) {
	tests := []struct {
		name string
		r    image.Rectangle
		size geometry.Size
		want image.Rectangle
	}{
		{"same aspect", image.Rect(0, 0, 100, 100), geometry.NewSize(150, 150), image.Rect(0, 0, 100, 100)},
		{"wide source", image.Rect(0, 0, 200, 100), geometry.NewSize(150, 150), image.Rect(50, 0, 150, 100)},
		{"tall source", image.Rect(0, 0, 100, 300), geometry.NewSize(100, 100), image.Rect(0, 100, 100, 200)},
		{"offset bounds", image.Rect(10, 10, 110, 60), geometry.NewSize(50, 50), image.Rect(35, 10, 85, 60)},
		{"empty size", image.Rect(0, 0, 10, 10), geometry.NewSize(0, 10), image.Rectangle{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, AspectFill(tt.r, tt.size))
		})
	}
}

func TestLayerUnrotated(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	src := solid(40, 20, red)
	tr := geometry.At(geometry.NewPoint(100, 100))

	img, bounds := Layer(src, geometry.NewSize(60, 60), tr)
	require.Equal(t, geometry.NewRect(70, 70, 60, 60), bounds)
	require.Equal(t, image.Rect(0, 0, 60, 60), img.Bounds())
	require.Equal(t, red, img.NRGBAAt(30, 30))
	require.Equal(t, uint8(255), img.NRGBAAt(1, 1).A)
}

func TestLayerRotatedLeavesCornersClear(t *testing.T) {
	src := solid(10, 10, color.NRGBA{G: 255, A: 255})
	tr := geometry.At(geometry.NewPoint(0, 0))
	tr.Rotation = math.Pi / 4

	img, bounds := Layer(src, geometry.NewSize(100, 100), tr)
	require.InDelta(t, 100*math.Sqrt2, bounds.Width, 1e-6)
	w := img.Bounds().Dx()
	require.Equal(t, int(math.Ceil(bounds.Width)), w)
	require.Zero(t, img.NRGBAAt(0, 0).A)
	require.Zero(t, img.NRGBAAt(w-1, w-1).A)
	require.Equal(t, uint8(255), img.NRGBAAt(w/2, w/2).A)
}

func TestLayerScaled(t *testing.T) {
	src := solid(10, 10, color.White)
	tr := geometry.At(geometry.NewPoint(50, 50))
	tr.Scale = 0.5

	img, bounds := Layer(src, geometry.NewSize(100, 100), tr)
	require.Equal(t, geometry.NewRect(25, 25, 50, 50), bounds)
	require.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())
}

func TestLayerCapsResolution(t *testing.T) {
	src := solid(4, 4, color.White)
	tr := geometry.At(geometry.NewPoint(0, 0))
	tr.Scale = 40

	img, bounds := Layer(src, geometry.NewSize(150, 150), tr)
	require.InDelta(t, 6000, bounds.Width, 1e-9)
	px := img.Bounds().Dx() * img.Bounds().Dy()
	require.LessOrEqual(t, px, maxLayerPixels)
	require.Equal(t, uint8(255), img.NRGBAAt(img.Bounds().Dx()/2, img.Bounds().Dy()/2).A)
}

func TestLayerNilSource(t *testing.T) {
	img, bounds := Layer(nil, geometry.NewSize(10, 10), geometry.Identity())
	require.Equal(t, geometry.NewRect(-5, -5, 10, 10), bounds)
	require.Zero(t, img.NRGBAAt(5, 5).A)
}

func TestOutline(t *testing.T) {
	blue := color.NRGBA{B: 255, A: 255}
	src := solid(100, 50, blue)

	out := Outline(src, 1.08, OutlineColor)
	require.Equal(t, image.Rect(0, 0, 108, 54), out.Bounds())
	require.Equal(t, OutlineColor, out.NRGBAAt(0, 0))
	require.Equal(t, OutlineColor, out.NRGBAAt(107, 53))
	require.Equal(t, blue, out.NRGBAAt(54, 27))
}

func TestOutlineKeepsTransparency(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	out := Outline(src, 1.5, OutlineColor)
	require.Equal(t, image.Rect(0, 0, 30, 30), out.Bounds())
	require.Zero(t, out.NRGBAAt(0, 0).A)
	require.Zero(t, out.NRGBAAt(15, 15).A)
}
