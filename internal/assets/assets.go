// Package assets provides the built-in images offered by the picker.
package assets

import (
	"image"
	"image/color"
	"math"
)

const assetSize = 256

// Asset is one entry of the picker sheet.
type Asset struct {
	Name  string
	Image image.Image
}

// Builtin returns the images offered by the picker, in display order.
func Builtin() []Asset {
	return []Asset{
		{Name: "Image 1", Image: Sunset(assetSize)},
		{Name: "Image 2", Image: Checker(assetSize, 32)},
	}
}

// Sunset draws a vertical gradient with a filled disc near the horizon.
func Sunset(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	top := color.NRGBA{R: 0x2B, G: 0x1B, B: 0x54, A: 0xFF}
	bottom := color.NRGBA{R: 0xF2, G: 0x7C, B: 0x38, A: 0xFF}
	sun := color.NRGBA{R: 0xFF, G: 0xD8, B: 0x4D, A: 0xFF}

	cx, cy := float64(size)/2, float64(size)*0.65
	radius := float64(size) * 0.2
	for y := 0; y < size; y++ {
		t := float64(y) / float64(max(size-1, 1))
		row := lerp(top, bottom, t)
		for x := 0; x < size; x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) <= radius {
				img.SetNRGBA(x, y, sun)
				continue
			}
			img.SetNRGBA(x, y, row)
		}
	}
	return img
}

// Checker draws a two-tone checkerboard with square cells.
func Checker(size, cell int) *image.NRGBA {
	if cell < 1 {
		cell = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}
	dark := color.NRGBA{R: 0x1B, G: 0x5E, B: 0x20, A: 0xFF}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
