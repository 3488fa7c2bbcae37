package geometry

import "math"

const (
	// MinScale is the smallest scale a transform may hold.
	MinScale = 1e-3

	// minScaleFactor replaces a non-positive incremental pinch factor.
	minScaleFactor = 1e-2
)

// Transform is the placement of one image: its center, rotation about
// that center in radians, and a uniform scale.
type Transform struct {
	TranslationX float64
	TranslationY float64
	Rotation     float64
	Scale        float64
}

// Identity returns a transform centered at the origin with scale 1.
func Identity() Transform {
	return Transform{Scale: 1}
}

// At returns an unrotated, unscaled transform centered on c.
func At(c Point) Transform {
	return Transform{TranslationX: c.X, TranslationY: c.Y, Scale: 1}
}

// Center returns the translation as a point.
func (t Transform) Center() Point {
	return Point{X: t.TranslationX, Y: t.TranslationY}
}

// ApplyRotationDelta adds an incremental rotation. The delta is the
// difference between the gesture's cumulative rotation and the last value
// the caller saw, so successive gestures keep accumulating.
func ApplyRotationDelta(t Transform, delta float64) Transform {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return t
	}
	t.Rotation += delta
	return t
}

// ApplyScaleDelta multiplies the scale by 1 + (cumulative - previous).
// Degenerate factors are clamped so the scale always stays positive.
func ApplyScaleDelta(t Transform, cumulative, previous float64) Transform {
	factor := 1 + (cumulative - previous)
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		factor = minScaleFactor
	}
	t.Scale = clampScale(t.Scale * factor)
	return t
}

// ApplyTranslation places the center at origin + translation, where
// translation is cumulative since the gesture began.
func ApplyTranslation(t Transform, origin, translation Point) Transform {
	c := origin.Add(translation)
	t.TranslationX = c.X
	t.TranslationY = c.Y
	return t
}

// Bounds returns the axis-aligned bounding rectangle of a frame of the
// given size after rotating and scaling it about its own center.
func (t Transform) Bounds(s Size) Rect {
	sin, cos := math.Sincos(t.Rotation)
	sin, cos = math.Abs(sin), math.Abs(cos)
	scale := clampScale(t.Scale)
	w := scale * (s.Width*cos + s.Height*sin)
	h := scale * (s.Width*sin + s.Height*cos)
	return RectAround(t.Center(), Size{Width: w, Height: h})
}

func clampScale(s float64) float64 {
	if math.IsNaN(s) || s < MinScale {
		return MinScale
	}
	return s
}
