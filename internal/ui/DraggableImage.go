package ui

import (
	"image"
	"time"

	"DragBoard/internal/geometry"
	"DragBoard/internal/render"
	"DragBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// itemStyle is the look and feel shared by every image on a board.
type itemStyle struct {
	blinkPeriod     time.Duration
	minAlpha        float32
	outlineRatio    float64
	pinchPerScroll  float64
	rotatePerScroll float64
	gestureIdle     time.Duration
}

// DraggableImage displays one placed image and feeds pointer input into
// its state.Item.
type DraggableImage struct {
	widget.BaseWidget
	item  *state.Item
	style itemStyle

	img      *canvas.Image
	outlined image.Image
	outline  bool
	blink    *fyne.Animation

	dragging  bool
	dragTotal fyne.Delta
	pinch     *wheelGesture
	rotate    *wheelGesture
}

var _ fyne.Widget = (*DraggableImage)(nil)
var _ fyne.Draggable = (*DraggableImage)(nil)
var _ fyne.DoubleTappable = (*DraggableImage)(nil)
var _ fyne.Scrollable = (*DraggableImage)(nil)
var _ state.View = (*DraggableImage)(nil)

func newDraggableImage(it *state.Item, style itemStyle) *DraggableImage {
	d := &DraggableImage{
		item:  it,
		style: style,
		img:   canvas.NewImageFromImage(nil),
	}
	d.img.FillMode = canvas.ImageFillStretch
	d.img.ScaleMode = canvas.ImageScaleSmooth
	d.pinch = newWheelGesture(1, style.pinchPerScroll, style.gestureIdle, it.Pinch)
	d.rotate = newWheelGesture(0, style.rotatePerScroll, style.gestureIdle, it.Rotate)
	d.ExtendBaseWidget(d)
	d.redraw()
	return d
}

// Item returns the state behind this view.
func (d *DraggableImage) Item() *state.Item { return d.item }

func (d *DraggableImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.img)
}

// --- Gestures ---

func (d *DraggableImage) Dragged(e *fyne.DragEvent) {
	if !d.dragging {
		d.dragging = true
		d.dragTotal = e.Dragged
		d.item.Pan(state.PhaseBegan, toPoint(d.dragTotal))
		return
	}
	d.dragTotal = fyne.NewDelta(d.dragTotal.DX+e.Dragged.DX, d.dragTotal.DY+e.Dragged.DY)
	d.item.Pan(state.PhaseChanged, toPoint(d.dragTotal))
}

func (d *DraggableImage) DragEnd() {
	if !d.dragging {
		return
	}
	d.dragging = false
	d.item.Pan(state.PhaseEnded, toPoint(d.dragTotal))
	d.dragTotal = fyne.Delta{}
}

// Scrolled maps the vertical wheel onto pinch and the horizontal wheel onto
// rotation.
func (d *DraggableImage) Scrolled(e *fyne.ScrollEvent) {
	d.pinch.Scroll(e.Scrolled.DY)
	d.rotate.Scroll(e.Scrolled.DX)
}

func (d *DraggableImage) DoubleTapped(*fyne.PointEvent) {
	d.item.DoubleTap()
}

// --- state.View ---

func (d *DraggableImage) StopBlink() {
	if d.blink != nil {
		d.blink.Stop()
		d.blink = nil
	}
	d.outline = false
	d.img.Translucency = 0
	d.redraw()
}

func (d *DraggableImage) ShowSelected() {
	d.outline = true
	d.redraw()
	d.startBlink()
}

func (d *DraggableImage) ShowIdle() {
	d.startBlink()
}

func (d *DraggableImage) TransformChanged() {
	d.redraw()
}

func (d *DraggableImage) startBlink() {
	fade := 1 - d.style.minAlpha
	d.blink = fyne.NewAnimation(d.style.blinkPeriod, func(p float32) {
		d.img.Translucency = float64(p * fade)
		d.img.Refresh()
	})
	d.blink.AutoReverse = true
	d.blink.RepeatCount = fyne.AnimationRepeatForever
	d.blink.Curve = fyne.AnimationEaseInOut
	d.blink.Start()
}

// redraw renders the item with its current transform and moves the widget
// over the transformed frame.
func (d *DraggableImage) redraw() {
	src := d.item.Source
	if d.outline && src != nil {
		if d.outlined == nil {
			d.outlined = render.Outline(src, d.style.outlineRatio, render.OutlineColor)
		}
		src = d.outlined
	}
	raster, bounds := render.Layer(src, d.item.Size, d.item.Transform())
	d.img.Image = raster
	d.Move(fyne.NewPos(float32(bounds.X), float32(bounds.Y)))
	d.Resize(fyne.NewSize(float32(bounds.Width), float32(bounds.Height)))
	d.img.Refresh()
}

func toPoint(d fyne.Delta) geometry.Point {
	return geometry.NewPoint(float64(d.DX), float64(d.DY))
}
