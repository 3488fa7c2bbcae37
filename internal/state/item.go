package state

import (
	"image"

	"DragBoard/internal/geometry"

	"github.com/google/uuid"
)

// Phase is the stage of a continuous gesture.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Delegate receives the side effects of an item's gestures. The board
// implements it; an item never owns its delegate.
type Delegate interface {
	SelectionStarted(it *Item)
	SelectionStopped(it *Item)
	DeselectOthers(it *Item)
	CheckDrop(it *Item)
}

// selectionBatcher is implemented by delegates that want the steps of one
// selection change reported as a single update.
type selectionBatcher interface {
	selectionBatch(fn func())
}

// View is the visual side of an item.
type View interface {
	StopBlink()
	ShowSelected()
	ShowIdle()
	TransformChanged()
}

// Item is one image placed on the board together with its gesture state.
type Item struct {
	ID     string
	Source image.Image
	Size   geometry.Size

	transform geometry.Transform
	selected  bool

	panOrigin    geometry.Point
	lastRotation float64
	lastScale    float64

	delegate  Delegate
	view      View
	dropArmed bool
}

// NewItem creates an unselected item whose frame is the given rectangle.
func NewItem(src image.Image, frame geometry.Rect) *Item {
	return &Item{
		ID:        uuid.NewString(),
		Source:    src,
		Size:      frame.Size(),
		transform: geometry.At(frame.Center()),
		lastScale: 1,
		delegate:  nopDelegate{},
		view:      nopView{},
	}
}

// SetDelegate wires the item to its board and arms the drop check.
func (it *Item) SetDelegate(d Delegate) {
	if d == nil {
		d = nopDelegate{}
	}
	it.delegate = d
	it.dropArmed = true
}

// SetView attaches the item's visual representation.
func (it *Item) SetView(v View) {
	if v == nil {
		v = nopView{}
	}
	it.view = v
}

// Transform returns the accumulated placement.
func (it *Item) Transform() geometry.Transform { return it.transform }

// Center returns the current center in board coordinates.
func (it *Item) Center() geometry.Point { return it.transform.Center() }

// Frame returns the bounding rectangle of the transformed image.
func (it *Item) Frame() geometry.Rect { return it.transform.Bounds(it.Size) }

// Selected reports whether the item is the board's selection.
func (it *Item) Selected() bool { return it.selected }

// SetSelected stops any running blink, applies the visual state for sel and
// then notifies the delegate. The sequence runs even when sel is unchanged.
func (it *Item) SetSelected(sel bool) {
	it.selected = sel
	it.view.StopBlink()
	if sel {
		it.view.ShowSelected()
		it.delegate.SelectionStarted(it)
		return
	}
	it.view.ShowIdle()
	it.delegate.SelectionStopped(it)
}

// Pan moves the item by a translation that is cumulative since the gesture
// began. Beginning a pan makes this item the only selection. Every phase,
// Ended included, applies the translation and checks for a drop.
func (it *Item) Pan(phase Phase, translation geometry.Point) {
	if phase == PhaseBegan {
		it.selectExclusively()
		it.panOrigin = it.transform.Center()
	}
	it.transform = geometry.ApplyTranslation(it.transform, it.panOrigin, translation)
	it.view.TransformChanged()
	if it.dropArmed {
		it.delegate.CheckDrop(it)
	}
}

func (it *Item) selectExclusively() {
	sel := func() {
		it.delegate.DeselectOthers(it)
		it.SetSelected(true)
	}
	if b, ok := it.delegate.(selectionBatcher); ok {
		b.selectionBatch(sel)
		return
	}
	sel()
}

// Rotate applies the change in the gesture's cumulative rotation since the
// last update.
func (it *Item) Rotate(phase Phase, rotation float64) {
	if phase == PhaseEnded {
		it.lastRotation = 0
		return
	}
	it.transform = geometry.ApplyRotationDelta(it.transform, rotation-it.lastRotation)
	it.lastRotation = rotation
	it.view.TransformChanged()
}

// Pinch applies the change in the gesture's cumulative scale since the last
// update.
func (it *Item) Pinch(phase Phase, scale float64) {
	if phase == PhaseEnded {
		it.lastScale = 1
		return
	}
	it.transform = geometry.ApplyScaleDelta(it.transform, scale, it.lastScale)
	it.lastScale = scale
	it.view.TransformChanged()
}

// DoubleTap is recognized but has no effect yet.
func (it *Item) DoubleTap() {}

// disarm stops the item from triggering drop checks after removal.
func (it *Item) disarm() {
	it.dropArmed = false
}

type nopDelegate struct{}

func (nopDelegate) SelectionStarted(*Item) {}
func (nopDelegate) SelectionStopped(*Item) {}
func (nopDelegate) DeselectOthers(*Item)   {}
func (nopDelegate) CheckDrop(*Item)        {}

type nopView struct{}

func (nopView) StopBlink()        {}
func (nopView) ShowSelected()     {}
func (nopView) ShowIdle()         {}
func (nopView) TransformChanged() {}
