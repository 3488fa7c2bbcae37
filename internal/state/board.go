package state

import (
	"image"
	"log"

	"DragBoard/internal/geometry"
)

// DefaultFrame is where every new image is placed. New images are not
// offset to avoid the ones already on the board.
var DefaultFrame = geometry.NewRect(150, 150, 150, 150)

// Board owns the placed images in z-order and keeps at most one of them
// selected. All methods must be called from the UI goroutine.
type Board struct {
	items        []*Item
	selected     *Item
	trash        geometry.Rect
	trashVisible bool
	frame        geometry.Rect
	logger       *log.Logger
	batchDepth   int

	OnItemAdded       func(it *Item)
	OnItemRemoved     func(it *Item)
	OnTrashVisibility func(visible bool)
}

var _ Delegate = (*Board)(nil)
var _ selectionBatcher = (*Board)(nil)

// NewBoard creates an empty board that places new images at DefaultFrame.
func NewBoard() *Board {
	return &Board{
		items:  make([]*Item, 0),
		frame:  DefaultFrame,
		logger: log.Default(),
	}
}

// SetLogger replaces the logger used for diagnostics.
func (b *Board) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	b.logger = l
}

// SetDefaultFrame changes the placement used by AddImage.
func (b *Board) SetDefaultFrame(r geometry.Rect) {
	if r.Empty() {
		b.logger.Printf("[board] ignoring empty default frame %+v", r)
		return
	}
	b.frame = r
}

// SetTrashRect moves the drop target, in board coordinates.
func (b *Board) SetTrashRect(r geometry.Rect) { b.trash = r }

// TrashRect returns the drop target.
func (b *Board) TrashRect() geometry.Rect { return b.trash }

// TrashVisible reports whether the drop target is shown.
func (b *Board) TrashVisible() bool { return b.trashVisible }

// Selected returns the current selection, or nil.
func (b *Board) Selected() *Item { return b.selected }

// Items returns a copy of the placed images, bottom-most first.
func (b *Board) Items() []*Item {
	items := make([]*Item, len(b.items))
	copy(items, b.items)
	return items
}

// Len returns the number of placed images.
func (b *Board) Len() int { return len(b.items) }

// AddImage places src at the default frame on top of every other image and
// makes it the only selection.
func (b *Board) AddImage(src image.Image) *Item {
	it := NewItem(src, b.frame)
	b.logger.Printf("[board] adding image %s", it.ID)

	it.SetDelegate(b)
	b.items = append(b.items, it)
	if b.OnItemAdded != nil {
		b.OnItemAdded(it)
	}

	b.selectionBatch(func() {
		b.DeselectOthers(it)
		it.SetSelected(true)
	})
	return it
}

// AssetChosen is the entry point for images picked by the host.
func (b *Board) AssetChosen(src image.Image) {
	if src == nil {
		b.logger.Printf("[board] ignoring nil asset")
		return
	}
	b.AddImage(src)
}

// DeselectOthers clears the selected flag on every item except it.
func (b *Board) DeselectOthers(it *Item) {
	if b.indexOf(it) < 0 {
		return
	}
	b.selectionBatch(func() {
		for _, other := range b.items {
			if other != it {
				other.SetSelected(false)
			}
		}
	})
}

// SelectionStarted records it as the selection and shows the trash. Any
// other selected item is deselected first, whatever path selected it.
func (b *Board) SelectionStarted(it *Item) {
	if b.indexOf(it) < 0 {
		b.logger.Printf("[board] item %s is not on the board, selection ignored", it.ID)
		return
	}
	b.selectionBatch(func() {
		for _, other := range b.items {
			if other != it && other.selected {
				other.SetSelected(false)
			}
		}
		b.selected = it
	})
}

// SelectionStopped clears the selection if it was it.
func (b *Board) SelectionStopped(it *Item) {
	if b.selected == it {
		b.selected = nil
	}
	b.syncTrash()
}

// CheckDrop deletes it as soon as its frame overlaps the trash.
func (b *Board) CheckDrop(it *Item) {
	if !it.Frame().Intersects(b.trash) {
		return
	}
	b.logger.Printf("[board] item %s dropped on trash", it.ID)
	b.remove(it)
}

// DeleteSelected removes the selected image. It reports false, and only
// logs, when nothing on the board is selected.
func (b *Board) DeleteSelected() bool {
	if b.selected == nil || b.indexOf(b.selected) < 0 {
		b.logger.Printf("[board] delete requested but no selected image is on the board")
		return false
	}
	return b.remove(b.selected)
}

func (b *Board) remove(it *Item) bool {
	idx := b.indexOf(it)
	if idx < 0 {
		b.logger.Printf("[board] item %s not found", it.ID)
		return false
	}
	b.items = append(b.items[:idx], b.items[idx+1:]...)
	it.disarm()
	if b.OnItemRemoved != nil {
		b.OnItemRemoved(it)
	}
	it.SetSelected(false)
	if b.selected == it {
		b.selected = nil
	}
	b.syncTrash()
	b.logger.Printf("[board] removed image %s, %d left", it.ID, len(b.items))
	return true
}

// selectionBatch runs fn as one selection change: trash visibility is
// reported once, after the outermost batch returns.
func (b *Board) selectionBatch(fn func()) {
	b.batchDepth++
	defer func() {
		b.batchDepth--
		b.syncTrash()
	}()
	fn()
}

// syncTrash makes the trash visible iff something is selected.
func (b *Board) syncTrash() {
	if b.batchDepth > 0 {
		return
	}
	v := b.selected != nil
	if b.trashVisible == v {
		return
	}
	b.trashVisible = v
	if b.OnTrashVisibility != nil {
		b.OnTrashVisibility(v)
	}
}

func (b *Board) indexOf(it *Item) int {
	for i, candidate := range b.items {
		if candidate == it {
			return i
		}
	}
	return -1
}
