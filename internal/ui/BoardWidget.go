package ui

import (
	"image"
	"image/color"
	"log"

	"DragBoard/internal/config"
	"DragBoard/internal/geometry"
	"DragBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var trashColor = color.NRGBA{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}

// BoardWidget hosts the placed images, the "Add Asset" button and the trash
// drop target.
type BoardWidget struct {
	widget.BaseWidget
	board  *state.Board
	style  itemStyle
	trashS float32
	margin float32

	layers    *fyne.Container
	views     map[string]*DraggableImage
	trash     *fyne.Container
	addButton *widget.Button

	// OnAddRequested asks the host to present the image picker.
	OnAddRequested func()
}

var _ fyne.Widget = (*BoardWidget)(nil)

func NewBoardWidget(cfg config.Config) *BoardWidget {
	b := &BoardWidget{
		board: state.NewBoard(),
		style: itemStyle{
			blinkPeriod:     cfg.Blink.Period(),
			minAlpha:        cfg.Blink.MinAlpha,
			outlineRatio:    cfg.Outline.Ratio,
			pinchPerScroll:  cfg.Gestures.PinchPerScroll,
			rotatePerScroll: cfg.Gestures.RotatePerScroll,
			gestureIdle:     cfg.Gestures.Idle(),
		},
		trashS: cfg.Trash.Size,
		margin: cfg.Trash.Margin,
		layers: container.NewWithoutLayout(),
		views:  make(map[string]*DraggableImage),
	}

	f := cfg.Board.DefaultFrame
	b.board.SetDefaultFrame(geometry.NewRect(f.X, f.Y, f.Width, f.Height))
	b.board.OnItemAdded = b.itemAdded
	b.board.OnItemRemoved = b.itemRemoved
	b.board.OnTrashVisibility = b.setTrashVisible

	bg := canvas.NewRectangle(trashColor)
	icon := widget.NewIcon(theme.DeleteIcon())
	b.trash = container.NewStack(bg, icon)
	b.trash.Hide() // Only shown while an image is selected

	b.addButton = widget.NewButton("Add Asset", b.addAssetPressed)

	b.ExtendBaseWidget(b)
	return b
}

// Board returns the controller behind the widget.
func (b *BoardWidget) Board() *state.Board { return b.board }

// AssetChosen places an image picked by the host on the board.
func (b *BoardWidget) AssetChosen(img image.Image) {
	b.board.AssetChosen(img)
}

// DeleteSelected removes the selected image, if any.
func (b *BoardWidget) DeleteSelected() bool {
	return b.board.DeleteSelected()
}

// View returns the widget displaying the item with the given ID.
func (b *BoardWidget) View(id string) *DraggableImage {
	return b.views[id]
}

func (b *BoardWidget) addAssetPressed() {
	log.Println("[ui] add asset pressed")
	if b.OnAddRequested != nil {
		b.OnAddRequested()
	}
}

func (b *BoardWidget) itemAdded(it *state.Item) {
	v := newDraggableImage(it, b.style)
	it.SetView(v)
	b.views[it.ID] = v
	b.layers.Add(v)
}

func (b *BoardWidget) itemRemoved(it *state.Item) {
	v, ok := b.views[it.ID]
	if !ok {
		return
	}
	delete(b.views, it.ID)
	v.pinch.End()
	v.rotate.End()
	v.StopBlink()
	// A removed item keeps receiving the tail of its gestures.
	it.SetView(nil)
	b.layers.Remove(v)
}

func (b *BoardWidget) setTrashVisible(visible bool) {
	if visible {
		b.trash.Show()
	} else {
		b.trash.Hide()
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(theme.Color(theme.ColorNameBackground))
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.layers, r.board.addButton, r.board.trash}
}

// Layout puts the button in the bottom-left corner and the trash in the
// bottom-right corner, vertically centered on the button.
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	b := r.board
	r.background.Resize(size)
	b.layers.Move(fyne.NewPos(0, 0))
	b.layers.Resize(size)

	btn := b.addButton.MinSize()
	btnPos := fyne.NewPos(b.margin, size.Height-b.margin-btn.Height)
	b.addButton.Move(btnPos)
	b.addButton.Resize(btn)

	centerY := btnPos.Y + btn.Height/2
	trashPos := fyne.NewPos(size.Width-b.margin-b.trashS, centerY-b.trashS/2)
	b.trash.Move(trashPos)
	b.trash.Resize(fyne.NewSquareSize(b.trashS))

	b.board.SetTrashRect(geometry.NewRect(
		float64(trashPos.X), float64(trashPos.Y), float64(b.trashS), float64(b.trashS)))
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Refresh() {
	r.background.FillColor = theme.Color(theme.ColorNameBackground)
	r.background.Refresh()
	r.board.layers.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
