package ui

import (
	"image"
	"image/color"

	"DragBoard/internal/assets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Picker Entries ---
type assetSwatch struct {
	widget.BaseWidget
	Asset    assets.Asset
	OnTapped func(assets.Asset)
}

func newAssetSwatch(a assets.Asset, tapped func(assets.Asset)) *assetSwatch {
	s := &assetSwatch{Asset: a, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *assetSwatch) CreateRenderer() fyne.WidgetRenderer {
	thumb := canvas.NewImageFromImage(s.Asset.Image)
	thumb.FillMode = canvas.ImageFillContain
	thumb.SetMinSize(fyne.NewSquareSize(64))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	label := widget.NewLabel(s.Asset.Name)
	return widget.NewSimpleRenderer(container.NewHBox(container.NewStack(thumb, border), label))
}

func (s *assetSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Asset)
	}
}

// newPickerContent lists the assets; tapping one calls chosen with its image.
func newPickerContent(list []assets.Asset, chosen func(image.Image)) *fyne.Container {
	box := container.NewVBox()
	for _, a := range list {
		box.Add(newAssetSwatch(a, func(a assets.Asset) {
			chosen(a.Image)
		}))
	}
	return box
}

// ShowPicker presents the image picker sheet over win. The sheet closes as
// soon as an image is picked.
func ShowPicker(win fyne.Window, list []assets.Asset, chosen func(image.Image)) {
	var d dialog.Dialog
	content := newPickerContent(list, func(img image.Image) {
		d.Hide()
		chosen(img)
	})
	d = dialog.NewCustom("Choose an image", "Cancel", content, win)
	d.Show()
}
