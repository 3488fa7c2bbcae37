package ui

import (
	"log"

	"DragBoard/internal/assets"
	"DragBoard/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const appTitle = "Dragging images"

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow(appTitle)
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	// Create the interactive board widget
	board := NewBoardWidget(cfg)
	board.OnAddRequested = func() {
		ShowPicker(myWindow, assets.Builtin(), board.AssetChosen)
	}

	myWindow.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			board.DeleteSelected()
		}
	})

	title := widget.NewLabelWithStyle(appTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	content := container.NewBorder(title, nil, nil, nil, board)

	log.Printf("[ui] window %vx%v", cfg.Window.Width, cfg.Window.Height)
	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
