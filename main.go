package main

import (
	"log"

	"DragBoard/internal/config"
	"DragBoard/internal/ui"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Falling back to default settings: %v", err)
		cfg = config.Default()
	}

	log.Println("Starting board")
	ui.RunApp(cfg)
}
