package main

import (
	"log"

	"InkPad/internal/ui"
)

func main() {
	log.SetPrefix("[inkpad] ")
	log.Println("starting")
	ui.RunApp()
}
