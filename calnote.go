package main

import (
	"log"
	"os"

	"tableflip.dev/calnote/pkg/commands"
	"tableflip.dev/calnote/pkg/printers"
)

func main() {
	printers.DetectColor(os.Stdout)
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
