package main

import (
	"os"

	"github.com/notekit/notekit/notesservice"
)

func main() {
	if err := notesservice.Run(); err != nil {
		os.Exit(1)
	}
}
