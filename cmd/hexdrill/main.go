package main

import (
	"os"

	"hexdrill/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
