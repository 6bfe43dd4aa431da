package main

import (
	"os"

	"github.com/misodaily/newsdesk/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
