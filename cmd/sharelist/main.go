package main

import (
	"os"

	"github.com/Makepad-fr/sharelist/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], cli.Options{}))
}
