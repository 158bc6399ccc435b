package main

import (
	"os"

	"github.com/jmendive/slicer/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
