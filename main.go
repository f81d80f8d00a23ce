package main

import (
	"os"

	"github.com/lohvht/golithp/cmd"
)

func main() {
	os.Exit(cmd.Run())
}
