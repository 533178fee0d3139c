package main

import (
	"os"

	"github.com/vxpm/anton/anton"
)

func main() {
	os.Exit(anton.Main(os.Args[1:]))
}
