package main

import (
	"os"

	"github.com/JangHwanPark/DahDit/cmd/dahdit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
