package main

import (
	"os"

	"github.com/ryanfaricy/wherearethey-sub001/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
