package main

import (
	"os"

	"github.com/manishpatil55/demo-product-page/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
