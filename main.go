package main

import (
	"os"

	"github.com/easylandingweb/easylanding/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
