package main

import (
	"os"

	"github.com/napalu/grassplain/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args, os.Stdout, os.Stderr))
}
