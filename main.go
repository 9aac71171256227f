package main

import (
	"os"

	"github.com/atomicstack/script-popup/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
