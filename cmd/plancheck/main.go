package main

import (
	"os"

	"github.com/modu-ai/plancheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
