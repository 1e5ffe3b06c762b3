// Command check-traceability reports requirement IDs declared in the
// requirements matrix that no other planning document references.
package main

import (
	"os"

	"github.com/modu-ai/plancheck/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteTrace())
}
