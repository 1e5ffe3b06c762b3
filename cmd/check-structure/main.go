// Command check-structure reports required ## sections missing from a
// module's planning documents.
package main

import (
	"os"

	"github.com/modu-ai/plancheck/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteStructure())
}
