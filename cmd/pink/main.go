package main

import (
	"fmt"
	"os"

	"github.com/msto63/pinkmath/cmd/pink/cmd"
	mdwerror "github.com/msto63/pinkmath/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
		os.Exit(mdwerror.GetCode(err).ExitCode())
	}
}
