// Package main is the entry point for the cto-skeleton CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ctoplugin/skeleton/internal/cmd"
	oerrors "github.com/ctoplugin/skeleton/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// The command layer may already have reported it.
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		// Flag parsing and other cobra errors.
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(oerrors.ExitCodeFromError(err))
	}
}
