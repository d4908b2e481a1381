package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	oerrors "github.com/ctoplugin/skeleton/internal/errors"
	"github.com/ctoplugin/skeleton/internal/output"
)

// exitWith prints err to the command's stderr and wraps it in an ExitError
// carrying the code for its sentinel. With verbose set, the wrapped chain is
// logged at debug level first.
func exitWith(c *cobra.Command, err error, verbose bool) error {
	if verbose {
		logErrorChain(err)
	}

	exitErr := oerrors.NewExitError(err)

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		fmt.Fprint(c.ErrOrStderr(), detail.Error())
	} else {
		fmt.Fprintln(c.ErrOrStderr(), "Error: "+err.Error())
	}
	exitErr.Printed = true

	return exitErr
}

// logErrorChain logs each error in the wrap chain, outermost first.
// For multi-wrapped errors the last branch is followed, which is where
// the underlying filesystem error sits.
func logErrorChain(err error) {
	for depth := 0; err != nil; depth++ {
		output.Debug("error chain",
			"depth", depth,
			"type", fmt.Sprintf("%T", err),
			"error", firstLine(err.Error()),
		)

		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			errs := u.Unwrap()
			if len(errs) == 0 {
				return
			}
			err = errs[len(errs)-1]
		default:
			return
		}
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
