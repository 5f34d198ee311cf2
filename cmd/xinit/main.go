// Package main is the entry point for the xinit CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/x-company/xbuild-mgr/internal/cmd"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			// Commands that printed their own diagnostics mark the error as printed.
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
