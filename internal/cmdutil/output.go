package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/x-company/xbuild-mgr/internal/config"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/output"
	"github.com/x-company/xbuild-mgr/internal/updater"
)

// PrintReport writes the files of report as a tree rooted at base, each with
// its colored status, followed by a summary line.
func PrintReport(w io.Writer, base string, report updater.Report) {
	if len(report.Files) == 0 {
		return
	}

	files := report.Relative(base)
	for path, status := range files {
		files[path] = output.StatusStyle(status).Render(status)
	}

	fmt.Fprint(w, output.RenderFileTree(filepath.Base(base), files))
	fmt.Fprintln(w, output.FormatCheckmark(
		fmt.Sprintf("%d created, %d skipped", len(report.Created()), len(report.Skipped()))))
}

// PrintValidationError logs a validation error. Config schema violations are
// listed one per line, other errors fall back to key-value form.
func PrintValidationError(msg string, err error) {
	var verrs config.ValidationErrors
	if errors.As(err, &verrs) {
		output.Error(msg)
		for _, e := range verrs {
			output.Error(fmt.Sprintf("  %s: %s", e.Field, e.Message))
		}
		return
	}
	output.Error(msg, "error", err)
}

// ExitErr maps err onto an ExitError carrying the matching exit code.
// Errors that already carry a code are returned as they are.
func ExitErr(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}
