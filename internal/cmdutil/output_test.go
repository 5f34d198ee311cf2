package cmdutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-company/xbuild-mgr/internal/config"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/testutil"
	"github.com/x-company/xbuild-mgr/internal/updater"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestPrintReport(t *testing.T) {
	base := filepath.Join("/work", "mariadb")
	report := updater.Report{Files: []updater.FileResult{
		{Path: filepath.Join(base, "mariadb.build"), Outcome: updater.Created},
		{Path: filepath.Join(base, "log", "mariadb.run"), Outcome: updater.SkippedExisting},
	}}

	var buf bytes.Buffer
	PrintReport(&buf, base, report)
	out := ansiRe.ReplaceAllString(buf.String(), "")

	assert.Contains(t, out, "mariadb/")
	assert.Contains(t, out, "log/")
	assert.Regexp(t, `mariadb\.build\s+created`, out)
	assert.Regexp(t, `mariadb\.run\s+skipped`, out)
	assert.Contains(t, out, "1 created, 1 skipped")
}

func TestPrintReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintReport(&buf, "/work", updater.Report{})
	assert.Empty(t, buf.String())
}

func TestPrintValidationError(t *testing.T) {
	buf := testutil.CaptureLog(t)

	PrintValidationError("config is invalid", config.ValidationErrors{
		{Field: "priority", Message: "invalid value 99"},
	})
	assert.Contains(t, buf.String(), "config is invalid")
	assert.Contains(t, buf.String(), "priority: invalid value 99")

	buf.Reset()
	PrintValidationError("failed", errors.New("boom"))
	assert.Contains(t, buf.String(), "error=boom")
}

func TestExitErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"validation", oerrors.NewValidationError("bad", "", "", ""), oerrors.ExitValidationError},
		{"not found", oerrors.NewNotFoundError("missing", "", ""), oerrors.ExitNotFound},
		{"ambiguous", oerrors.NewAmbiguousError("two", "", ""), oerrors.ExitValidationError},
		{"permission", fmt.Errorf("creating file: %w", fs.ErrPermission), oerrors.ExitPermissionDenied},
		{"generic", errors.New("boom"), oerrors.ExitGeneralError},
		{"existing exit error", oerrors.NewExitError(errors.New("x"), 9), 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ExitErr(tt.err)

			var exitErr *oerrors.ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.True(t, errors.Is(err, tt.err))
		})
	}

	assert.NoError(t, ExitErr(nil))
}
