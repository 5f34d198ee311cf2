package event

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/testutil"
)

func TestEventAdd_RequiresHook(t *testing.T) {
	cmd := NewEventCmd(&cmdtypes.GlobalConfig{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"add", "cleanup"})

	err := cmd.Execute()

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, oerrors.ExitValidationError, exitErr.Code)
}

func TestEventAdd_WarnsNotGenerated(t *testing.T) {
	buf := testutil.CaptureLog(t)

	cmd := NewEventCmd(&cmdtypes.GlobalConfig{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"add", "cleanup", "--post-shutdown", "--init"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "hooks=init,post-shutdown")
}
