package devcontainer

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/config"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/testutil"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	cmd := NewDevContainerCmd(&cmdtypes.GlobalConfig{
		Directory: config.ResolvedValue{Value: dir, Source: config.SourceFlag},
	})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDevContainerCreate(t *testing.T) {
	testutil.CaptureLog(t)
	dir := t.TempDir()

	out, err := run(t, dir, "create", "-i", "xcompany/mariadb")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"devcontainer.json", "docker-compose.test.yml", "docker-compose.yml"},
		testutil.ListFiles(t, filepath.Join(dir, ".devcontainer")))
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(dir, ".devcontainer", "docker-compose.yml")), "xcompany/mariadb:devcontainer")
	assert.Contains(t, out, "3 created, 0 skipped")
}

func TestDevContainerCreate_DiscoversImage(t *testing.T) {
	testutil.CaptureLog(t)
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "src", "redis", "build"), ".keep", "")

	_, err := run(t, dir, "create")
	require.NoError(t, err)
	assert.Contains(t, testutil.ReadFile(t, filepath.Join(dir, ".devcontainer", "devcontainer.json")), `"name": "redis"`)
}

func TestDevContainerCreate_NoImage(t *testing.T) {
	testutil.CaptureLog(t)

	_, err := run(t, t.TempDir(), "create")

	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, oerrors.ExitNotFound, exitErr.Code)
}
