package cmdutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/config"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
)

func globalFor(dir, image string) *cmdtypes.GlobalConfig {
	return &cmdtypes.GlobalConfig{
		Directory: config.ResolvedValue{Key: "directory", Value: dir, Source: config.SourceFlag},
		Image:     config.ResolvedValue{Key: "image", Value: image, Source: config.SourceConfig},
	}
}

func TestResolveImage_FlagWins(t *testing.T) {
	dir := t.TempDir()

	target, err := ResolveImage(globalFor(dir, "configured"), "xcompany/mariadb")
	require.NoError(t, err)
	assert.Equal(t, "xcompany/mariadb", target.Name)
	assert.Equal(t, filepath.Join(dir, "src", "xcompany", "mariadb"), target.Root)
}

func TestResolveImage_ConfiguredDefault(t *testing.T) {
	dir := t.TempDir()

	target, err := ResolveImage(globalFor(dir, "nginx"), "")
	require.NoError(t, err)
	assert.Equal(t, "nginx", target.Name)
}

func TestResolveImage_Discovered(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "xcompany", "redis"), 0o755))

	target, err := ResolveImage(globalFor(dir, ""), "")
	require.NoError(t, err)
	assert.Equal(t, "xcompany/redis", target.Name)
	assert.Equal(t, filepath.Join(dir, "src", "xcompany", "redis"), target.Root)
}

func TestResolveImage_NothingToDiscover(t *testing.T) {
	_, err := ResolveImage(globalFor(t.TempDir(), ""), "")
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}
