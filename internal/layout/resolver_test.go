package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
)

func mkdirs(t *testing.T, base string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(base, filepath.FromSlash(d)), 0o755))
	}
}

func TestResolveImageRoot_Explicit(t *testing.T) {
	base := t.TempDir()

	root, err := ResolveImageRoot(base, "xcompany/mariadb")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "src", "xcompany", "mariadb"), root)
	assert.DirExists(t, root)
}

func TestResolveImageRoot_Discovery(t *testing.T) {
	tests := []struct {
		name    string
		dirs    []string
		want    string
		wantErr error
	}{
		{
			name:    "no src directory",
			wantErr: oerrors.ErrNotFound,
		},
		{
			name:    "empty src directory",
			dirs:    []string{"src"},
			wantErr: oerrors.ErrNotFound,
		},
		{
			name: "single flat image",
			dirs: []string{"src/mariadb/build"},
			want: "src/mariadb",
		},
		{
			name: "single namespaced image",
			dirs: []string{"src/xcompany/mariadb"},
			want: "src/xcompany/mariadb",
		},
		{
			name:    "two namespaced images",
			dirs:    []string{"src/xcompany/mariadb", "src/xcompany/nginx"},
			wantErr: oerrors.ErrAmbiguous,
		},
		{
			name:    "flat and namespaced",
			dirs:    []string{"src/redis/build", "src/xcompany/mariadb"},
			wantErr: oerrors.ErrAmbiguous,
		},
		{
			name: "hidden directories ignored",
			dirs: []string{"src/.cache/tmp", "src/mariadb/build"},
			want: "src/mariadb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			mkdirs(t, base, tt.dirs...)

			root, err := ResolveImageRoot(base, "")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(base, filepath.FromSlash(tt.want)), root)
		})
	}
}

func TestResolveImageRoot_AmbiguousNamesCandidates(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "src/nginx/build", "src/mariadb/build")

	_, err := ResolveImageRoot(base, "")
	require.Error(t, err)

	var detail *oerrors.DetailError
	require.True(t, errors.As(err, &detail))
	assert.Contains(t, detail.Message, "mariadb, nginx")
	assert.Contains(t, detail.Hint, "--image")
}

func TestResolveImageRoot_RequiresBaseDir(t *testing.T) {
	_, err := ResolveImageRoot("", "mariadb")
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestDiscoverImages_Sorted(t *testing.T) {
	base := t.TempDir()
	mkdirs(t, base, "src/zeta/build", "src/acme/web", "src/acme/api", "src/alpha/build")

	images, err := DiscoverImages(base)
	require.NoError(t, err)
	assert.Equal(t, []string{"acme/api", "acme/web", "alpha", "zeta"}, images)
}

func TestImageName(t *testing.T) {
	base := filepath.Join("/work")
	assert.Equal(t, "xcompany/mariadb", ImageName(base, filepath.Join(base, "src", "xcompany", "mariadb")))
	assert.Equal(t, "nginx", ImageName(base, ImageRoot(base, "nginx")))
}

func TestServices(t *testing.T) {
	base := t.TempDir()
	root := ImageRoot(base, "mariadb")

	services, err := Services(root)
	require.NoError(t, err)
	assert.Empty(t, services)

	mkdirs(t, root, "build/services/mysqld", "build/services/cron")
	services, err = Services(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"cron", "mysqld"}, services)
}

func TestResolveImageRoot_RejectsNamesLeavingSrc(t *testing.T) {
	for _, image := range []string{"../../escaped", "/abs/escaped", "xcompany/../../escaped", `xcompany\escaped`} {
		t.Run(image, func(t *testing.T) {
			parent := t.TempDir()
			base := filepath.Join(parent, "project")
			mkdirs(t, base, "src")

			_, err := ResolveImageRoot(base, image)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.NoDirExists(t, filepath.Join(parent, "escaped"))
			assert.NoDirExists(t, filepath.Join(base, "escaped"))
		})
	}
}
