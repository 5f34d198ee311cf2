package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
)

func TestNewValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.NotNil(t, v)
}

func TestValidator_ValidateBytes(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantErr   bool
		wantField string
	}{
		{
			name:    "empty file",
			content: "",
		},
		{
			name:    "full config",
			content: "directory: /work\nimage: xcompany/mariadb\npriority: 20\nlog:\n  timestamps: false\n",
		},
		{
			name:      "reserved priority",
			content:   "priority: 99\n",
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "priority zero",
			content:   "priority: 0\n",
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "priority not a number",
			content:   "priority: high\n",
			wantErr:   true,
			wantField: "priority",
		},
		{
			name:      "uppercase image",
			content:   "image: XCompany/MariaDB\n",
			wantErr:   true,
			wantField: "image",
		},
		{
			name:      "unknown field",
			content:   "registry: ghcr.io\n",
			wantErr:   true,
			wantField: "registry",
		},
		{
			name:    "invalid yaml",
			content: "image: [unclosed\n",
			wantErr: true,
		},
	}

	v, err := NewValidator()
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.content))
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			if tt.wantField != "" {
				assert.Contains(t, err.Error(), tt.wantField)
			}
		})
	}
}

func TestValidator_Validate(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(DefaultConfig()))
	assert.Error(t, v.Validate(&Config{Priority: 120}))
}

func TestValidator_ValidateFile(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("priority: 5\n"), 0o644))
	assert.NoError(t, v.ValidateFile(path))

	assert.ErrorContains(t, v.ValidateFile(filepath.Join(t.TempDir(), "missing.yaml")), "reading config file")
}
