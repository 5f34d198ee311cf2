// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/x-company/xbuild-mgr/internal/output"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}

// FileHash returns the hex sha256 of the file at path.
func FileHash(t *testing.T, path string) string {
	t.Helper()
	sum := sha256.Sum256([]byte(ReadFile(t, path)))
	return hex.EncodeToString(sum[:])
}

// ListFiles returns all regular files below dir as slash separated relative paths.
func ListFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		t.Fatalf("failed to walk %s: %v", dir, err)
	}
	return files
}

// CaptureLog redirects log output into a buffer for the rest of the test.
// Timestamps are disabled so assertions can match whole lines.
func CaptureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := output.SetWriter(&buf)
	output.SetupLogging(output.LogConfig{Timestamps: output.BoolPtr(false)})
	t.Cleanup(func() {
		output.SetWriter(prev)
		output.SetupLogging(output.LogConfig{})
	})
	return &buf
}
