package updater

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File modes of generated files.
const (
	ScriptMode fs.FileMode = 0o755
	ConfigMode fs.FileMode = 0o644
)

// chmod is replaced in tests.
var chmod = os.Chmod

// WriteOutcome reports what WriteIfAbsent did with a file.
type WriteOutcome int

const (
	// Created means the file did not exist and was written.
	Created WriteOutcome = iota + 1

	// SkippedExisting means the file already existed and was left untouched.
	SkippedExisting
)

// String returns the status word used in command output.
func (o WriteOutcome) String() string {
	switch o {
	case Created:
		return "created"
	case SkippedExisting:
		return "skipped"
	default:
		return "unknown"
	}
}

// WriteIfAbsent creates path with content and mode unless it already exists.
// The parent directory is created on demand. Creation is exclusive, so two
// writers racing for the same path never overwrite each other: the loser
// reports SkippedExisting.
func WriteIfAbsent(path, content string, mode fs.FileMode) (WriteOutcome, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, fmt.Errorf("creating directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return SkippedExisting, nil
		}
		return 0, fmt.Errorf("creating file %s: %w", path, err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return 0, fmt.Errorf("writing file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("writing file %s: %w", path, err)
	}

	// OpenFile applies the umask; set the mode explicitly.
	if err := chmod(path, mode); err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	return Created, nil
}
