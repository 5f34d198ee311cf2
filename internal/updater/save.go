package updater

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// saveFile writes one file of a concern through WriteIfAbsent and logs the outcome.
// label names the file in log output; root is the directory paths are logged relative to.
func saveFile(ctx context.Context, logger *log.Logger, root, path, label, content string, mode fs.FileMode) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	logger.Debug("creating file", "context", label, "file", rel)

	outcome, err := WriteIfAbsent(path, content, mode)
	if err != nil {
		return FileResult{}, err
	}

	switch outcome {
	case Created:
		logger.Info("created", "context", label, "file", rel)
	case SkippedExisting:
		logger.Warn("file already exists, not created", "context", label, "file", rel)
	}

	return FileResult{Path: path, Outcome: outcome}, nil
}
