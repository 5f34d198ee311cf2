// Package updater generates the files of an image project. Each Updater owns
// one concern (the package manifest, the dev container bundle, the scripts of
// one service) and writes its files idempotently: existing files are never
// touched, so re-running a generator only fills in what is missing.
package updater

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Updater generates the files of one concern.
type Updater interface {
	// Update writes every missing file of the concern and reports what happened
	// to each. It stops at the first I/O error; files written before it remain.
	Update(ctx context.Context) (Report, error)
}

// Kind names an updater variant.
type Kind string

const (
	KindPackageManifest Kind = "package-manifest"
	KindDevContainer    Kind = "devcontainer"
	KindService         Kind = "service"
)

// New validates req for kind and returns the matching updater.
func New(kind Kind, req Request) (Updater, error) {
	switch kind {
	case KindPackageManifest:
		return NewPackageManifest(req)
	case KindDevContainer:
		return NewDevContainer(req)
	case KindService:
		return NewService(req)
	default:
		return nil, fmt.Errorf("unknown updater kind %q", kind)
	}
}

// RunAll runs updaters in order and merges their reports.
func RunAll(ctx context.Context, updaters ...Updater) (Report, error) {
	var report Report
	for _, u := range updaters {
		r, err := u.Update(ctx)
		report.Append(r)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path    string
	Outcome WriteOutcome
}

// Report lists the files of one or more updater runs in write order.
type Report struct {
	Files []FileResult
}

// Append adds the files of other to r.
func (r *Report) Append(other Report) {
	r.Files = append(r.Files, other.Files...)
}

// Created returns the paths that were written.
func (r Report) Created() []string {
	return r.paths(Created)
}

// Skipped returns the paths that already existed.
func (r Report) Skipped() []string {
	return r.paths(SkippedExisting)
}

func (r Report) paths(o WriteOutcome) []string {
	var out []string
	for _, f := range r.Files {
		if f.Outcome == o {
			out = append(out, f.Path)
		}
	}
	return out
}

// Relative maps each path relative to base onto its status word.
// Paths outside base are kept as they are.
func (r Report) Relative(base string) map[string]string {
	out := make(map[string]string, len(r.Files))
	for _, f := range r.Files {
		p := f.Path
		if rel, err := filepath.Rel(base, f.Path); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			p = rel
		}
		out[p] = f.Outcome.String()
	}
	return out
}
