package core

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Remover deletes what a Scanner found. It never stops at the first
// failure: every error is collected and the next entry is attempted.
type Remover struct {
	fs  afero.Fs
	log zerolog.Logger
}

// NewRemover creates a Remover.
func NewRemover(fs afero.Fs, log zerolog.Logger) *Remover {
	return &Remover{fs: fs, log: log}
}

// RemoveAll recursively deletes each matched entry. After a group is
// processed, its directory is removed if it is now empty and the group
// allows pruning.
func (r *Remover) RemoveAll(groups []ScanGroup) *RemoveResult {
	result := &RemoveResult{}

	for _, g := range groups {
		for _, name := range g.Names {
			r.removePath(filepath.Join(g.Dir, name), result)
		}

		if g.Prune && cleanupEmptyDir(r.fs, g.Dir) {
			r.log.Debug().Str("dir", g.Dir).Msg("pruned empty directory")
			result.PrunedDirs = append(result.PrunedDirs, g.Dir)
		}
	}

	return result
}

// RemoveFiles deletes fixed paths (files or directories) that exist,
// collecting errors like RemoveAll. Missing paths are skipped.
func (r *Remover) RemoveFiles(paths []string) *RemoveResult {
	result := &RemoveResult{}
	for _, p := range paths {
		r.removePath(p, result)
	}
	return result
}

// removePath deletes p if it exists. An entry that disappeared since the
// scan, e.g. a container already pruned, is not an error.
func (r *Remover) removePath(p string, result *RemoveResult) {
	if !pathExists(r.fs, p) {
		return
	}
	if err := r.fs.RemoveAll(p); err != nil {
		err = ioError("remove", p, err)
		r.log.Warn().Err(err).Str("path", p).Msg("failed to remove entry")
		result.Errors = append(result.Errors, err)
		return
	}
	r.log.Debug().Str("path", p).Msg("removed")
	result.Removed = append(result.Removed, p)
}

// Merge folds other into r.
func (r *RemoveResult) Merge(other *RemoveResult) {
	if other == nil {
		return
	}
	r.Removed = append(r.Removed, other.Removed...)
	r.PrunedDirs = append(r.PrunedDirs, other.PrunedDirs...)
	r.Errors = append(r.Errors, other.Errors...)
}
