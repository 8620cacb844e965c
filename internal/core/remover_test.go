package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := testPaths(t)
	candidates := p.UninstallCandidates(nil)
	xdgDir := candidates[0].Path
	kimiDir := candidates[2].Path

	mkdirs(t, fs,
		filepath.Join(xdgDir, "gsd-plan", "nested"),
		filepath.Join(xdgDir, "gsd-agents", "gsd-planner"),
		filepath.Join(xdgDir, "my-skill"),
		filepath.Join(kimiDir, "gsd-only"),
	)

	groups := NewScanner(fs, "gsd-", nil).ScanAll(candidates, p.LegacyAgentsDir)
	result := NewRemover(fs, testLogger()).RemoveAll(groups)

	assert.Empty(t, result.Errors)
	// gsd-agents is pruned with its group before the skills group reaches it.
	assert.Equal(t, 3, result.RemovedCount())
	assert.Equal(t, []string{filepath.Join(xdgDir, "gsd-agents")}, result.PrunedDirs)

	assert.True(t, dirExists(fs, filepath.Join(xdgDir, "my-skill")))
	assert.True(t, dirExists(fs, xdgDir))
	assert.False(t, pathExists(fs, filepath.Join(xdgDir, "gsd-plan")))
	// Candidate locations stay even when emptied.
	assert.True(t, dirExists(fs, kimiDir))
	assert.False(t, pathExists(fs, filepath.Join(kimiDir, "gsd-only")))

	again := NewScanner(fs, "gsd-", nil).ScanAll(candidates, p.LegacyAgentsDir)
	assert.Empty(t, again)
}

// failingRemoveFs fails RemoveAll for one path.
type failingRemoveFs struct {
	afero.Fs
	fail string
}

func (f failingRemoveFs) RemoveAll(path string) error {
	if path == f.fail {
		return &os.PathError{Op: "remove", Path: path, Err: os.ErrPermission}
	}
	return f.Fs.RemoveAll(path)
}

func TestRemoveAll_ContinuesPastFailures(t *testing.T) {
	base := afero.NewMemMapFs()
	mkdirs(t, base, "/skills/gsd-a", "/skills/gsd-b", "/skills/gsd-c")
	fs := failingRemoveFs{Fs: base, fail: "/skills/gsd-b"}

	groups := []ScanGroup{{Dir: "/skills", Names: []string{"gsd-a", "gsd-b", "gsd-c"}}}
	result := NewRemover(fs, testLogger()).RemoveAll(groups)

	require.Len(t, result.Errors, 1)
	assert.True(t, errors.Is(result.Errors[0], ErrIO))
	assert.True(t, errors.Is(result.Errors[0], os.ErrPermission))
	assert.Equal(t, []string{"/skills/gsd-a", "/skills/gsd-c"}, result.Removed)
	assert.Empty(t, result.PrunedDirs)
	assert.True(t, dirExists(base, "/skills/gsd-b"))
}

func TestRemoveFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/a/config.yaml", []byte("x"), 0o644))
	mkdirs(t, fs, "/a/patches/sub")

	result := NewRemover(fs, testLogger()).RemoveFiles([]string{"/a/config.yaml", "/a/patches", "/a/missing"})
	assert.Empty(t, result.Errors)
	assert.Equal(t, []string{"/a/config.yaml", "/a/patches"}, result.Removed)
	assert.False(t, pathExists(fs, "/a/patches/sub"))

	total := &RemoveResult{Removed: []string{"/x"}}
	total.Merge(result)
	total.Merge(nil)
	assert.Equal(t, 3, total.RemovedCount())
}
