package core

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/optivent/gsd-kimi-cli/internal/core/component"
)

// Sync copies every top-level entry of src accepted by filter into dst.
//
// Each accepted entry is classified before copying: "installed" when dst had
// no entry of that name, "updated" otherwise. Directories are merged, files
// are overwritten. The first failure aborts the call; entries copied before
// it stay in place.
func Sync(fs afero.Fs, src, dst string, filter component.Filter) (SyncResult, error) {
	var result SyncResult
	if filter == nil {
		filter = component.All
	}

	if !dirExists(fs, src) {
		return result, notFound("read source", src)
	}
	entries, err := afero.ReadDir(fs, src)
	if err != nil {
		return result, ioError("read source", src, err)
	}

	if err := fs.MkdirAll(dst, 0o755); err != nil {
		return result, ioError("create directory", dst, err)
	}

	for _, entry := range entries {
		if !filter(entry.Name(), entry.IsDir()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		existed := pathExists(fs, dstPath)

		if entry.IsDir() {
			err = copyDirectory(fs, srcPath, dstPath)
		} else {
			err = copyFile(fs, srcPath, dstPath)
		}
		if err != nil {
			return result, err
		}

		if existed {
			result.Updated = append(result.Updated, entry.Name())
		} else {
			result.Installed = append(result.Installed, entry.Name())
		}
	}

	return result, nil
}
