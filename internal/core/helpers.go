package core

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// copyDirectory recursively copies src into dst. Directories are merged:
// files present in src replace their counterpart in dst, anything else
// already in dst is left alone.
func copyDirectory(fs afero.Fs, src, dst string) error {
	return afero.Walk(fs, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return ioError("read", path, err)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return ioError("resolve", path, err)
		}
		dstPath := filepath.Join(dst, rel)

		if info.IsDir() {
			if err := fs.MkdirAll(dstPath, 0o755); err != nil {
				return ioError("create directory", dstPath, err)
			}
			return nil
		}

		return copyFile(fs, path, dstPath)
	})
}

// copyFile copies a single file, replacing dst and keeping the source mode.
// The parent of dst is created when missing.
func copyFile(fs afero.Fs, src, dst string) error {
	srcFile, err := fs.Open(src)
	if err != nil {
		return ioError("open", src, err)
	}
	defer func() { _ = srcFile.Close() }()

	info, err := srcFile.Stat()
	if err != nil {
		return ioError("stat", src, err)
	}

	if err := fs.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return ioError("create directory", filepath.Dir(dst), err)
	}

	dstFile, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return ioError("create", dst, err)
	}
	defer func() { _ = dstFile.Close() }()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return ioError("write", dst, err)
	}
	return nil
}

// cleanupEmptyDir removes a directory if it is empty. Errors are ignored.
func cleanupEmptyDir(fs afero.Fs, dir string) bool {
	empty, err := afero.IsEmpty(fs, dir)
	if err != nil || !empty {
		return false
	}
	return fs.Remove(dir) == nil
}

// dirExists returns true if the path exists and is a directory.
func dirExists(fs afero.Fs, path string) bool {
	ok, err := afero.DirExists(fs, path)
	return err == nil && ok
}

// fileExists returns true if the path exists and is not a directory.
func fileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// pathExists returns true if anything exists at path.
func pathExists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}

// readFileOrEmpty reads a text file. A missing file reads as "".
func readFileOrEmpty(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", ioError("read", path, err)
	}
	return string(data), nil
}

// writeFile writes content, creating parent directories.
func writeFile(fs afero.Fs, path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return ioError("create directory", dir, err)
	}
	if err := afero.WriteFile(fs, path, content, perm); err != nil {
		return ioError("write", path, err)
	}
	return nil
}

// writeFileAtomic writes content to a temp file and renames it into place.
func writeFileAtomic(fs afero.Fs, path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := writeFile(fs, tmpPath, content, perm); err != nil {
		return err
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return ioError("rename", path, err)
	}
	return nil
}
