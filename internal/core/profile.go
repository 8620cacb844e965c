package core

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

const (
	// pathMarker is the substring whose presence means the profile already
	// puts ~/.local/bin on PATH.
	pathMarker  = ".local/bin"
	pathComment = "# Added by GSD for Kimi CLI"
	pathExport  = `export PATH="$HOME/.local/bin:$PATH"`

	// legacyPathComment headed the same export in earlier releases.
	legacyPathComment = "# Add local bin to PATH"
)

// InstallLinePatterns match legacy lines the installer cleans up.
var InstallLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^alias jim=.*(\n|$)`),
}

// UninstallLinePatterns match every line this tool, or an older version of
// it, may have written into a shell profile.
var UninstallLinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^# GSD for Kimi CLI[ \t]*(\n|$)`),
	regexp.MustCompile(`(?m)^alias kimi-gsd=.*(\n|$)`),
	regexp.MustCompile(`(?m)^alias gsd=.*(\n|$)`),
	regexp.MustCompile(`(?m)^alias jim=.*(\n|$)`),
	regexp.MustCompile(`(?m)(^\n)?^(` + regexp.QuoteMeta(pathComment) + `|` + regexp.QuoteMeta(legacyPathComment) + `)[ \t]*\n` +
		regexp.QuoteMeta(pathExport) + `[ \t]*(\n|$)`),
}

// ProfileChange reports whether a mutation rewrote the profile.
type ProfileChange struct {
	Path    string
	Changed bool
}

// EnsurePathLine appends the ~/.local/bin PATH export to profilePath unless
// the file already mentions ~/.local/bin. A missing file is created.
func EnsurePathLine(fs afero.Fs, profilePath string) (ProfileChange, error) {
	change := ProfileChange{Path: profilePath}

	content, err := readFileOrEmpty(fs, profilePath)
	if err != nil {
		return change, err
	}
	if strings.Contains(content, pathMarker) {
		return change, nil
	}

	block := "\n" + pathComment + "\n" + pathExport + "\n"
	if content != "" && !strings.HasSuffix(content, "\n") {
		block = "\n" + block
	}
	if err := writeFile(fs, profilePath, []byte(content+block), profileMode(fs, profilePath)); err != nil {
		return change, err
	}
	change.Changed = true
	return change, nil
}

// RemoveLines strips every line matching one of patterns from profilePath.
// The file is rewritten only when its content changes; a missing file is
// left alone.
func RemoveLines(fs afero.Fs, profilePath string, patterns []*regexp.Regexp) (ProfileChange, error) {
	change := ProfileChange{Path: profilePath}

	if !fileExists(fs, profilePath) {
		return change, nil
	}
	original, err := readFileOrEmpty(fs, profilePath)
	if err != nil {
		return change, err
	}

	content := original
	for _, re := range patterns {
		content = re.ReplaceAllString(content, "")
	}
	if content == original {
		return change, nil
	}

	if err := writeFile(fs, profilePath, []byte(content), profileMode(fs, profilePath)); err != nil {
		return change, err
	}
	change.Changed = true
	return change, nil
}

// ConfigureProfile removes legacy alias lines and ensures the PATH line,
// reporting a change if either step modified the file.
func ConfigureProfile(fs afero.Fs, profilePath string) (ProfileChange, error) {
	removed, err := RemoveLines(fs, profilePath, InstallLinePatterns)
	if err != nil {
		return removed, err
	}
	ensured, err := EnsurePathLine(fs, profilePath)
	if err != nil {
		return ensured, err
	}
	ensured.Changed = ensured.Changed || removed.Changed
	return ensured, nil
}

func profileMode(fs afero.Fs, path string) os.FileMode {
	if info, err := fs.Stat(path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
