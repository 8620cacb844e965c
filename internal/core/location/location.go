// Package location defines where GSD content may live on a machine.
//
// Install writes to exactly one candidate, the first that already exists.
// Uninstall considers a larger superset, since skills may have been copied
// into other agent tools by hand or by older installers.
package location

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Candidate is a directory that may hold installed skills.
type Candidate struct {
	Path     string
	Label    string
	Priority int
}

// Set is an ordered list of candidates, highest priority first.
type Set []Candidate

// InstallCandidates returns the locations the installer may write to.
func InstallCandidates(home string) Set {
	return Set{
		{Path: filepath.Join(home, ".config", "agents", "skills"), Label: "XDG Agents (recommended)", Priority: 0},
		{Path: filepath.Join(home, ".agents", "skills"), Label: "Legacy Agents", Priority: 1},
		{Path: filepath.Join(home, ".kimi", "skills"), Label: "Kimi", Priority: 2},
	}
}

// UninstallCandidates returns every location uninstall scans: the install
// candidates, the skill directories of other agent tools, and any extra
// user-provided paths (absolute, or relative to home).
func UninstallCandidates(home string, extra []string) Set {
	set := InstallCandidates(home)
	set = append(set,
		Candidate{Path: filepath.Join(home, ".claude", "skills"), Label: "Claude", Priority: 3},
		Candidate{Path: filepath.Join(home, ".codex", "skills"), Label: "Codex", Priority: 4},
	)
	for _, p := range extra {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = expandHome(p, home)
		if set.contains(p) {
			continue
		}
		set = append(set, Candidate{
			Path:     p,
			Label:    "Custom",
			Priority: set[len(set)-1].Priority + 1,
		})
	}
	return set
}

// Validate checks that priorities are strictly increasing and paths absolute.
func (s Set) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("no candidate locations")
	}
	for i, c := range s {
		if !filepath.IsAbs(c.Path) {
			return fmt.Errorf("candidate %q is not an absolute path", c.Path)
		}
		if i > 0 && c.Priority <= s[i-1].Priority {
			return fmt.Errorf("candidate %q priority %d does not follow %d", c.Path, c.Priority, s[i-1].Priority)
		}
	}
	return nil
}

// Paths returns the paths of the set in order.
func (s Set) Paths() []string {
	paths := make([]string, len(s))
	for i, c := range s {
		paths[i] = c.Path
	}
	return paths
}

func (s Set) contains(path string) bool {
	clean := filepath.Clean(path)
	for _, c := range s {
		if filepath.Clean(c.Path) == clean {
			return true
		}
	}
	return false
}

// Resolve returns the first candidate whose path exists on fs. When none
// exists the first (recommended) candidate is returned; it is not created.
// An empty set yields the zero Candidate.
func Resolve(fs afero.Fs, candidates Set) Candidate {
	if len(candidates) == 0 {
		return Candidate{}
	}
	for _, c := range candidates {
		if ok, _ := afero.Exists(fs, c.Path); ok {
			return c
		}
	}
	return candidates[0]
}

func expandHome(p, home string) string {
	if p == "~" {
		return home
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:])
	}
	if !filepath.IsAbs(p) {
		return filepath.Join(home, p)
	}
	return filepath.Clean(p)
}
