package core

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/optivent/gsd-kimi-cli/internal/core/component"
	"github.com/optivent/gsd-kimi-cli/internal/core/location"
)

// Scanner finds GSD entries in every candidate location.
type Scanner struct {
	fs     afero.Fs
	owned  component.Filter
	legacy []string
}

// NewScanner creates a Scanner matching names that start with prefix, plus
// the given legacy names regardless of prefix.
func NewScanner(fs afero.Fs, prefix string, legacy []string) *Scanner {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Scanner{fs: fs, owned: component.Prefixed(prefix), legacy: legacy}
}

// ScanAll lists what uninstall would remove. For each candidate it reports
// the agents container first, then the location itself. legacyAgentsDir,
// when non-empty, is scanned last as an old agents location.
//
// Groups with no matches are omitted. Missing directories are skipped.
func (s *Scanner) ScanAll(candidates location.Set, legacyAgentsDir string) []ScanGroup {
	var groups []ScanGroup

	for _, c := range candidates {
		if !dirExists(s.fs, c.Path) {
			continue
		}

		agentsDir := AgentsDir(c.Path)
		if names := s.match(agentsDir, false); len(names) > 0 {
			groups = append(groups, ScanGroup{
				Dir:   agentsDir,
				Label: c.Label,
				Kind:  component.KindAgent,
				Names: names,
				Prune: true,
			})
		}

		if names := s.match(c.Path, true); len(names) > 0 {
			groups = append(groups, ScanGroup{
				Dir:   c.Path,
				Label: c.Label,
				Kind:  component.KindSkill,
				Names: names,
			})
		}
	}

	if legacyAgentsDir != "" && dirExists(s.fs, legacyAgentsDir) {
		if names := s.match(legacyAgentsDir, false); len(names) > 0 {
			groups = append(groups, ScanGroup{
				Dir:    legacyAgentsDir,
				Label:  "Legacy Kimi agents",
				Kind:   component.KindAgent,
				Names:  names,
				Legacy: true,
				Prune:  true,
			})
		}
	}

	return groups
}

// match returns the prefixed entries of dir in directory order, followed,
// with withLegacy, by the legacy names that exist there. No name repeats.
func (s *Scanner) match(dir string, withLegacy bool) []string {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if s.owned(e.Name(), e.IsDir()) {
			seen[e.Name()] = true
			names = append(names, e.Name())
		}
	}

	if withLegacy {
		for _, name := range s.legacy {
			if seen[name] {
				continue
			}
			if pathExists(s.fs, filepath.Join(dir, name)) {
				seen[name] = true
				names = append(names, name)
			}
		}
	}

	return names
}

// Count returns the total number of entries across groups.
func Count(groups []ScanGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Names)
	}
	return n
}
