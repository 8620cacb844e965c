package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const manifestFileName = "gsd.yaml"

// Default manifest values, used when the bundle ships no gsd.yaml.
const (
	DefaultVersion       = "2.0.0"
	DefaultPrefix        = "gsd-"
	DefaultMinSkills     = 27
	DefaultMinAgents     = 11
	patcherName          = "kimi_cli_patcher.py"
	versionedPatcherName = "kimi_cli_patcher_v2.py"
)

// Manifest is the optional gsd.yaml at the root of a content bundle.
type Manifest struct {
	Version    string     `yaml:"version"`
	Prefix     string     `yaml:"prefix"`
	Thresholds Thresholds `yaml:"thresholds"`
	Legacy     []string   `yaml:"legacy,omitempty"`
}

// Thresholds are the minimum counts the verifier expects.
type Thresholds struct {
	Skills int `yaml:"skills"`
	Agents int `yaml:"agents"`
}

// Bundle is a read-only content tree the installer copies from.
type Bundle struct {
	Root     string
	Manifest Manifest
}

// DefaultManifest returns the manifest used when gsd.yaml is absent.
func DefaultManifest() Manifest {
	return Manifest{
		Version: DefaultVersion,
		Prefix:  DefaultPrefix,
		Thresholds: Thresholds{
			Skills: DefaultMinSkills,
			Agents: DefaultMinAgents,
		},
		Legacy: []string{"gsd-bootstrap", "gsd-execute-flow"},
	}
}

// LoadBundle opens the bundle at root and reads its manifest. A missing
// gsd.yaml yields the default manifest; a malformed one is an error.
func LoadBundle(fs afero.Fs, root string) (*Bundle, error) {
	if !dirExists(fs, root) {
		return nil, notFound("open bundle", root)
	}

	m := DefaultManifest()
	path := filepath.Join(root, manifestFileName)
	data, err := afero.ReadFile(fs, path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, ioError("read", path, err)
	}

	if m.Prefix == "" {
		m.Prefix = DefaultPrefix
	}
	if m.Version == "" {
		m.Version = DefaultVersion
	}
	if m.Thresholds.Skills < 0 || m.Thresholds.Agents < 0 {
		return nil, fmt.Errorf("parsing %s: thresholds must not be negative", path)
	}

	return &Bundle{Root: root, Manifest: m}, nil
}

// SkillsDir returns the bundle's skills subtree.
func (b *Bundle) SkillsDir() string { return filepath.Join(b.Root, "skills") }

// AgentsDir returns the bundle's agents subtree.
func (b *Bundle) AgentsDir() string { return filepath.Join(b.Root, "agents") }

// ReferencesDir returns the bundle's references subtree.
func (b *Bundle) ReferencesDir() string { return filepath.Join(b.Root, "references") }

// WorkflowsDir returns the bundle's workflows subtree.
func (b *Bundle) WorkflowsDir() string { return filepath.Join(b.Root, "workflows") }

// PatchesDir returns the bundle's patches subtree.
func (b *Bundle) PatchesDir() string { return filepath.Join(b.Root, "patches") }

// ConfigTemplate returns the master agent config template path.
func (b *Bundle) ConfigTemplate() string { return filepath.Join(b.Root, configTemplateName) }
