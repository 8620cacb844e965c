// Package core provides the install/uninstall reconciliation engine for the
// GSD bundle. It has zero UI dependencies and works against an injected
// afero.Fs so it is independently testable.
package core

import (
	"github.com/optivent/gsd-kimi-cli/internal/core/component"
)

// Reserved names shared by installer, verifier and scanner.
const (
	agentsContainer     = "gsd-agents"
	referencesContainer = "gsd-references"
	workflowsContainer  = "gsd-workflows"
	systemFileName      = "gsd-system.md"
	configTemplateName  = "gsd-agent.yaml"
	homePlaceholder     = "~/.kimi"
)

// InstallResult is the outcome of one component installer.
type InstallResult struct {
	Kind      component.Kind
	Installed int
	Updated   int
	TargetDir string
	Flat      bool // flat sets report a copied total in Installed
	Items     []InstalledItem
}

// InstalledItem is one top-level entry written by an installer.
type InstalledItem struct {
	component.Named
	Updated bool
}

// SyncResult classifies the top-level entries a Sync call copied.
type SyncResult struct {
	Installed []string
	Updated   []string
}

// ScanGroup is one directory holding entries that uninstall will remove.
type ScanGroup struct {
	Dir    string
	Label  string
	Kind   component.Kind
	Names  []string
	Legacy bool
	// Prune removes Dir once it is empty. Only set for containers this
	// tool creates; candidate skills locations are never pruned.
	Prune bool
}

// RemoveResult is the outcome of RemoveAll.
type RemoveResult struct {
	Removed    []string // absolute paths removed
	PrunedDirs []string // group directories removed because they were left empty
	Errors     []error  // per-entry failures; processing continued past each
}

// RemovedCount returns the number of entries removed.
func (r *RemoveResult) RemovedCount() int { return len(r.Removed) }
