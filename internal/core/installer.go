package core

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/optivent/gsd-kimi-cli/internal/core/component"
)

// Installer copies bundle components into a resolved skills location.
type Installer struct {
	fs     afero.Fs
	bundle *Bundle
	log    zerolog.Logger
}

// NewInstaller creates an Installer reading from bundle.
func NewInstaller(fs afero.Fs, bundle *Bundle, log zerolog.Logger) *Installer {
	return &Installer{fs: fs, bundle: bundle, log: log}
}

// InstallSkills copies every prefixed skill directory into skillsDir.
func (inst *Installer) InstallSkills(skillsDir string) (*InstallResult, error) {
	return inst.syncNamed(component.KindSkill, inst.bundle.SkillsDir(), skillsDir,
		component.PrefixDirs(inst.bundle.Manifest.Prefix))
}

// InstallAgents copies every prefixed agent directory into the agents
// container of skillsDir, then copies the system prompt file when the
// bundle has one.
func (inst *Installer) InstallAgents(skillsDir string) (*InstallResult, error) {
	target := AgentsDir(skillsDir)
	result, err := inst.syncNamed(component.KindAgent, inst.bundle.AgentsDir(), target,
		component.PrefixDirs(inst.bundle.Manifest.Prefix))
	if err != nil {
		return nil, err
	}

	systemSrc := filepath.Join(inst.bundle.AgentsDir(), systemFileName)
	if fileExists(inst.fs, systemSrc) {
		if err := copyFile(inst.fs, systemSrc, filepath.Join(target, systemFileName)); err != nil {
			return nil, err
		}
		inst.log.Debug().Str("file", systemFileName).Str("target", target).Msg("copied system prompt")
	}

	return result, nil
}

// InstallReferences copies the markdown reference documents.
func (inst *Installer) InstallReferences(skillsDir string) (*InstallResult, error) {
	return inst.syncFlat(component.KindReference, inst.bundle.ReferencesDir(),
		filepath.Join(skillsDir, referencesContainer), component.Extension(".md"))
}

// InstallWorkflows copies the markdown workflow templates.
func (inst *Installer) InstallWorkflows(skillsDir string) (*InstallResult, error) {
	return inst.syncFlat(component.KindWorkflow, inst.bundle.WorkflowsDir(),
		filepath.Join(skillsDir, workflowsContainer), component.Extension(".md"))
}

// InstallPatches copies the patch scripts into patchesDir and marks each
// executable.
func (inst *Installer) InstallPatches(patchesDir string) (*InstallResult, error) {
	result, err := inst.syncFlat(component.KindPatch, inst.bundle.PatchesDir(), patchesDir, component.Extension(".py"))
	if err != nil {
		return nil, err
	}
	for _, item := range result.Items {
		if err := inst.fs.Chmod(item.TargetPath, 0o755); err != nil {
			return nil, ioError("chmod", item.TargetPath, err)
		}
	}
	return result, nil
}

// syncNamed runs Sync and keeps the installed/updated split.
func (inst *Installer) syncNamed(kind component.Kind, src, dst string, filter component.Filter) (*InstallResult, error) {
	sr, err := Sync(inst.fs, src, dst, filter)
	if err != nil {
		return nil, err
	}

	result := &InstallResult{
		Kind:      kind,
		Installed: len(sr.Installed),
		Updated:   len(sr.Updated),
		TargetDir: dst,
	}
	result.Items = append(result.Items, inst.items(kind, src, dst, sr.Installed, false)...)
	result.Items = append(result.Items, inst.items(kind, src, dst, sr.Updated, true)...)
	return result, nil
}

// syncFlat runs Sync over a flat file set. Flat sets are always-refreshed
// documentation, so only the copied total is reported.
func (inst *Installer) syncFlat(kind component.Kind, src, dst string, filter component.Filter) (*InstallResult, error) {
	sr, err := Sync(inst.fs, src, dst, filter)
	if err != nil {
		return nil, err
	}

	names := append(append([]string{}, sr.Installed...), sr.Updated...)
	return &InstallResult{
		Kind:      kind,
		Installed: len(names),
		TargetDir: dst,
		Flat:      true,
		Items:     inst.items(kind, src, dst, names, false),
	}, nil
}

func (inst *Installer) items(kind component.Kind, src, dst string, names []string, updated bool) []InstalledItem {
	items := make([]InstalledItem, 0, len(names))
	for _, name := range names {
		item := InstalledItem{
			Named: component.Named{
				Kind:       kind,
				Name:       name,
				SourcePath: filepath.Join(src, name),
				TargetPath: filepath.Join(dst, name),
			},
			Updated: updated,
		}
		inst.log.Debug().
			Str("kind", string(kind)).
			Str("name", name).
			Bool("updated", updated).
			Str("target", item.TargetPath).
			Msg("synced component")
		items = append(items, item)
	}
	return items
}
