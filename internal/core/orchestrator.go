package core

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/optivent/gsd-kimi-cli/internal/core/location"
)

// Orchestrator runs the install, verify and uninstall pipelines over one
// set of paths. Operations are sequential; a single process is assumed to
// own the target tree while they run.
type Orchestrator struct {
	fs       afero.Fs
	paths    Paths
	settings *Settings
	log      zerolog.Logger
}

// NewOrchestrator creates an Orchestrator. A nil settings means defaults.
func NewOrchestrator(fs afero.Fs, paths Paths, settings *Settings, log zerolog.Logger) *Orchestrator {
	if settings == nil {
		settings = &Settings{}
	}
	return &Orchestrator{fs: fs, paths: paths, settings: settings, log: log}
}

// Paths returns the paths the orchestrator operates on.
func (o *Orchestrator) Paths() Paths { return o.paths }

// InstallLocation returns the skills location an install would use now.
func (o *Orchestrator) InstallLocation() location.Candidate {
	return location.Resolve(o.fs, o.paths.InstallCandidates())
}

// InstallOptions configures an installation.
type InstallOptions struct {
	// SkillsOnly skips the patch scripts and the launcher.
	SkillsOnly bool
}

// InstallReport is everything an install did, plus the verification that
// followed it.
type InstallReport struct {
	Location     location.Candidate
	Components   []*InstallResult
	ConfigPath   string
	Patches      *InstallResult // nil when skipped
	LauncherPath string         // empty when skipped
	Profile      ProfileChange
	Verify       Report
}

// Install copies the bundle into the resolved skills location and wires up
// config, patches, launcher and shell profile. The first failing step
// aborts; earlier steps are not rolled back.
func (o *Orchestrator) Install(bundle *Bundle, opts InstallOptions) (*InstallReport, error) {
	loc := o.InstallLocation()
	o.log.Info().Str("location", loc.Path).Str("label", loc.Label).Msg("resolved skills location")

	report := &InstallReport{Location: loc}
	inst := NewInstaller(o.fs, bundle, o.log)

	steps := []func(string) (*InstallResult, error){
		inst.InstallSkills,
		inst.InstallAgents,
		inst.InstallReferences,
		inst.InstallWorkflows,
	}
	for _, step := range steps {
		result, err := step(loc.Path)
		if err != nil {
			return report, err
		}
		o.log.Info().
			Str("kind", string(result.Kind)).
			Int("installed", result.Installed).
			Int("updated", result.Updated).
			Msg("installed components")
		report.Components = append(report.Components, result)
	}

	configPath, err := Materialize(o.fs, bundle.ConfigTemplate(), o.paths.ConfigPath, configSubstitutions(o.paths))
	if err != nil {
		return report, err
	}
	report.ConfigPath = configPath

	if !opts.SkillsOnly {
		patches, err := inst.InstallPatches(o.paths.PatchesDir)
		if err != nil {
			return report, err
		}
		report.Patches = patches

		if err := WriteLauncher(o.fs, o.paths.LauncherPath, o.settings.LauncherOptions(o.paths)); err != nil {
			return report, err
		}
		report.LauncherPath = o.paths.LauncherPath
	}

	profile, err := ConfigureProfile(o.fs, o.paths.ShellProfile)
	if err != nil {
		return report, fmt.Errorf("updating shell profile: %w", err)
	}
	report.Profile = profile

	report.Verify = o.verifyAt(loc.Path, bundle.Manifest, opts.SkillsOnly)
	return report, nil
}

// Verify checks the current installation at the resolved location without
// modifying anything.
func (o *Orchestrator) Verify(m Manifest) (location.Candidate, Report) {
	loc := o.InstallLocation()
	return loc, o.verifyAt(loc.Path, m, false)
}

func (o *Orchestrator) verifyAt(skillsDir string, m Manifest, skillsOnly bool) Report {
	return Verify(o.fs, VerifyInput{
		SkillsDir:        skillsDir,
		AgentsDir:        AgentsDir(skillsDir),
		ConfigPath:       o.paths.ConfigPath,
		PatchesDir:       o.paths.PatchesDir,
		LauncherPath:     o.paths.LauncherPath,
		Prefix:           m.Prefix,
		Thresholds:       m.Thresholds,
		LauncherOptional: skillsOnly,
	})
}

// Scan lists every GSD entry across the uninstall candidates, plus the
// fixed files uninstall would delete.
func (o *Orchestrator) Scan(m Manifest) ([]ScanGroup, []string) {
	candidates := o.paths.UninstallCandidates(o.settings.ExtraUninstallLocations)
	o.log.Debug().Strs("candidates", candidates.Paths()).Msg("scanning uninstall locations")
	groups := NewScanner(o.fs, m.Prefix, m.Legacy).ScanAll(candidates, o.paths.LegacyAgentsDir)
	return groups, o.fixedFiles()
}

// fixedFiles returns the existing single paths uninstall deletes. The
// launcher is included only when this tool generated it.
func (o *Orchestrator) fixedFiles() []string {
	var files []string
	for _, p := range []string{o.paths.ConfigPath, o.paths.LegacySystemPrompt, o.paths.PatchesDir} {
		if pathExists(o.fs, p) {
			files = append(files, p)
		}
	}
	if IsGeneratedLauncher(o.fs, o.paths.LauncherPath) {
		files = append(files, o.paths.LauncherPath)
	} else if fileExists(o.fs, o.paths.LauncherPath) {
		o.log.Warn().Str("path", o.paths.LauncherPath).Msg("launcher was not generated by gsd-kimi, leaving it")
	}
	return files
}

// UninstallReport is everything an uninstall removed or failed to remove.
type UninstallReport struct {
	Groups   []ScanGroup
	Result   *RemoveResult
	Profiles []ProfileChange
}

// Uninstall removes every GSD entry from every candidate location, the
// fixed files and the profile lines. Failures are collected in
// Result.Errors and never stop the remaining removals.
func (o *Orchestrator) Uninstall(m Manifest) *UninstallReport {
	groups, files := o.Scan(m)
	remover := NewRemover(o.fs, o.log)

	report := &UninstallReport{Groups: groups, Result: remover.RemoveAll(groups)}
	report.Result.Merge(remover.RemoveFiles(files))

	for _, profile := range o.paths.RemovalProfiles {
		change, err := RemoveLines(o.fs, profile, UninstallLinePatterns)
		if err != nil {
			report.Result.Errors = append(report.Result.Errors, err)
			continue
		}
		if change.Changed {
			o.log.Info().Str("profile", profile).Msg("removed shell profile lines")
			report.Profiles = append(report.Profiles, change)
		}
	}

	return report
}
