package core

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/optivent/gsd-kimi-cli/internal/core/component"
)

// CheckStatus is the outcome of a single verification check.
type CheckStatus int

const (
	CheckPass CheckStatus = iota
	CheckWarn
	CheckFail
)

// Check is one line of a verification report.
type Check struct {
	Name   string
	Status CheckStatus
	Detail string
}

// Report is the verifier's result. OK is false when any required check
// failed; warnings do not affect it.
type Report struct {
	OK     bool
	Checks []Check
}

// Failed returns the checks that failed.
func (r Report) Failed() []Check {
	var failed []Check
	for _, c := range r.Checks {
		if c.Status == CheckFail {
			failed = append(failed, c)
		}
	}
	return failed
}

// String renders one line per check.
func (r Report) String() string {
	var b strings.Builder
	for _, c := range r.Checks {
		mark := "✓"
		switch c.Status {
		case CheckWarn:
			mark = "⚠"
		case CheckFail:
			mark = "✗"
		}
		fmt.Fprintf(&b, "%s %s: %s\n", mark, c.Name, c.Detail)
	}
	return b.String()
}

// VerifyInput names everything the verifier inspects.
type VerifyInput struct {
	SkillsDir    string
	AgentsDir    string
	ConfigPath   string
	PatchesDir   string
	LauncherPath string
	Prefix       string
	Thresholds   Thresholds
	// LauncherOptional downgrades a missing launcher to a warning, for
	// installs that skipped patches.
	LauncherOptional bool
}

// Verify re-reads installed state and checks it against the thresholds.
// It never writes.
func Verify(fs afero.Fs, in VerifyInput) Report {
	prefix := in.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	report := Report{OK: true}
	add := func(c Check) {
		if c.Status == CheckFail {
			report.OK = false
		}
		report.Checks = append(report.Checks, c)
	}

	skillFilter := component.And(
		component.PrefixDirs(prefix),
		component.Not(component.OneOf(agentsContainer, referencesContainer, workflowsContainer)),
	)
	add(countCheck("Skills", countEntries(fs, in.SkillsDir, skillFilter), in.Thresholds.Skills))
	add(countCheck("Agents", countEntries(fs, in.AgentsDir, component.PrefixDirs(prefix)), in.Thresholds.Agents))

	if fileExists(fs, in.ConfigPath) {
		add(Check{Name: "Master agent", Status: CheckPass, Detail: in.ConfigPath})
	} else {
		add(Check{Name: "Master agent", Status: CheckFail, Detail: "not found at " + in.ConfigPath})
	}

	if dirExists(fs, in.PatchesDir) {
		n := countEntries(fs, in.PatchesDir, component.Extension(".py"))
		add(Check{Name: "Patches", Status: CheckPass, Detail: fmt.Sprintf("%d installed", n)})
	} else {
		add(Check{Name: "Patches", Status: CheckWarn, Detail: "not installed"})
	}

	switch {
	case fileExists(fs, in.LauncherPath):
		add(Check{Name: "Launcher", Status: CheckPass, Detail: in.LauncherPath})
	case in.LauncherOptional:
		add(Check{Name: "Launcher", Status: CheckWarn, Detail: "not installed"})
	default:
		add(Check{Name: "Launcher", Status: CheckFail, Detail: "not found at " + in.LauncherPath})
	}

	return report
}

func countCheck(name string, got, want int) Check {
	if got >= want {
		return Check{Name: name, Status: CheckPass, Detail: fmt.Sprintf("%d installed", got)}
	}
	return Check{Name: name, Status: CheckFail, Detail: fmt.Sprintf("only %d found (expected %d+)", got, want)}
}

// countEntries counts the entries of dir accepted by filter. A missing dir
// counts as zero.
func countEntries(fs afero.Fs, dir string, filter component.Filter) int {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if filter(e.Name(), e.IsDir()) {
			n++
		}
	}
	return n
}
