package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/optivent/gsd-kimi-cli/internal/core"
	"github.com/optivent/gsd-kimi-cli/internal/core/component"
	"github.com/optivent/gsd-kimi-cli/internal/core/location"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 80

// Banner returns the one-line product header.
func Banner(version string) string {
	return logoStyle.Render("GSD for Kimi CLI v"+version) + "\n" +
		mutedStyle.Render("Spec-driven development workflow system") + "\n"
}

// Location describes where components are going.
func Location(c location.Candidate, width int) string {
	return fmt.Sprintf("📍 Using: %s\n   %s\n", c.Label, mutedStyle.Render(TruncatePath(c.Path, width-3)))
}

// InstallSummary renders the boxed result of an install.
func InstallSummary(r *core.InstallReport) string {
	var rows []string
	for _, c := range r.Components {
		rows = append(rows, row(c.Kind.DisplayName()+":", componentLine(c)))
	}

	if r.ConfigPath != "" {
		rows = append(rows, row("Master:", successStyle.Render("✓ Installed")))
	} else {
		rows = append(rows, row("Master:", errorStyle.Render("✗ Failed")))
	}
	if r.Patches != nil {
		rows = append(rows, row("Patches:", successStyle.Render(fmt.Sprintf("✓ %d installed", r.Patches.Installed))))
	} else {
		rows = append(rows, row("Patches:", warningStyle.Render("⚠ Skipped")))
	}
	if r.Profile.Changed {
		rows = append(rows, row("Shell:", successStyle.Render("✓ Updated")))
	} else {
		rows = append(rows, row("Shell:", successStyle.Render("✓ OK")))
	}

	body := titleStyle.Render("Installation Summary") + "\n\n" + strings.Join(rows, "\n")
	return boxStyle.Render(body) + "\n"
}

func componentLine(r *core.InstallResult) string {
	if !r.Flat {
		return fmt.Sprintf("%2d new, %2d updated", r.Installed, r.Updated)
	}
	switch r.Kind {
	case component.KindReference:
		return fmt.Sprintf("%2d knowledge bases", r.Installed)
	case component.KindWorkflow:
		return fmt.Sprintf("%2d templates", r.Installed)
	default:
		return fmt.Sprintf("%2d files", r.Installed)
	}
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

// VerifyReport renders one colored line per check.
func VerifyReport(r core.Report) string {
	var b strings.Builder
	b.WriteString("🔍 Verifying installation...\n")
	for _, c := range r.Checks {
		line := fmt.Sprintf("  %s %s: %s", mark(c.Status), c.Name, c.Detail)
		switch c.Status {
		case core.CheckPass:
			line = successStyle.Render(line)
		case core.CheckWarn:
			line = warningStyle.Render(line)
		default:
			line = errorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func mark(s core.CheckStatus) string {
	switch s {
	case core.CheckPass:
		return "✓"
	case core.CheckWarn:
		return "⚠"
	default:
		return "✗"
	}
}

// ScanPlan lists what an uninstall removes, grouped by directory.
func ScanPlan(groups []core.ScanGroup, files []string, width int) string {
	if len(groups) == 0 && len(files) == 0 {
		return mutedStyle.Render("No GSD files found.") + "\n"
	}

	var b strings.Builder
	for _, g := range groups {
		header := fmt.Sprintf("%s: %s (%d)", g.Label, TruncatePath(g.Dir, width-len(g.Label)-8), len(g.Names))
		if g.Legacy {
			header += mutedStyle.Render(" legacy")
		}
		b.WriteString(titleStyle.Render(header) + "\n")
		for _, name := range g.Names {
			b.WriteString("  - " + name + "\n")
		}
	}
	if len(files) > 0 {
		b.WriteString(titleStyle.Render("Files") + "\n")
		for _, f := range files {
			b.WriteString("  - " + TruncatePath(f, width-4) + "\n")
		}
	}
	return b.String()
}

// UninstallSummary reports the outcome of an uninstall.
func UninstallSummary(r *core.UninstallReport) string {
	var rows []string
	rows = append(rows, row("Removed:", fmt.Sprintf("%d entries", r.Result.RemovedCount())))
	rows = append(rows, row("Pruned:", fmt.Sprintf("%d empty directories", len(r.Result.PrunedDirs))))
	rows = append(rows, row("Shell:", fmt.Sprintf("%d profiles cleaned", len(r.Profiles))))
	if n := len(r.Result.Errors); n > 0 {
		rows = append(rows, row("Errors:", errorStyle.Render(fmt.Sprintf("✗ %d failed", n))))
	}

	body := titleStyle.Render("Uninstall Summary") + "\n\n" + strings.Join(rows, "\n")
	out := boxStyle.Render(body) + "\n"
	for _, err := range r.Result.Errors {
		out += errorStyle.Render("  ✗ "+err.Error()) + "\n"
	}
	return out
}

// TruncatePath shortens p to at most width cells.
func TruncatePath(p string, width int) string {
	if width <= 0 || ansi.StringWidth(p) <= width {
		return p
	}
	return ansi.Truncate(p, width, "…")
}
