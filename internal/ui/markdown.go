package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

const quickStartTemplate = `## Quick Start

1. Apply patches (optional but recommended): ` + "`%[1]s --patch`" + `
2. Start using GSD: ` + "`%[1]s`" + `
3. Try these commands:
   - ` + "`/skill:gsd-new-project`" + ` create a new project
   - ` + "`/skill:gsd-help`" + ` show all commands
   - ` + "`/skill:gsd-progress`" + ` check project status

## After Kimi CLI Updates

Update Kimi CLI with ` + "`uv tool update kimi-cli`" + `, then re-apply the patches with ` + "`%[1]s --patch`" + `.
`

// QuickStartMarkdown returns the post-install instructions as markdown.
func QuickStartMarkdown(launcher string) string {
	return fmt.Sprintf(quickStartTemplate, launcher)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderMarkdown renders md for w. Terminals get the auto-detected style;
// anything else gets plain text.
func RenderMarkdown(w io.Writer, md string, width int) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if IsTerminal(w) {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
