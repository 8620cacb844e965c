package core

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const (
	testHome      = "/home/user"
	testBundleDir = "/bundle"
)

const testConfigTemplate = `name: gsd
system_prompt_path: ~/.kimi/agents/gsd-system.md
patches: ~/.kimi/patches
`

// bundleSpec describes a synthetic bundle tree.
type bundleSpec struct {
	skills  int
	agents  int
	patches bool
}

// writeBundle lays out a bundle with the given number of skills and agents,
// plus entries every installer must ignore.
func writeBundle(t *testing.T, fs afero.Fs, spec bundleSpec) *Bundle {
	t.Helper()

	write := func(path, content string) {
		t.Helper()
		require.NoError(t, writeFile(fs, filepath.Join(testBundleDir, path), []byte(content), 0o644))
	}

	for i := 1; i <= spec.skills; i++ {
		name := fmt.Sprintf("gsd-skill-%02d", i)
		write(filepath.Join("skills", name, "SKILL.md"), "# "+name+"\n")
	}
	write("skills/other-skill/SKILL.md", "not ours\n")
	write("skills/gsd-notes.txt", "loose file\n")

	for i := 1; i <= spec.agents; i++ {
		name := fmt.Sprintf("gsd-agent-%02d", i)
		write(filepath.Join("agents", name, "agent.yaml"), "name: "+name+"\n")
	}
	write("agents/gsd-system.md", "You are GSD.\n")

	write("references/checklist.md", "# Checklist\n")
	write("references/style.md", "# Style\n")
	write("references/draft.txt", "ignored\n")
	write("workflows/execute.md", "# Execute\n")

	if spec.patches {
		write("patches/"+versionedPatcherName, "#!/usr/bin/env python3\n")
		write("patches/README.md", "ignored\n")
	}

	write(configTemplateName, testConfigTemplate)

	b, err := LoadBundle(fs, testBundleDir)
	require.NoError(t, err)
	return b
}

func testPaths(t *testing.T) Paths {
	t.Helper()
	p, err := NewPaths(testHome, "/bin/zsh", "")
	require.NoError(t, err)
	return p
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
