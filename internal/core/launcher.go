package core

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/spf13/afero"
)

//go:embed templates/launcher.sh.tmpl
var launcherTemplate string

// LauncherMarker identifies a launcher this tool generated. Uninstall only
// removes a launcher carrying it, or one matching legacyLauncherSignature.
const LauncherMarker = "# Generated by gsd-kimi. Do not edit; re-run the installer instead."

// legacyLauncherSignature is what the unmarked Python jim of earlier
// releases always contains.
var legacyLauncherSignature = []string{"kimi_cli_patcher", "--agent-file", "gsd-agent.yaml"}

// MaintenanceVerbs are routed to the patcher instead of the tool.
var MaintenanceVerbs = []string{"--patch", "--restore", "--status"}

// LauncherOptions configures the generated launcher.
type LauncherOptions struct {
	ConfigPath string
	PatchesDir string
	Tool       string // executable the launcher forwards to (default "kimi")
	ConfigFlag string // flag that passes the config file (default "--agent-file")
}

var launcherTmpl = template.Must(template.New("launcher").Funcs(template.FuncMap{
	"quote": shellQuote,
	"join":  strings.Join,
}).Parse(launcherTemplate))

// RenderLauncher returns the launcher script text. The output depends only
// on opts.
func RenderLauncher(opts LauncherOptions) (string, error) {
	if opts.ConfigPath == "" || opts.PatchesDir == "" {
		return "", fmt.Errorf("launcher needs both a config path and a patches directory")
	}
	if opts.Tool == "" {
		opts.Tool = "kimi"
	}
	if opts.ConfigFlag == "" {
		opts.ConfigFlag = "--agent-file"
	}

	data := struct {
		LauncherOptions
		Marker           string
		Verbs            []string
		Patcher          string
		VersionedPatcher string
	}{
		LauncherOptions:  opts,
		Marker:           LauncherMarker,
		Verbs:            MaintenanceVerbs,
		Patcher:          patcherName,
		VersionedPatcher: versionedPatcherName,
	}

	var buf bytes.Buffer
	if err := launcherTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering launcher: %w", err)
	}
	return buf.String(), nil
}

// WriteLauncher renders the launcher to path with mode 0755, replacing any
// previous version.
func WriteLauncher(fs afero.Fs, path string, opts LauncherOptions) error {
	script, err := RenderLauncher(opts)
	if err != nil {
		return err
	}
	if err := writeFile(fs, path, []byte(script), 0o755); err != nil {
		return err
	}
	if err := fs.Chmod(path, 0o755); err != nil {
		return ioError("chmod", path, err)
	}
	return nil
}

// IsGeneratedLauncher reports whether the file at path was written by
// WriteLauncher or by an earlier release of the installer.
func IsGeneratedLauncher(fs afero.Fs, path string) bool {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return false
	}
	script := string(data)
	if strings.Contains(script, LauncherMarker) {
		return true
	}
	for _, s := range legacyLauncherSignature {
		if !strings.Contains(script, s) {
			return false
		}
	}
	return true
}

// shellQuote single-quotes s for POSIX sh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
