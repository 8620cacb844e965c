package core

import (
	"strings"

	"github.com/spf13/afero"
)

// Substitution replaces every literal occurrence of Token with Value.
type Substitution struct {
	Token string
	Value string
}

// Materialize reads templatePath, applies subs in order and writes the
// result to destPath, replacing whatever was there. Tokens are plain
// literals; there is no templating language.
func Materialize(fs afero.Fs, templatePath, destPath string, subs []Substitution) (string, error) {
	if !fileExists(fs, templatePath) {
		return "", notFound("read template", templatePath)
	}
	data, err := afero.ReadFile(fs, templatePath)
	if err != nil {
		return "", ioError("read template", templatePath, err)
	}

	content := string(data)
	for _, s := range subs {
		if s.Token == "" {
			continue
		}
		content = strings.ReplaceAll(content, s.Token, s.Value)
	}

	if err := writeFileAtomic(fs, destPath, []byte(content), 0o644); err != nil {
		return "", err
	}
	return destPath, nil
}

// configSubstitutions maps the home shorthand in the agent config template to
// the resolved Kimi directory.
func configSubstitutions(p Paths) []Substitution {
	return []Substitution{{Token: homePlaceholder, Value: p.KimiDir}}
}
