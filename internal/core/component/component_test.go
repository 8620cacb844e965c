package component

import (
	"testing"
)

func TestFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
		entry  string
		isDir  bool
		want   bool
	}{
		{"all accepts file", All, "anything", false, true},
		{"prefix dir match", PrefixDirs("gsd-"), "gsd-help", true, true},
		{"prefix dir rejects file", PrefixDirs("gsd-"), "gsd-system.md", false, false},
		{"prefix dir rejects other dir", PrefixDirs("gsd-"), "my-skill", true, false},
		{"prefixed accepts file", Prefixed("gsd-"), "gsd-system.md", false, true},
		{"extension match", Extension(".md"), "planning.md", false, true},
		{"extension rejects dir", Extension(".md"), "notes.md", true, false},
		{"extension rejects other", Extension(".md"), "script.py", false, false},
		{"not inverts", Not(PrefixDirs("gsd-")), "my-skill", true, true},
		{"and combines", And(Prefixed("gsd-"), Extension(".md")), "gsd-system.md", false, true},
		{"and rejects", And(Prefixed("gsd-"), Extension(".md")), "system.md", false, false},
		{"one of matches", OneOf("gsd-agents", "gsd-workflows"), "gsd-workflows", true, true},
		{"one of rejects", OneOf("gsd-agents"), "gsd-agent", true, false},
		{"one of empty", OneOf(), "gsd-agents", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter(tt.entry, tt.isDir); got != tt.want {
				t.Errorf("filter(%q, %v) = %v, want %v", tt.entry, tt.isDir, got, tt.want)
			}
		})
	}
}

func TestNamedKey(t *testing.T) {
	a := Named{Kind: KindSkill, Name: "gsd-help", SourcePath: "/a"}
	b := Named{Kind: KindSkill, Name: "gsd-help", SourcePath: "/b"}
	c := Named{Kind: KindAgent, Name: "gsd-help"}

	if a.Key() != b.Key() {
		t.Errorf("same kind+name should share identity: %q vs %q", a.Key(), b.Key())
	}
	if a.Key() == c.Key() {
		t.Errorf("different kinds should not share identity: %q", a.Key())
	}
}

func TestKindDisplayName(t *testing.T) {
	for _, k := range Kinds() {
		if k.DisplayName() == string(k) {
			t.Errorf("kind %q has no display name", k)
		}
	}
}
