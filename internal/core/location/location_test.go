package location

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

const home = "/home/tester"

func TestResolve(t *testing.T) {
	candidates := Set{
		{Path: "/a", Label: "A", Priority: 0},
		{Path: "/b", Label: "B", Priority: 1},
		{Path: "/c", Label: "C", Priority: 2},
	}

	t.Run("first existing wins", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		for _, p := range []string{"/b", "/c"} {
			if err := fs.MkdirAll(p, 0o755); err != nil {
				t.Fatal(err)
			}
		}
		got := Resolve(fs, candidates)
		if got.Path != "/b" {
			t.Errorf("Resolve() = %q, want /b", got.Path)
		}
	})

	t.Run("falls back to recommended without creating it", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		got := Resolve(fs, candidates)
		if got.Path != "/a" {
			t.Errorf("Resolve() = %q, want /a", got.Path)
		}
		if ok, _ := afero.Exists(fs, "/a"); ok {
			t.Error("Resolve() must not create the fallback directory")
		}
	})

	t.Run("empty set", func(t *testing.T) {
		if got := Resolve(afero.NewMemMapFs(), nil); got != (Candidate{}) {
			t.Errorf("Resolve(nil) = %+v, want zero Candidate", got)
		}
	})

	t.Run("ignores unrelated paths", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		_ = fs.MkdirAll("/c", 0o755)
		first := Resolve(fs, candidates)
		_ = fs.MkdirAll("/unrelated/dir", 0o755)
		second := Resolve(fs, candidates)
		if first != second {
			t.Errorf("Resolve() changed from %q to %q after unrelated change", first.Path, second.Path)
		}
	})
}

func TestInstallCandidates(t *testing.T) {
	set := InstallCandidates(home)
	if err := set.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	want := []string{
		filepath.Join(home, ".config/agents/skills"),
		filepath.Join(home, ".agents/skills"),
		filepath.Join(home, ".kimi/skills"),
	}
	got := set.Paths()
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUninstallCandidates(t *testing.T) {
	set := UninstallCandidates(home, []string{"~/.cursor/skills", "/opt/skills", "", filepath.Join(home, ".kimi/skills")})
	if err := set.Validate(); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	install := InstallCandidates(home)
	for i, c := range install {
		if set[i] != c {
			t.Errorf("uninstall set must start with install candidates; [%d] = %+v", i, set[i])
		}
	}

	paths := set.Paths()
	for _, want := range []string{
		filepath.Join(home, ".claude/skills"),
		filepath.Join(home, ".codex/skills"),
		filepath.Join(home, ".cursor/skills"),
		"/opt/skills",
	} {
		found := false
		for _, p := range paths {
			if p == want {
				found = true
			}
		}
		if !found {
			t.Errorf("expected %q in uninstall candidates %v", want, paths)
		}
	}
	if len(set) != 7 {
		t.Errorf("expected duplicate and empty extras to be skipped, got %d candidates", len(set))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     Set
		wantErr bool
	}{
		{"empty", Set{}, true},
		{"relative path", Set{{Path: "skills", Priority: 0}}, true},
		{"equal priority", Set{{Path: "/a", Priority: 1}, {Path: "/b", Priority: 1}}, true},
		{"decreasing priority", Set{{Path: "/a", Priority: 2}, {Path: "/b", Priority: 1}}, true},
		{"valid", Set{{Path: "/a", Priority: 0}, {Path: "/b", Priority: 5}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
