package project

import (
	"os"
	"path/filepath"
	"testing"
)

func mkdirs(t *testing.T, paths ...string) {
	t.Helper()
	for _, p := range paths {
		if err := os.MkdirAll(p, 0o755); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "src", "util")
	mkdirs(t, deep)
	cfg := filepath.Join(root, ConfigName)
	if err := os.WriteFile(cfg, []byte("[guards]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, ok, err := FindConfig(deep)
	if err != nil || !ok {
		t.Fatalf("FindConfig() ok=%v err=%v", ok, err)
	}
	if got != cfg {
		t.Fatalf("FindConfig() = %q, want %q", got, cfg)
	}

	dir, ok, err := FindProjectRoot(deep)
	if err != nil || !ok || dir != root {
		t.Fatalf("FindProjectRoot() = %q ok=%v err=%v, want %q", dir, ok, err, root)
	}
}

func TestFindProjectRootFallsBackToGit(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "lib", "core")
	mkdirs(t, deep, filepath.Join(root, ".git"))

	dir, ok, err := FindProjectRoot(deep)
	if err != nil || !ok {
		t.Fatalf("FindProjectRoot() ok=%v err=%v", ok, err)
	}
	if dir != root {
		t.Fatalf("FindProjectRoot() = %q, want %q", dir, root)
	}
}
