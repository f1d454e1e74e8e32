package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootHasSubcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "migrate", "seed"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected subcommand %q, got %v (err=%v)", name, cmd, err)
		}
	}
}

func TestSeedWithMemoryStore(t *testing.T) {
	t.Setenv("DB_DRIVER", "memory")
	t.Setenv("LOG_LEVEL", "error")

	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	fixture := "stations: [강남역, 역삼역]\nlines:\n  - {name: 신분당선, color: bg-red-600, up: 강남역, down: 역삼역, distance: 10}\n"
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"seed", "--file", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if !strings.Contains(out.String(), "seeded 2 stations and 1 lines") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestSeedMissingFile(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "--file", filepath.Join(t.TempDir(), "missing.yaml")})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for missing fixture")
	}
}
