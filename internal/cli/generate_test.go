package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func executeGenerate(t *testing.T, args ...string) error {
	t.Helper()
	cmd := newGenerateCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	ctx := withLogger(context.Background(), log.NewWithOptions(io.Discard, log.Options{}))
	return cmd.ExecuteContext(ctx)
}

func TestGenerateDemo(t *testing.T) {
	dir := t.TempDir()
	if err := executeGenerate(t, "--demo", "-o", dir, "--format", "json,svg"); err != nil {
		t.Fatalf("generate --demo failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "house.json")); err != nil {
		t.Errorf("missing json artifact: %v", err)
	}
	svgs, err := filepath.Glob(filepath.Join(dir, "house-page*.svg"))
	if err != nil {
		t.Fatalf("globbing svgs: %v", err)
	}
	if len(svgs) == 0 {
		t.Error("no svg pages written")
	}
}

func TestGenerateFromFile(t *testing.T) {
	dir := t.TempDir()
	kitfile := filepath.Join(dir, "shed.toml")
	def := `
scale = "1:24"
formats = ["json"]

[[part]]
name = "wall"
width = "2 m"
height = "2.4 m"
`
	if err := os.WriteFile(kitfile, []byte(def), 0644); err != nil {
		t.Fatalf("writing kitfile: %v", err)
	}

	if err := executeGenerate(t, kitfile, "-o", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// Name defaults to the file name when the definition has none.
	if _, err := os.Stat(filepath.Join(dir, "shed.json")); err != nil {
		t.Errorf("missing artifact: %v", err)
	}
}

func TestGenerateFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	if err := executeGenerate(t, "--demo", "-o", dir, "--format", "json", "--scale", "HO", "--paper", "A3"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "house.json"))
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty artifact")
	}
}

func TestGenerateArgValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"neither demo nor file", []string{}},
		{"both demo and file", []string{"--demo", "some.toml"}},
		{"missing file", []string{"does-not-exist.toml"}},
		{"bad scale", []string{"--demo", "--scale", "gigantic"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := executeGenerate(t, tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
