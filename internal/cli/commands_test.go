// Package cli_test exercises the commands end to end against fixture
// documents.
package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tonemill/tonemill/internal/cli"
)

// setupDocs copies the fixture palette and base documents into a temp
// directory and returns the three document paths.
func setupDocs(t *testing.T) (palettePath, basePath, themePath string) {
	t.Helper()
	dir := t.TempDir()

	for src, dst := range map[string]string{
		filepath.Join("..", "document", "testdata", "palette.json"): filepath.Join(dir, "palette.json"),
		filepath.Join("..", "document", "testdata", "base.json"):    filepath.Join(dir, "base.json"),
	} {
		data, err := os.ReadFile(src)
		if err != nil {
			t.Fatalf("failed to read fixture %s: %v", src, err)
		}
		if err := os.WriteFile(dst, data, 0o600); err != nil {
			t.Fatalf("failed to write fixture %s: %v", dst, err)
		}
	}

	return filepath.Join(dir, "palette.json"),
		filepath.Join(dir, "base.json"),
		filepath.Join(dir, "theme.json")
}

// run executes the root command with args and returns its combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateValidateCheck(t *testing.T) {
	palette, base, themePath := setupDocs(t)
	docFlags := []string{"--palette", palette, "--base", base, "--theme", themePath}

	t.Run("generate writes the artifact", func(t *testing.T) {
		out, err := run(t, append([]string{"generate"}, docFlags...)...)
		if err != nil {
			t.Fatalf("generate failed: %v\n%s", err, out)
		}
		if _, err := os.Stat(themePath); err != nil {
			t.Fatalf("artifact not written: %v", err)
		}
	})

	t.Run("validate passes on generated artifact", func(t *testing.T) {
		out, err := run(t, append([]string{"validate"}, docFlags...)...)
		if err != nil {
			t.Fatalf("validate failed: %v\n%s", err, out)
		}
		if !strings.Contains(out, "Validation complete.") {
			t.Errorf("output = %q", out)
		}
		if strings.Contains(out, "FAIL:") {
			t.Errorf("unexpected failures:\n%s", out)
		}
	})

	t.Run("check passes on fresh artifact", func(t *testing.T) {
		out, err := run(t, append([]string{"check"}, docFlags...)...)
		if err != nil {
			t.Fatalf("check failed: %v\n%s", err, out)
		}
		if !strings.Contains(out, "Theme matches source") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("check detects drift", func(t *testing.T) {
		data, err := os.ReadFile(themePath)
		if err != nil {
			t.Fatalf("failed to read artifact: %v", err)
		}
		drifted := bytes.Replace(data, []byte("#1a1a2e"), []byte("#1a1a2f"), 1)
		if err := os.WriteFile(themePath, drifted, 0o600); err != nil {
			t.Fatalf("failed to write drifted artifact: %v", err)
		}

		if _, err := run(t, append([]string{"check"}, docFlags...)...); err == nil {
			t.Error("check passed on drifted artifact")
		}

		// Restore for later subtests.
		if err := os.WriteFile(themePath, data, 0o600); err != nil {
			t.Fatalf("failed to restore artifact: %v", err)
		}
	})

	t.Run("coverage reports core tokens", func(t *testing.T) {
		out, err := run(t, append([]string{"coverage"}, docFlags...)...)
		if err != nil {
			t.Fatalf("coverage failed: %v\n%s", err, out)
		}
		if !strings.Contains(out, "All core tokens covered!") {
			t.Errorf("output = %q", out)
		}
	})
}

func TestValidateFailsOnBrokenTheme(t *testing.T) {
	palette, base, themePath := setupDocs(t)

	theme := `{
  "$schema": "https://zed.dev/schema/themes/v0.2.0.json",
  "name": "Broken",
  "author": "tonemill",
  "themes": [
    {
      "name": "Classic",
      "appearance": "dark",
      "style": {
        "background": "#1a1a2e",
        "foreground": "#2a2a3e",
        "players": []
      }
    }
  ]
}`
	if err := os.WriteFile(themePath, []byte(theme), 0o600); err != nil {
		t.Fatalf("failed to write theme: %v", err)
	}

	out, err := run(t, "validate", "--palette", palette, "--base", base, "--theme", themePath)
	if err == nil {
		t.Fatal("validate passed on broken theme")
	}
	if !strings.Contains(out, "text contrast") {
		t.Errorf("missing contrast failure:\n%s", out)
	}
	if !strings.Contains(out, "only 0 players") {
		t.Errorf("missing player failure:\n%s", out)
	}
}

func TestDeriveTable(t *testing.T) {
	palette, base, themePath := setupDocs(t)

	out, err := run(t, "derive", "--palette", palette, "--base", base, "--theme", themePath)
	if err != nil {
		t.Fatalf("derive failed: %v\n%s", err, out)
	}

	for _, want := range []string{"Token", "soft", "high_contrast", "--apply"} {
		if !strings.Contains(out, want) {
			t.Errorf("derive output missing %q:\n%s", want, out)
		}
	}
}

func TestPreviewWritesPNG(t *testing.T) {
	palette, base, themePath := setupDocs(t)
	outPath := filepath.Join(filepath.Dir(themePath), "preview.png")

	out, err := run(t, "preview",
		"--palette", palette, "--base", base, "--theme", themePath,
		"-o", outPath, "--cell-size", "4")
	if err != nil {
		t.Fatalf("preview failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("preview not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
