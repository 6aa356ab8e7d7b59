package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCheckValidFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "good.srt")
	content := "1\n00:00:00,000 --> 00:00:01,500\nvi har jobbat\n\n2\n00:00:02,000 --> 00:00:04,000\nhela dagen\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCapgen(t, "check", path)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "OK: 2 cues") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCheckReportsIssues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.srt")
	content := "1\n00:00:02,000 --> 00:00:01,000\nbackwards\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	out, err := runCapgen(t, "check", path)
	if err == nil {
		t.Fatalf("expected failure for invalid file, output:\n%s", out)
	}
	if !strings.Contains(out, "non-positive duration") {
		t.Fatalf("issue table missing: %q", out)
	}
}

func TestCheckRequiresArgument(t *testing.T) {
	if _, err := runCapgen(t, "check"); err == nil {
		t.Fatal("expected usage error without a file argument")
	}
}

func TestStylesListsPresets(t *testing.T) {
	out, err := runCapgen(t, "styles")
	if err != nil {
		t.Fatalf("styles failed: %v", err)
	}
	for _, style := range []string{"traditional", "social", "karaoke"} {
		if !strings.Contains(out, style) {
			t.Fatalf("styles output missing %q:\n%s", style, out)
		}
	}
}

func TestConfigInitAndPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCapgen(t, "config", "path")
	if err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if !strings.Contains(out, filepath.Join(".config", "capgen", "config.toml")) {
		t.Fatalf("unexpected default path: %q", out)
	}

	target := filepath.Join(t.TempDir(), "config.toml")
	out, err = runCapgen(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init failed: %v\n%s", err, out)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("sample config not written: %v", err)
	}

	// A second init without --overwrite must refuse.
	if _, err := runCapgen(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
	if _, err := runCapgen(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("overwrite init failed: %v", err)
	}
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	out, err := runCapgen(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	for _, want := range []string{"[captions]", "style = 'traditional'", "[whisper]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("config show missing %q:\n%s", want, out)
		}
	}
}
