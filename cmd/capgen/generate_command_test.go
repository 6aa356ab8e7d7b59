package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capgen/internal/srt"
)

const transcriptFixture = `{
  "language": "sv",
  "segments": [
    {
      "text": "vi har jobbat",
      "start": 0.0,
      "end": 1.0,
      "words": [
        {"word": "vi", "start": 0.0, "end": 0.3, "score": 0.9},
        {"word": "har", "start": 0.3, "end": 0.6, "score": 0.95},
        {"word": "jobbat", "start": 0.6, "end": 1.0, "score": 0.4}
      ]
    }
  ]
}`

func runCapgen(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeTranscriptFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interview.json")
	if err := os.WriteFile(path, []byte(transcriptFixture), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestGenerateFromTranscriptJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := writeTranscriptFixture(t)
	output := filepath.Join(t.TempDir(), "interview.srt")

	out, err := runCapgen(t, "generate", input, "--output", output, "--style", "traditional")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Generated subtitle") {
		t.Fatalf("missing summary line: %q", out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	cues, err := srt.ParseCues(data)
	if err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text() != "vi har jobbat" {
		t.Fatalf("unexpected cue text %q", cues[0].Text())
	}
}

func TestGenerateKaraokeStyle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := writeTranscriptFixture(t)
	output := filepath.Join(t.TempDir(), "karaoke.srt")

	out, err := runCapgen(t, "generate", input, "-o", output, "-s", "karaoke")
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	cues, err := srt.ParseCues(data)
	if err != nil {
		t.Fatalf("output does not parse: %v", err)
	}
	if len(cues) != 3 {
		t.Fatalf("karaoke should emit one cue per word, got %d", len(cues))
	}
	for i, cue := range cues {
		if cue.Index != i+1 {
			t.Fatalf("cue %d has index %d", i, cue.Index)
		}
	}
}

func TestGenerateRejectsUnknownStyle(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := writeTranscriptFixture(t)

	if _, err := runCapgen(t, "generate", input, "--style", "cinematic"); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestGenerateMissingInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if _, err := runCapgen(t, "generate", filepath.Join(t.TempDir(), "nope.mp4")); err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestGenerateDefaultOutputPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := writeTranscriptFixture(t)

	out, err := runCapgen(t, "generate", input)
	if err != nil {
		t.Fatalf("generate failed: %v\n%s", err, out)
	}
	want := strings.TrimSuffix(input, ".json") + ".srt"
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected output alongside input at %s: %v", want, err)
	}
}
