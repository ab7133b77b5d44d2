package save

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestAppendRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	AppendRunLog("", RunLog{
		Class:      "hexer",
		Monster:    "goblin",
		Outcome:    "won",
		Turns:      7,
		ArenaLevel: 2,
	}, quietLogger())

	logPath := filepath.Join(tmp, "arena-rpg", "runs.jsonl")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hexer") {
		t.Errorf("log file does not contain class name; got: %q", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Errorf("log entry should end with newline; got: %q", content)
	}
	var got RunLog
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.RunID == uuid.Nil {
		t.Error("RunID was not assigned")
	}
}

func TestAppendRunLogAppendsMultiple(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		AppendRunLog(dir, RunLog{Class: "rogue", Turns: i + 1}, quietLogger())
	}

	data, err := os.ReadFile(filepath.Join(dir, "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestAppendRunLogUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	// A file where the directory should be: must not panic.
	AppendRunLog(filepath.Join(blocker, "sub"), RunLog{Class: "rogue"}, quietLogger())
}
