package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "production")

	logger.Debug("hidden")
	logger.Info("Loaded commands", "count", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (debug suppressed), got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", lines[0], err)
	}
	if entry["msg"] != "Loaded commands" {
		t.Errorf("unexpected msg: %v", entry["msg"])
	}
}

func TestNew_DevelopmentWritesTextWithDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "development")

	logger.Debug("Cooldown swept", "removed", 2)

	out := buf.String()
	if !strings.Contains(out, "level=DEBUG") {
		t.Errorf("expected debug line, got %q", out)
	}
	if !strings.Contains(out, "removed=2") {
		t.Errorf("expected key/value pair, got %q", out)
	}
}
