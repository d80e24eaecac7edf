package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cdlog "github.com/msto63/clipdash/foundation/core/log"
)

func TestToFields(t *testing.T) {
	tests := []struct {
		name   string
		input  []interface{}
		expect map[string]interface{}
	}{
		{"empty", nil, nil},
		{"pairs", []interface{}{"a", 1, "b", "x"}, map[string]interface{}{"a": 1, "b": "x"}},
		{"odd count drops last", []interface{}{"a", 1, "b"}, map[string]interface{}{"a": 1}},
		{"non string key", []interface{}{42, "v", "k", true}, map[string]interface{}{"k": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toFields(tt.input...)
			if len(got) != len(tt.expect) {
				t.Fatalf("toFields() = %v, want %v", got, tt.expect)
			}
			for k, v := range tt.expect {
				if got[k] != v {
					t.Errorf("toFields()[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "clipdash.log")
	logger, err := NewLogger(LoggerConfig{
		Name:   "clipdash",
		Level:  "debug",
		Format: "json",
		File:   path,
	})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("stored buffer", "chars", 12)
	logger.Debug("detail")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("log has %d lines, want 2: %q", len(lines), data)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["message"] != "stored buffer" || entry["chars"] != float64(12) || entry["logger"] != "clipdash" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	if _, err := NewLogger(LoggerConfig{Level: "chatty", File: StderrFile}); err == nil {
		t.Error("NewLogger() should reject an unknown level")
	}
	if _, err := NewLogger(LoggerConfig{Format: "xml", File: StderrFile}); err == nil {
		t.Error("NewLogger() should reject an unknown format")
	}
}

func TestWithActionID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger("clipdash", cdlog.LevelInfo, &buf)
	logger.WithActionID("42").Warn("diff failed", "tool", "meld")

	var entry map[string]interface{}
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["action_id"] != "42" || entry["tool"] != "meld" || entry["level"] != "warn" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestNewNop(t *testing.T) {
	logger := NewNop("quiet")
	logger.Error("dropped")
	if logger.Name() != "quiet" {
		t.Errorf("Name() = %v, want quiet", logger.Name())
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
