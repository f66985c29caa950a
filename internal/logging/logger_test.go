package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewWithWriterEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, slog.LevelWarn)

	logger.Info("dropped")
	logger.Warn("gateway unreachable", "gateway", "10.0.0.1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "gateway unreachable" || entry["gateway"] != "10.0.0.1" || entry["service"] != serviceName {
		t.Fatalf("unexpected entry %v", entry)
	}
}
