package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFormatAuditLine(t *testing.T) {
	ev := InventoryChanged{
		Entity:     "genres",
		Action:     ActionDelete,
		Key:        "4",
		OccurredAt: "2024-03-01T10:00:00Z",
		RequestID:  "abc",
	}
	got := formatAuditLine(ev)
	want := "[2024-03-01T10:00:00Z] genres delete | key=4 | request_id=abc\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	ev.Key, ev.RequestID = "", ""
	if got := formatAuditLine(ev); got != "[2024-03-01T10:00:00Z] genres delete\n" {
		t.Fatalf("bare line = %q", got)
	}
}

func TestHandleMessageAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "inventory.log")
	for _, key := range []string{"1", "2"} {
		body, _ := json.Marshal(NewInventoryChanged("stocks", ActionCreate, key, ""))
		if err := handleMessage(body, path); err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2: %q", len(lines), data)
	}
	if !strings.Contains(lines[1], "stocks create | key=2") {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestHandleMessageRejectsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.log")
	if err := handleMessage([]byte("{not json"), path); err == nil {
		t.Error("expected error for bad json")
	}
	if err := handleMessage([]byte(`{"key":"1"}`), path); err == nil {
		t.Error("expected error for missing entity")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("rejected messages must not touch the log")
	}
}
