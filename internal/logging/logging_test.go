package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug("hidden")
	l.Info("shown", "list", "id-1")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "list=id-1") {
		t.Errorf("missing info line: %q", out)
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l, f, err := Open(path, "debug")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	l.Debug("task added", "title", "Milk")
	f.Close()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "task added") {
		t.Errorf("log file = %q", b)
	}
}
