package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestErrorAndWarning(t *testing.T) {
	var buf bytes.Buffer
	old := Stderr
	Stderr = &buf
	defer func() { Stderr = old }()

	Error("open %s: %v", "journal", "denied")
	Warning("width %d ignored", 3)

	lines := strings.Split(strings.TrimSpace(ansi.Strip(buf.String())), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "ERROR: open journal: denied" {
		t.Errorf("error line = %q", lines[0])
	}
	if lines[1] != "WARNING: width 3 ignored" {
		t.Errorf("warning line = %q", lines[1])
	}
}
