package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, &buf)
	defer Setup(false, nil)

	New("scan").Debug("reading file", "name", "latest.log")

	out := buf.String()
	if !strings.Contains(out, "reading file") {
		t.Errorf("expected debug message in output, got %q", out)
	}
	if !strings.Contains(out, "scan") {
		t.Errorf("expected component prefix in output, got %q", out)
	}
}

func TestSetupQuietHidesDebug(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, &buf)

	New("scan").Debug("should not appear")
	New("scan").Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should not appear") {
		t.Errorf("expected debug message to be suppressed, got %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("expected warning in output, got %q", out)
	}
}
