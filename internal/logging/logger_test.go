package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_DefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	if log.GetLevel() != logrus.WarnLevel {
		t.Errorf("expected warn level, got %s", log.GetLevel())
	}
	log.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug should be hidden, got %q", buf.String())
	}
	log.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warning in output, got %q", buf.String())
	}
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.WithField("model", "gpt-3.5-turbo").Debug("sending")
	out := buf.String()
	if !strings.Contains(out, "sending") || !strings.Contains(out, "model=gpt-3.5-turbo") {
		t.Errorf("expected debug entry with field, got %q", out)
	}
}
