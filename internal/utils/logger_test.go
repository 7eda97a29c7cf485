package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"not-a-level", logrus.InfoLevel},
		{"", logrus.InfoLevel},
	}

	for _, tt := range tests {
		logger := NewLogger(tt.level)
		if logger.GetLevel() != tt.want {
			t.Errorf("NewLogger(%q) level = %v, want %v", tt.level, logger.GetLevel(), tt.want)
		}
	}
}

func TestNewLoggerToWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "info")
	logger.WithField("mode", "score").Info("Analysis completed")

	out := buf.String()
	if !strings.Contains(out, "mode=score") || !strings.Contains(out, "Analysis completed") {
		t.Errorf("Unexpected log output: %s", out)
	}
}
