package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "folio.log")

	// 1MB is the smallest size lumberjack accepts.
	cfg := FileConfig{Path: logFile, MaxSizeMB: 1, MaxBackups: 2, MaxAgeDays: 1}
	if err := InitWithFileConfig("debug", cfg, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer InitNop()

	payload := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("frame %d: %s", i, payload)
	}
	Sync()

	if _, err := os.Stat(logFile); err != nil {
		t.Fatalf("main log file: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading log dir: %v", err)
	}
	rotated := 0
	for _, e := range entries {
		name := e.Name()
		if name == "folio.log" || !strings.HasPrefix(name, "folio-") {
			continue
		}
		rotated++
		// folio-YYYY-MM-DDTHH-MM-SS.SSS.log
		if !strings.HasPrefix(name, "folio-20") {
			t.Errorf("rotated file %s has no timestamp", name)
		}
	}
	if rotated == 0 {
		t.Errorf("no rotated files in %v", entries)
	}
}

func TestLogLevels(t *testing.T) {
	all := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	tests := []struct {
		level string
		shown int // number of trailing entries of all that appear
	}{
		{"error", 1},
		{"warn", 2},
		{"info", 3},
		{"debug", 4},
		{"bogus", 3},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logFile := filepath.Join(t.TempDir(), tt.level+".log")
			if err := InitWithFileConfig(tt.level, FileConfig{Path: logFile, MaxSizeMB: 10}, false); err != nil {
				t.Fatalf("failed to init logger: %v", err)
			}
			defer InitNop()

			Debug("debug message")
			Info("info message")
			Warn("warn message")
			Error("error message")
			Sync()

			content, err := os.ReadFile(logFile)
			if err != nil {
				t.Fatalf("failed to read log file: %v", err)
			}
			out := string(content)
			cut := len(all) - tt.shown
			for _, lvl := range all[:cut] {
				if strings.Contains(out, lvl) {
					t.Errorf("unexpected %s at level %s", lvl, tt.level)
				}
			}
			for _, lvl := range all[cut:] {
				if !strings.Contains(out, lvl) {
					t.Errorf("missing %s at level %s", lvl, tt.level)
				}
			}
		})
	}
}

func TestDefaultFileConfig(t *testing.T) {
	got := DefaultFileConfig("folio.log")
	want := FileConfig{Path: "folio.log", MaxSizeMB: 50, MaxBackups: 3, MaxAgeDays: 7, Compress: true}
	if got != want {
		t.Errorf("DefaultFileConfig = %+v, want %+v", got, want)
	}
}

func TestNewConsoleOnly(t *testing.T) {
	var buf bytes.Buffer
	l := New(zapcore.WarnLevel, FileConfig{}, &buf)
	l.Info("hidden")
	l.Named("renderer").Warn("context lost")
	_ = l.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "renderer") || !strings.Contains(out, "context lost") {
		t.Errorf("expected named warn entry, got %q", out)
	}
}

func TestInitNop(t *testing.T) {
	InitNop()
	Info("discarded")
	Named("scene").Debug("discarded")
	Sync()
}

func TestNamedLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "named.log")
	if err := InitWithFileConfig("info", FileConfig{Path: logFile, MaxSizeMB: 1}, false); err != nil {
		t.Fatalf("failed to init logger: %v", err)
	}
	defer InitNop()

	Named("assembler").Info("scene ready")
	Sync()

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "assembler") {
		t.Errorf("expected logger name in output, got %q", content)
	}
}
