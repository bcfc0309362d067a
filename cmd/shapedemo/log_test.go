package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLogOptionsFromEnv(t *testing.T) {
	t.Setenv("SHAPEDEMO_LOG_LEVEL", "debug")
	t.Setenv("SHAPEDEMO_LOG_FILE", " /tmp/shapedemo.log ")

	got := logOptions{}.withEnv()
	if got.Level != "debug" || got.File != "/tmp/shapedemo.log" {
		t.Errorf("withEnv() = %+v", got)
	}

	got = logOptions{Level: "error", File: "x.log"}.withEnv()
	if got.Level != "error" || got.File != "x.log" {
		t.Errorf("flags must win over env, got %+v", got)
	}
}

func TestMultiHandlerRespectsLevels(t *testing.T) {
	var debug, warn bytes.Buffer
	h := &multiHandler{hs: []slog.Handler{
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warn, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug must be enabled when any handler accepts it")
	}

	logger := slog.New(h).With("k", "v")
	logger.Debug("fine detail")
	logger.Warn("careful")

	if !strings.Contains(debug.String(), "fine detail") || !strings.Contains(debug.String(), "careful") {
		t.Errorf("debug handler output = %q", debug.String())
	}
	if strings.Contains(warn.String(), "fine detail") {
		t.Errorf("warn handler received a debug record: %q", warn.String())
	}
	if !strings.Contains(warn.String(), "k=v") {
		t.Errorf("attrs not propagated: %q", warn.String())
	}
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "showcase.png")
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	if err := run(logger, "", out, 0.25, ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Errorf("output is not a PNG")
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "showcase.bmp")
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	if err := run(logger, "", out, 0.25, ""); err == nil {
		t.Fatal("expected an error for .bmp output")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("no file should be created for an unsupported format")
	}
}
