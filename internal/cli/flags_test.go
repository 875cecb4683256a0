package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

func TestParseFlags_NoArgs(t *testing.T) {
	// Save original args
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	// Simulate no arguments
	os.Args = []string{"bmr-calculator"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Errorf("ParseFlags() error = %v, want nil", err)
	}
	if cfg != nil {
		t.Errorf("ParseFlags() with no args should return nil config for GUI mode, got %v", cfg)
	}
}

func TestParseFlags_HelpFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	for _, arg := range []string{"help", "--help", "-h"} {
		os.Args = []string{"bmr-calculator", arg}

		cfg, err := ParseFlags()
		if err != nil {
			t.Errorf("ParseFlags(%s) error = %v, want nil", arg, err)
		}
		if cfg != nil {
			t.Errorf("ParseFlags(%s) should return nil config, got %v", arg, cfg)
		}
	}
}

func TestParseFlags_Measurements(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"bmr-calculator", "-w", "70", "-H", "175", "-a", "30", "-s", "female", "-A", "light"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v, want nil", err)
	}
	if cfg == nil {
		t.Fatal("ParseFlags() returned nil, want config")
	}

	if cfg.Weight != "70" {
		t.Errorf("Weight = %q, want 70", cfg.Weight)
	}
	if cfg.Height != "175" {
		t.Errorf("Height = %q, want 175", cfg.Height)
	}
	if cfg.Age != "30" {
		t.Errorf("Age = %q, want 30", cfg.Age)
	}
	if cfg.Sex != "female" {
		t.Errorf("Sex = %q, want female", cfg.Sex)
	}
	if cfg.Activity != "light" {
		t.Errorf("Activity = %q, want light", cfg.Activity)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.LogFormat)
	}
}

func TestParseFlags_LongNames(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"bmr-calculator", "-weight", "82.5", "-height", "190", "-age", "45",
		"-profile", "me.hcl", "-output", "reports/bmr", "-verbose", "-log-format", "JSON"}

	cfg, err := ParseFlags()
	if err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if cfg.Weight != "82.5" {
		t.Errorf("Weight = %q, want 82.5", cfg.Weight)
	}
	if cfg.ProfilePath != "me.hcl" {
		t.Errorf("ProfilePath = %q, want me.hcl", cfg.ProfilePath)
	}
	if cfg.Output != "reports/bmr" {
		t.Errorf("Output = %q, want reports/bmr", cfg.Output)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
}

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	origStderr := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = origStderr }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestParseFlags_BadLogFormat(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"bmr-calculator", "-w", "70", "-log-format", "xml"}

	var cfg *RunnerConfig
	var err error
	stderr := captureStderr(t, func() {
		cfg, err = ParseFlags()
	})

	if err == nil {
		t.Error("ParseFlags() with bad log format should return error")
	}
	if cfg != nil {
		t.Errorf("ParseFlags() with error should return nil config, got %v", cfg)
	}
	if !strings.Contains(stderr, `invalid log-format "xml"`) {
		t.Errorf("stderr should explain the error, got %q", stderr)
	}
	if !strings.Contains(stderr, "Usage: bmr-calculator") {
		t.Errorf("stderr should include usage, got %q", stderr)
	}
}

func TestParseFlags_UnexpectedArgs(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"bmr-calculator", "-w", "70", "extra"}

	cfg, err := ParseFlags()
	if err == nil {
		t.Error("ParseFlags() with positional args should return error")
	}
	if cfg != nil {
		t.Errorf("ParseFlags() with error should return nil config, got %v", cfg)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	os.Args = []string{"bmr-calculator", "-bodyfat", "20"}

	if _, err := ParseFlags(); err == nil {
		t.Error("ParseFlags() with unknown flag should return error")
	}
}
