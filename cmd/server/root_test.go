package main

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

// unsetEnv removes keys for the duration of the test. godotenv never
// overrides a variable that is present, even when it is empty.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unsetenv %s: %v", key, err)
		}
	}
}

func TestResolveConfigFlagsOverrideEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("DATA_FILE", "/env/path.log")
	t.Setenv("PORT", "9000")

	cfg, dotenvFound, err := resolveConfig(serverFlags{dataFile: "/flag/path.log"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dotenvFound {
		t.Fatal("dotenvFound = true, want false without a .env file")
	}
	if cfg.DataFile != "/flag/path.log" {
		t.Fatalf("DataFile = %q, want /flag/path.log", cfg.DataFile)
	}
	if cfg.Port != "9000" {
		t.Fatalf("Port = %q, want 9000", cfg.Port)
	}
}

func TestResolveConfigReadsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	unsetEnv(t, "DATA_FILE", "PORT")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DATA_FILE=/dotenv/ts.log\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	cfg, dotenvFound, err := resolveConfig(serverFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dotenvFound {
		t.Fatal("dotenvFound = false, want true")
	}
	if cfg.DataFile != "/dotenv/ts.log" {
		t.Fatalf("DataFile = %q, want /dotenv/ts.log", cfg.DataFile)
	}
}

func TestResolveConfigRejectsBadPort(t *testing.T) {
	chdirTemp(t)

	if _, _, err := resolveConfig(serverFlags{port: "not-a-port"}); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestRootCommandRejectsArgs(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for positional arguments")
	}
}

func TestLogStartupReportsMissingDotEnv(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	logStartup(zap.New(core), false)
	if logs.FilterMessage("No .env file found (using environment variables)").Len() != 1 {
		t.Fatalf("expected missing .env to be logged, got %d entries", logs.Len())
	}

	logStartup(zap.New(core), true)
	if logs.Len() != 1 {
		t.Fatalf("got %d entries, want 1", logs.Len())
	}
}
