package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("UFOSTRIKE_TEST_VAR", "value")
	if got := GetEnv("UFOSTRIKE_TEST_VAR", "fallback"); got != "value" {
		t.Errorf("GetEnv = %q, want %q", got, "value")
	}
	if got := GetEnv("UFOSTRIKE_TEST_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv unset = %q, want %q", got, "fallback")
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("UFOSTRIKE_TEST_INT", "42")
	if got, err := GetEnvInt("UFOSTRIKE_TEST_INT", 7); err != nil || got != 42 {
		t.Errorf("GetEnvInt = %d, %v, want 42", got, err)
	}
	if got, err := GetEnvInt("UFOSTRIKE_TEST_UNSET", 7); err != nil || got != 7 {
		t.Errorf("GetEnvInt unset = %d, %v, want 7", got, err)
	}

	t.Setenv("UFOSTRIKE_TEST_INT", "many")
	got, err := GetEnvInt("UFOSTRIKE_TEST_INT", 7)
	if err == nil {
		t.Error("GetEnvInt accepted a non-number")
	}
	if got != 7 {
		t.Errorf("GetEnvInt on error = %d, want fallback 7", got)
	}
	if !strings.Contains(err.Error(), "UFOSTRIKE_TEST_INT") {
		t.Errorf("error %q does not name the variable", err)
	}
}

func TestGetEnvInt64(t *testing.T) {
	t.Setenv("UFOSTRIKE_TEST_SEED", "9007199254740993")
	if got, err := GetEnvInt64("UFOSTRIKE_TEST_SEED", 0); err != nil || got != 9007199254740993 {
		t.Errorf("GetEnvInt64 = %d, %v", got, err)
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("UFOSTRIKE_TEST_FLOAT", "0.25")
	if got, err := GetEnvFloat("UFOSTRIKE_TEST_FLOAT", 1); err != nil || got != 0.25 {
		t.Errorf("GetEnvFloat = %v, %v, want 0.25", got, err)
	}
	t.Setenv("UFOSTRIKE_TEST_FLOAT", "loud")
	if _, err := GetEnvFloat("UFOSTRIKE_TEST_FLOAT", 1); err == nil {
		t.Error("GetEnvFloat accepted a non-number")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value   string
		want    bool
		wantErr bool
	}{
		{"on", true, false},
		{"off", false, false},
		{"true", true, false},
		{"0", false, false},
		{"", true, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("UFOSTRIKE_TEST_BOOL", tt.value)
			got, err := GetEnvBool("UFOSTRIKE_TEST_BOOL", true)
			if got != tt.want || (err != nil) != tt.wantErr {
				t.Errorf("GetEnvBool(%q) = %v, %v, want %v, err %v", tt.value, got, err, tt.want, tt.wantErr)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("UFOSTRIKE_TEST_DOTENV=loaded\nUFOSTRIKE_TEST_KEEP=file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("UFOSTRIKE_TEST_KEEP", "env")
	t.Setenv("UFOSTRIKE_TEST_DOTENV", "")
	os.Unsetenv("UFOSTRIKE_TEST_DOTENV")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv = %v", err)
	}
	if got := os.Getenv("UFOSTRIKE_TEST_DOTENV"); got != "loaded" {
		t.Errorf("UFOSTRIKE_TEST_DOTENV = %q, want %q", got, "loaded")
	}
	if got := os.Getenv("UFOSTRIKE_TEST_KEEP"); got != "env" {
		t.Errorf("existing variable overridden: %q", got)
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info logged at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "test") {
		t.Errorf("warn line missing message or prefix: %q", out)
	}
}

func TestOpenLogFile(t *testing.T) {
	logger, closer, err := OpenLogFile("", "x")
	if err != nil || logger == nil || closer == nil {
		t.Fatalf("OpenLogFile(\"\") = %v, %v, %v", logger, closer, err)
	}

	path := filepath.Join(t.TempDir(), "game.log")
	logger, closer, err = OpenLogFile(path, "game")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("started")
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "started") {
		t.Errorf("log file = %q, want the message", data)
	}
}
