package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/lumen/internal/domain"
)

func TestSetup_WritesToWorkspaceLogFile(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	want := filepath.Join(root, ".lumen", "logs", "lumen.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	L().Debug("hidden.without.debug")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger reset after cleanup")
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"msg":"logger.initialized"`) || !strings.Contains(s, `"app":"lumen"`) {
		t.Fatalf("unexpected log content: %s", s)
	}
	if strings.Contains(s, "hidden.without.debug") {
		t.Fatalf("debug line should be filtered at info level: %s", s)
	}
}

func TestSetup_WriterRedactsSecrets(t *testing.T) {
	var buf bytes.Buffer

	cleanup, err := Setup(Config{Writer: &buf, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	seed := domain.Secret("SBGWSG6BTNCKCOB3DIFBGCVMUPQFYPA2G4O34RMTB343OYPXU5DJDVMN")
	L().Debug("tx.sign", "secret", seed)

	s := buf.String()
	if strings.Contains(s, seed.Reveal()) {
		t.Fatalf("secret leaked into log: %s", s)
	}
	if !strings.Contains(s, "[redacted]") {
		t.Fatalf("expected redaction marker, got: %s", s)
	}
}
