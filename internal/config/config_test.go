package config

import (
	"testing"
	"time"
)

func TestMustLoadDefaults(t *testing.T) {
	cfg, err := MustLoad()
	if err != nil {
		t.Fatalf("Expected config, got error %v", err)
	}

	if cfg.Server.Addr != "4000" {
		t.Errorf("Expected default port 4000, got %s", cfg.Server.Addr)
	}
	if cfg.CORS.AllowedOrigin != "http://localhost:3000" {
		t.Errorf("Unexpected default origin %s", cfg.CORS.AllowedOrigin)
	}
	if cfg.Ghostscript.Binary == "" {
		t.Error("Expected a platform default Ghostscript binary")
	}
	if cfg.Ghostscript.Timeout != 120*time.Second {
		t.Errorf("Expected 120s default timeout, got %v", cfg.Ghostscript.Timeout)
	}
	if cfg.Upload.MaxFileSize != 20<<20 {
		t.Errorf("Expected 20 MiB default file size, got %d", cfg.Upload.MaxFileSize)
	}
	if cfg.Upload.MaxFileCount != 10 {
		t.Errorf("Expected 10 files default, got %d", cfg.Upload.MaxFileCount)
	}
}

func TestMustLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("GS_BINARY", "/opt/gs/bin/gs")
	t.Setenv("GS_TIMEOUT", "30s")

	cfg, err := MustLoad()
	if err != nil {
		t.Fatalf("Expected config, got error %v", err)
	}

	if cfg.Server.Addr != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Server.Addr)
	}
	if cfg.Ghostscript.Binary != "/opt/gs/bin/gs" {
		t.Errorf("Expected configured binary, got %s", cfg.Ghostscript.Binary)
	}
	if cfg.Ghostscript.Timeout != 30*time.Second {
		t.Errorf("Expected 30s timeout, got %v", cfg.Ghostscript.Timeout)
	}
}

func TestMustLoadRejectsBadOrigin(t *testing.T) {
	t.Setenv("FRONTEND_ORIGIN", "not a url")

	if _, err := MustLoad(); err == nil {
		t.Fatal("Expected an error for a malformed origin")
	}
}
