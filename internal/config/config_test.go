package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirExplicitOverride(t *testing.T) {
	t.Setenv("PKS_CONFIG_HOME", "/custom/pks")
	if got := Dir(); got != "/custom/pks" {
		t.Errorf("Dir() = %q, want override", got)
	}
}

func TestDirXDG(t *testing.T) {
	t.Setenv("PKS_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	want := filepath.Join("/xdg", "pks")
	if got := Dir(); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestTemplatesDirOverride(t *testing.T) {
	t.Setenv("PKS_TEMPLATES_DIR", "/my/templates")
	if got := TemplatesDir(); got != "/my/templates" {
		t.Errorf("TemplatesDir() = %q", got)
	}
}

func TestTemplatesDirUnderConfig(t *testing.T) {
	t.Setenv("PKS_TEMPLATES_DIR", "")
	t.Setenv("PKS_CONFIG_HOME", "/cfg")
	want := filepath.Join("/cfg", "templates")
	if got := TemplatesDir(); got != want {
		t.Errorf("TemplatesDir() = %q, want %q", got, want)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("PKS_CONFIG_HOME", t.TempDir())

	s := &Settings{
		DefaultTemplate: "api",
		Devcontainer:    true,
		Agentic:         true,
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	loaded, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() = %v", err)
	}
	if *loaded != *s {
		t.Errorf("round trip: got %+v, want %+v", loaded, s)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Setenv("PKS_CONFIG_HOME", t.TempDir())

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() = %v", err)
	}
	if *s != (Settings{}) {
		t.Errorf("missing file should yield zero settings, got %+v", s)
	}
}

func TestLoadSettingsMalformed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PKS_CONFIG_HOME", dir)
	if err := os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("{not yaml:"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(); err == nil {
		t.Error("malformed settings should error")
	}
}
