package initializer

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeTemplateDir(t *testing.T, base, name string, metadata string) {
	t.Helper()
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if metadata != "" {
		if err := os.WriteFile(filepath.Join(dir, "template.json"), []byte(metadata), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestAvailableTemplatesScansAndAppendsBuiltins(t *testing.T) {
	base := t.TempDir()
	writeTemplateDir(t, base, "my-worker", "")
	svc := NewService(NewRegistry(), base)

	infos := svc.AvailableTemplates()

	var names []string
	for _, info := range infos {
		names = append(names, info.Name)
	}
	for _, want := range []string{"my-worker", "console", "api", "web", "agent"} {
		if !slices.Contains(names, want) {
			t.Errorf("AvailableTemplates() missing %q, got %v", want, names)
		}
	}
}

func TestAvailableTemplatesHumanizesName(t *testing.T) {
	base := t.TempDir()
	writeTemplateDir(t, base, "my-worker", "")
	svc := NewService(NewRegistry(), base)

	for _, info := range svc.AvailableTemplates() {
		if info.Name == "my-worker" {
			if info.DisplayName != "My Worker" {
				t.Errorf("DisplayName = %q, want %q", info.DisplayName, "My Worker")
			}
			return
		}
	}
	t.Fatal("scanned template not found")
}

func TestAvailableTemplatesMetadataOverrides(t *testing.T) {
	base := t.TempDir()
	writeTemplateDir(t, base, "svc", `{
		"displayName": "Service Template",
		"description": "A gRPC service",
		"tags": ["grpc"],
		"author": "platform team",
		"version": "1.2.0"
	}`)
	svc := NewService(NewRegistry(), base)

	for _, info := range svc.AvailableTemplates() {
		if info.Name != "svc" {
			continue
		}
		if info.DisplayName != "Service Template" {
			t.Errorf("DisplayName = %q", info.DisplayName)
		}
		if info.Description != "A gRPC service" {
			t.Errorf("Description = %q", info.Description)
		}
		if info.Author != "platform team" || info.Version != "1.2.0" {
			t.Errorf("Author/Version = %q/%q", info.Author, info.Version)
		}
		return
	}
	t.Fatal("scanned template not found")
}

func TestAvailableTemplatesMalformedMetadataDegrades(t *testing.T) {
	base := t.TempDir()
	writeTemplateDir(t, base, "broken-meta", `{not valid json`)
	svc := NewService(NewRegistry(), base)

	for _, info := range svc.AvailableTemplates() {
		if info.Name == "broken-meta" {
			if info.DisplayName != "Broken Meta" {
				t.Errorf("malformed metadata should fall back to humanized name, got %q", info.DisplayName)
			}
			return
		}
	}
	t.Fatal("template with malformed metadata should still be listed")
}

func TestAvailableTemplatesSortedByDisplayName(t *testing.T) {
	svc := NewService(NewRegistry(), t.TempDir())
	infos := svc.AvailableTemplates()

	for i := 1; i < len(infos); i++ {
		if infos[i-1].DisplayName > infos[i].DisplayName {
			t.Errorf("list not sorted: %q before %q", infos[i-1].DisplayName, infos[i].DisplayName)
		}
	}
}

func TestAvailableTemplatesMissingBaseDir(t *testing.T) {
	svc := NewService(NewRegistry(), filepath.Join(t.TempDir(), "nope"))
	infos := svc.AvailableTemplates()

	if len(infos) != 4 {
		t.Errorf("missing base dir should yield only the 4 built-ins, got %d", len(infos))
	}
}
