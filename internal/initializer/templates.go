package initializer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// metadataFileName is the optional per-template manifest.
const metadataFileName = "template.json"

// TemplateInfo describes one available project template.
type TemplateInfo struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Author      string   `json:"author,omitempty"`
	Version     string   `json:"version,omitempty"`
	Path        string   `json:"path,omitempty"`
	BuiltIn     bool     `json:"built_in,omitempty"`
}

// templateMetadata mirrors the optional template.json manifest inside a
// template directory.
type templateMetadata struct {
	DisplayName string   `json:"displayName"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Version     string   `json:"version"`
}

// AvailableTemplates lists every template under the templates base
// directory plus the fixed built-in set, sorted by display name.
//
// Each subdirectory is a candidate template. A template.json manifest
// overrides the humanized defaults; a malformed manifest degrades to the
// defaults rather than erroring.
func (s *Service) AvailableTemplates() []TemplateInfo {
	infos := scanTemplates(s.templatesDir)
	infos = append(infos, builtinTemplates()...)

	slices.SortFunc(infos, func(a, b TemplateInfo) int {
		return strings.Compare(a.DisplayName, b.DisplayName)
	})
	return infos
}

// scanTemplates reads the templates base directory. A missing or unreadable
// base directory yields no templates, not an error.
func scanTemplates(baseDir string) []TemplateInfo {
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil
	}

	var infos []TemplateInfo
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(baseDir, e.Name())
		info := TemplateInfo{
			Name:        e.Name(),
			DisplayName: humanize(e.Name()),
			Path:        dir,
		}
		applyMetadata(&info, filepath.Join(dir, metadataFileName))
		infos = append(infos, info)
	}
	return infos
}

// applyMetadata overlays template.json fields onto the generated defaults.
// Parse failures are swallowed: bad metadata means defaults, not an error.
func applyMetadata(info *TemplateInfo, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var meta templateMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return
	}
	if meta.DisplayName != "" {
		info.DisplayName = meta.DisplayName
	}
	if meta.Description != "" {
		info.Description = meta.Description
	}
	if len(meta.Tags) > 0 {
		info.Tags = meta.Tags
	}
	info.Author = meta.Author
	info.Version = meta.Version
}

// builtinTemplates is the fixed descriptor set appended regardless of what
// exists on disk.
func builtinTemplates() []TemplateInfo {
	return []TemplateInfo{
		{Name: "console", DisplayName: "Console Application", Description: "A .NET console application", Tags: []string{"dotnet", "console"}, BuiltIn: true},
		{Name: "api", DisplayName: "Web API", Description: "An ASP.NET Core web API", Tags: []string{"dotnet", "api"}, BuiltIn: true},
		{Name: "web", DisplayName: "Web Application", Description: "An ASP.NET Core web application", Tags: []string{"dotnet", "web"}, BuiltIn: true},
		{Name: "agent", DisplayName: "Agent Project", Description: "An agent-ready project with MCP wiring", Tags: []string{"dotnet", "agent", "mcp"}, BuiltIn: true},
	}
}

// humanize turns a directory name like "my-api" into "My Api".
func humanize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
