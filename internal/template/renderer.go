// Package template renders template directory trees into target project
// directories. File and directory names and text file contents go through
// literal placeholder substitution; everything else is copied byte-for-byte.
package template

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// textExtensions is the allow-list of extensions treated as renderable
// text. Anything else is copied without placeholder scanning.
var textExtensions = map[string]struct{}{
	".cs": {}, ".csproj": {}, ".sln": {}, ".fs": {}, ".fsproj": {},
	".json": {}, ".xml": {}, ".yaml": {}, ".yml": {}, ".toml": {},
	".md": {}, ".txt": {}, ".html": {}, ".css": {}, ".js": {}, ".ts": {},
	".sh": {}, ".ps1": {}, ".razor": {}, ".http": {}, ".env": {},
	".gitignore": {}, ".editorconfig": {}, ".config": {}, ".props": {},
	".targets": {},
}

// ignoredDirs are directory names skipped entirely during traversal:
// version control, IDE metadata, build output, dependency caches.
var ignoredDirs = map[string]struct{}{
	".git": {}, ".svn": {}, ".hg": {},
	".vs": {}, ".vscode": {}, ".idea": {},
	"bin": {}, "obj": {}, "TestResults": {},
	"node_modules": {}, "packages": {},
}

// Renderer reproduces a template source tree under a target directory with
// placeholders substituted.
type Renderer struct {
	// Source is the template root directory.
	Source string

	// Vars maps placeholder names to replacement values. A placeholder
	// appears in templates as {{Name}}.
	Vars map[string]string

	// Transform, when set, rewrites a text file's content after placeholder
	// substitution and before the file is written. It receives the
	// target-relative path of the file being written.
	Transform func(relPath, content string) string

	// PostRender, when set, runs once after the whole tree has been
	// written, for unit-specific follow-up such as merging into an
	// existing file.
	PostRender func(target string, written []string) error
}

// Render walks the source tree and writes the substituted tree under
// target. It returns the paths of every file written, in traversal order.
// On error, files written before the failure remain on disk and are
// included in the returned slice.
func (r *Renderer) Render(target string) ([]string, error) {
	if r.Source == "" {
		return nil, errors.New("renderer has no source directory")
	}
	if info, err := os.Stat(r.Source); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("template source %s is not a directory", r.Source)
	}

	var written []string
	if err := r.renderDir(r.Source, target, &written); err != nil {
		return written, err
	}

	if r.PostRender != nil {
		if err := r.PostRender(target, written); err != nil {
			return written, fmt.Errorf("post-render: %w", err)
		}
	}
	return written, nil
}

// renderDir processes one directory level: files first, then recursion into
// non-ignored subdirectories.
func (r *Renderer) renderDir(src, dst string, written *[]string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading template directory: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := r.renderFile(filepath.Join(src, e.Name()), dst, e.Name(), written); err != nil {
			return err
		}
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, skip := ignoredDirs[e.Name()]; skip {
			continue
		}
		name := Substitute(e.Name(), r.Vars)
		sub := filepath.Join(dst, name)
		if err := os.MkdirAll(sub, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", sub, err)
		}
		if err := r.renderDir(filepath.Join(src, e.Name()), sub, written); err != nil {
			return err
		}
	}
	return nil
}

// renderFile writes one file: substituted text for allow-listed extensions,
// a byte-for-byte copy otherwise. The file name itself may carry
// placeholders.
func (r *Renderer) renderFile(srcPath, dstDir, name string, written *[]string) error {
	outName := Substitute(name, r.Vars)
	outPath := filepath.Join(dstDir, outName)

	if !isText(name) {
		if err := copyFile(srcPath, outPath); err != nil {
			return err
		}
		*written = append(*written, outPath)
		return nil
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading template file %s: %w", srcPath, err)
	}
	content := Substitute(string(data), r.Vars)
	if r.Transform != nil {
		content = r.Transform(outName, content)
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	*written = append(*written, outPath)
	return nil
}

// isText reports whether a file name's extension is in the renderable
// allow-list. Dotfiles like .gitignore are their own extension.
func isText(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := textExtensions[ext]
	return ok
}

// copyFile copies src to dst without inspecting content.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close() //nolint:errcheck // best-effort close on read-only file

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", dst, err)
	}
	return nil
}
