// Package config resolves the pks configuration directories and persists
// user settings.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the pks configuration directory.
//
// Resolution:
//   - $PKS_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/pks if set (respects XDG on any platform)
//   - %AppData%/pks on Windows
//   - ~/.config/pks on macOS and Linux
func Dir() string {
	if dir := os.Getenv("PKS_CONFIG_HOME"); dir != "" {
		return dir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "pks")
	}
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "pks")
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pks")
}

// TemplatesDir returns the templates base directory: $PKS_TEMPLATES_DIR if
// set, otherwise <config dir>/templates.
func TemplatesDir() string {
	if dir := os.Getenv("PKS_TEMPLATES_DIR"); dir != "" {
		return dir
	}
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "templates")
	}
	return ""
}
