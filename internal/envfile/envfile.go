// Package envfile loads environment variables from .env files so tokens
// (e.g. for GitHub-backed units) need not be exported in every shell.
// Variables already set in the environment always win.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Load reads one .env file and sets any variables not already present in
// the environment. A missing file is not an error; only read failures are.
func Load(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := parseLine(line)
		if !ok {
			continue
		}
		if os.Getenv(key) == "" {
			_ = os.Setenv(key, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading env file %s: %w", path, err)
	}
	return nil
}

// parseLine extracts KEY=VALUE, stripping an optional "export " prefix and
// optional single or double quotes around the value.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimPrefix(line, "export ")

	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(k)
	if key == "" {
		return "", "", false
	}

	value = strings.TrimSpace(v)
	if len(value) >= 2 {
		if (value[0] == '"' && value[len(value)-1] == '"') ||
			(value[0] == '\'' && value[len(value)-1] == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
