package initializer

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// maxProjectNameLength is the longest accepted project name, matching the
// common filesystem component limit.
const maxProjectNameLength = 255

// invalidNameChars are characters no filesystem accepts in a path component.
const invalidNameChars = "/\\:*?<>|\"\x00"

// reservedNames are device names Windows refuses as file names, compared
// case-insensitively.
var reservedNames = func() map[string]struct{} {
	names := []string{"CON", "PRN", "AUX", "NUL"}
	for i := 1; i <= 9; i++ {
		names = append(names, fmt.Sprintf("COM%d", i), fmt.Sprintf("LPT%d", i))
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}()

// ValidateProjectName checks a project name against filesystem and
// portability rules. Rules apply in order; the first failure wins.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("project name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxProjectNameLength {
		return fmt.Errorf("project name cannot exceed %d characters", maxProjectNameLength)
	}
	if bad := offendingChars(name); len(bad) > 0 {
		return fmt.Errorf("project name contains invalid characters: %s", strings.Join(bad, " "))
	}
	if _, reserved := reservedNames[strings.ToUpper(name)]; reserved {
		return fmt.Errorf("%q is a reserved system name", name)
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return errors.New("project name cannot start or end with a period")
	}
	if strings.HasPrefix(name, " ") || strings.HasSuffix(name, " ") {
		return errors.New("project name cannot start or end with a space")
	}
	return nil
}

// offendingChars lists the invalid characters present in name, in order of
// first appearance, without duplicates.
func offendingChars(name string) []string {
	var bad []string
	seen := make(map[rune]struct{})
	for _, r := range name {
		if !strings.ContainsRune(invalidNameChars, r) {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		if r == 0 {
			bad = append(bad, "NUL")
			continue
		}
		bad = append(bad, string(r))
	}
	return bad
}

// ValidateTargetDirectory checks whether a path is usable as an
// initialization target. It is a pure query: it never creates anything.
// A non-existent path is valid; EnsureTargetDirectory probes creation.
func ValidateTargetDirectory(path string, force bool) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("target path cannot be empty")
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading target directory: %w", err)
	}
	if len(entries) > 0 && !force {
		return fmt.Errorf("directory %s is not empty (use --force to initialize anyway)", path)
	}
	return nil
}

// EnsureTargetDirectory creates the target directory if needed. Creation
// doubles as a permission probe: a failure here means the run cannot write
// its output.
func EnsureTargetDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating target directory: %w", err)
	}
	return nil
}
