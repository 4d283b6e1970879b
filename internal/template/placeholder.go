package template

import (
	"slices"
	"strings"
)

// Substitute replaces every {{Name}} token in s with its value from vars.
// It is a literal find-replace pass: no conditionals, no loops, unknown
// tokens pass through unchanged. Keys are applied in sorted order so
// substitution is deterministic even when values themselves contain tokens.
func Substitute(s string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(s, "{{") {
		return s
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		s = strings.ReplaceAll(s, "{{"+k+"}}", vars[k])
	}
	return s
}
