package output

import (
	"io"
	"os"
)

// ResolveColorMode folds the --color flag into the effective TTY decision.
// Accepted modes: "never" (colors off), "always" (colors on), anything else
// (including "auto") follows detection.
func ResolveColorMode(mode string, isTTY bool) bool {
	switch mode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether a writer is a terminal. Only an *os.File backed by
// a character device counts.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
