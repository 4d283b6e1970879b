package initializer

// OptionType identifies the value shape of a contributed option.
type OptionType string

// Option value types. Flags are presence-style booleans; Strings accepts
// repeated values.
const (
	OptionFlag    OptionType = "flag"
	OptionString  OptionType = "string"
	OptionInt     OptionType = "int"
	OptionStrings OptionType = "strings"
)

// Option describes one command-line option a unit contributes to the
// aggregate command surface. The command layer turns these into flags;
// collected values arrive back in the Context options map under Name.
type Option struct {
	Name        string
	ShortName   string
	Description string
	Type        OptionType
	Default     any
	Required    bool

	// Validate, when set, checks a candidate value before the run starts.
	// It must be pure: no I/O, no mutation.
	Validate func(value any) error
}

// IsArray reports whether the option accepts multiple values.
func (o Option) IsArray() bool {
	return o.Type == OptionStrings
}
