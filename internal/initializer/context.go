package initializer

import (
	"fmt"
	"maps"
	"os"
	"strconv"
	"time"
)

// Context is the per-run input bundle handed to every unit.
//
// The options map is read-only caller input; the metadata map is mutable
// scratch space units use to pass discoveries to later units in the same
// run. Units must never write options, so both maps are unexported and
// reachable only through accessors.
type Context struct {
	ProjectName      string
	Template         string
	TargetDirectory  string
	WorkingDirectory string
	Force            bool
	Interactive      bool

	options  map[string]any
	metadata map[string]any
}

// NewContext builds a run context. WorkingDirectory is the process current
// directory; Interactive is true unless a "non-interactive" option is
// present. The options map is copied so later caller mutation cannot leak
// into the run.
func NewContext(projectName, template, targetDirectory string, force bool, options map[string]any) *Context {
	wd, _ := os.Getwd()

	opts := make(map[string]any, len(options))
	maps.Copy(opts, options)
	_, nonInteractive := opts["non-interactive"]

	return &Context{
		ProjectName:      projectName,
		Template:         template,
		TargetDirectory:  targetDirectory,
		WorkingDirectory: wd,
		Force:            force,
		Interactive:      !nonInteractive,
		options:          opts,
		metadata:         make(map[string]any),
	}
}

// Option returns the raw option value and whether it was supplied.
func (c *Context) Option(name string) (any, bool) {
	v, ok := c.options[name]
	return v, ok
}

// StringOption returns a string-typed option value.
// A supplied value of the wrong type counts as absent.
func (c *Context) StringOption(name string) (string, bool) {
	s, ok := c.options[name].(string)
	return s, ok
}

// BoolOption returns a bool-typed option value.
func (c *Context) BoolOption(name string) (bool, bool) {
	b, ok := c.options[name].(bool)
	return b, ok
}

// Enabled reports whether a flag option was supplied and set.
func (c *Context) Enabled(name string) bool {
	b, ok := c.BoolOption(name)
	return ok && b
}

// IntOption returns an int-typed option value. JSON-decoded numbers arrive
// as float64 and are accepted when integral.
func (c *Context) IntOption(name string) (int, bool) {
	switch v := c.options[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

// StringsOption returns a string-array option value.
func (c *Context) StringsOption(name string) ([]string, bool) {
	ss, ok := c.options[name].([]string)
	return ss, ok
}

// Metadata returns a value an earlier unit recorded during this run.
func (c *Context) Metadata(key string) (any, bool) {
	v, ok := c.metadata[key]
	return v, ok
}

// MetadataString returns a string-typed metadata value.
func (c *Context) MetadataString(key string) (string, bool) {
	s, ok := c.metadata[key].(string)
	return s, ok
}

// MetadataBool returns a bool-typed metadata value.
func (c *Context) MetadataBool(key string) (bool, bool) {
	b, ok := c.metadata[key].(bool)
	return b, ok
}

// SetMetadata records a value for later units in the same run.
func (c *Context) SetMetadata(key string, value any) {
	c.metadata[key] = value
}

// Vars returns the placeholder mapping for template rendering, derived from
// the context. Substitution is literal find-replace; there is no template
// language beyond these tokens.
func (c *Context) Vars() map[string]string {
	desc, ok := c.StringOption("description")
	if !ok || desc == "" {
		desc = fmt.Sprintf("The %s project", c.ProjectName)
	}

	now := time.Now()
	return map[string]string{
		"ProjectName": c.ProjectName,
		"Description": desc,
		"Template":    c.Template,
		"Date":        now.Format("2006-01-02"),
		"Year":        strconv.Itoa(now.Year()),
	}
}
