package initializer

import (
	"testing"
)

func TestNewContextInteractive(t *testing.T) {
	tests := []struct {
		name    string
		options map[string]any
		want    bool
	}{
		{name: "default interactive", options: nil, want: true},
		{name: "non-interactive option present", options: map[string]any{"non-interactive": true}, want: false},
		{name: "non-interactive present even false", options: map[string]any{"non-interactive": false}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext("demo", "console", "target", false, tt.options)
			if c.Interactive != tt.want {
				t.Errorf("Interactive = %v, want %v", c.Interactive, tt.want)
			}
		})
	}
}

func TestContextCopiesOptions(t *testing.T) {
	opts := map[string]any{"description": "before"}
	c := NewContext("demo", "console", "target", false, opts)

	opts["description"] = "after"
	if got, _ := c.StringOption("description"); got != "before" {
		t.Errorf("caller mutation leaked into context: got %q", got)
	}
}

func TestTypedOptionAccessors(t *testing.T) {
	c := NewContext("demo", "console", "target", false, map[string]any{
		"name":     "value",
		"flag":     true,
		"count":    3,
		"json-num": float64(7),
		"bad-num":  float64(1.5),
		"tags":     []string{"a", "b"},
	})

	if s, ok := c.StringOption("name"); !ok || s != "value" {
		t.Errorf("StringOption = (%q, %v)", s, ok)
	}
	if _, ok := c.StringOption("flag"); ok {
		t.Error("wrong-typed value should count as absent")
	}
	if b, ok := c.BoolOption("flag"); !ok || !b {
		t.Errorf("BoolOption = (%v, %v)", b, ok)
	}
	if !c.Enabled("flag") {
		t.Error("Enabled should report a set flag")
	}
	if c.Enabled("missing") {
		t.Error("Enabled should be false for absent flags")
	}
	if n, ok := c.IntOption("count"); !ok || n != 3 {
		t.Errorf("IntOption = (%d, %v)", n, ok)
	}
	if n, ok := c.IntOption("json-num"); !ok || n != 7 {
		t.Errorf("IntOption should accept integral float64, got (%d, %v)", n, ok)
	}
	if _, ok := c.IntOption("bad-num"); ok {
		t.Error("fractional float64 should count as absent")
	}
	if ss, ok := c.StringsOption("tags"); !ok || len(ss) != 2 {
		t.Errorf("StringsOption = (%v, %v)", ss, ok)
	}
}

func TestMetadataRoundTrip(t *testing.T) {
	c := NewContext("demo", "console", "target", false, nil)

	if _, ok := c.Metadata("missing"); ok {
		t.Error("unset metadata should be absent")
	}

	c.SetMetadata("url", "https://example.com/repo")
	c.SetMetadata("enabled", true)

	if s, ok := c.MetadataString("url"); !ok || s != "https://example.com/repo" {
		t.Errorf("MetadataString = (%q, %v)", s, ok)
	}
	if b, ok := c.MetadataBool("enabled"); !ok || !b {
		t.Errorf("MetadataBool = (%v, %v)", b, ok)
	}
}

func TestVars(t *testing.T) {
	c := NewContext("Acme", "api", "target", false, map[string]any{"description": "An API"})
	vars := c.Vars()

	if vars["ProjectName"] != "Acme" {
		t.Errorf("ProjectName = %q", vars["ProjectName"])
	}
	if vars["Description"] != "An API" {
		t.Errorf("Description = %q", vars["Description"])
	}
	if vars["Template"] != "api" {
		t.Errorf("Template = %q", vars["Template"])
	}
	if vars["Date"] == "" || vars["Year"] == "" {
		t.Error("Date and Year should be populated")
	}
}

func TestVarsDefaultDescription(t *testing.T) {
	c := NewContext("Acme", "api", "target", false, nil)
	if got := c.Vars()["Description"]; got != "The Acme project" {
		t.Errorf("default description = %q", got)
	}
}
