package initializer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string // empty means valid
	}{
		{name: "valid simple name", input: "my-project"},
		{name: "valid with underscore", input: "my_project_2"},
		{name: "empty", input: "", wantErr: "empty"},
		{name: "whitespace only", input: "   ", wantErr: "empty"},
		{name: "too long", input: strings.Repeat("a", 256), wantErr: "255"},
		{name: "exactly max length", input: strings.Repeat("a", 255)},
		{name: "colon", input: "a:b", wantErr: "invalid characters"},
		{name: "slash and star", input: "a/b*c", wantErr: "invalid characters"},
		{name: "reserved CON upper", input: "CON", wantErr: "reserved"},
		{name: "reserved con lower", input: "con", wantErr: "reserved"},
		{name: "reserved COM1", input: "COM1", wantErr: "reserved"},
		{name: "reserved LPT9 mixed case", input: "lPt9", wantErr: "reserved"},
		{name: "leading dot", input: ".name", wantErr: "period"},
		{name: "trailing dot", input: "name.", wantErr: "period"},
		{name: "leading space", input: " name", wantErr: "space"},
		{name: "trailing space", input: "name ", wantErr: "space"},
		{name: "interior dot ok", input: "my.project"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateProjectName(%q) = %v, want valid", tt.input, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidateProjectName(%q) = nil, want error containing %q", tt.input, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateProjectNameListsOffendingChars(t *testing.T) {
	err := ValidateProjectName("a:b?c")
	if err == nil {
		t.Fatal("want error for invalid characters")
	}
	for _, c := range []string{":", "?"} {
		if !strings.Contains(err.Error(), c) {
			t.Errorf("error %q should list offending character %q", err.Error(), c)
		}
	}
}

func TestValidateTargetDirectory(t *testing.T) {
	t.Run("empty path invalid", func(t *testing.T) {
		if err := ValidateTargetDirectory("", false); err == nil {
			t.Error("empty path should be invalid")
		}
	})

	t.Run("empty existing directory valid", func(t *testing.T) {
		if err := ValidateTargetDirectory(t.TempDir(), false); err != nil {
			t.Errorf("empty directory should be valid: %v", err)
		}
	})

	t.Run("non-empty without force invalid", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		err := ValidateTargetDirectory(dir, false)
		if err == nil {
			t.Fatal("non-empty directory without force should be invalid")
		}
		if !strings.Contains(err.Error(), "not empty") {
			t.Errorf("error should mention 'not empty', got %q", err.Error())
		}
	})

	t.Run("non-empty with force valid", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "existing.txt"), []byte("x"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := ValidateTargetDirectory(dir, true); err != nil {
			t.Errorf("force should accept a non-empty directory: %v", err)
		}
	})

	t.Run("non-existent path valid without side effect", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does-not-exist")
		if err := ValidateTargetDirectory(path, false); err != nil {
			t.Errorf("non-existent path should be valid: %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("validation must not create the directory")
		}
	})
}

func TestEnsureTargetDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureTargetDirectory(path); err != nil {
		t.Fatalf("EnsureTargetDirectory() = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		t.Error("path should exist as a directory afterward")
	}
}
