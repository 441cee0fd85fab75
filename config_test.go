package cmdflags

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func Test_ConfigNil(t *testing.T) {
	r := NewRegistry()

	if err := r.GetConfig(nil); !errors.Is(err, ErrNilConfig) {
		t.Errorf("GetConfig(nil): got %v", err)
	}
	if err := r.SetConfig(nil); !errors.Is(err, ErrNilConfig) {
		t.Errorf("SetConfig(nil): got %v", err)
	}
}

func Test_ConfigRoundTrip(t *testing.T) {
	r := NewRegistry()

	var cfg Config
	if err := r.GetConfig(&cfg); err != nil || !cfg.EmitDebugMessages {
		t.Fatalf("default: got (%v, %v)", cfg, err)
	}

	for _, emit := range []bool{false, false, true, false, true, true} {
		if err := r.SetConfig(&Config{EmitDebugMessages: emit}); err != nil {
			t.Fatal(err)
		}
		for i := 0; i < 2; i++ {
			var got Config
			if err := r.GetConfig(&got); err != nil {
				t.Fatal(err)
			}
			if got.EmitDebugMessages != emit {
				t.Errorf("got=%v want=%v", got.EmitDebugMessages, emit)
			}
			if err := r.SetConfig(&got); err != nil {
				t.Fatal(err)
			}
		}
	}
}

func Test_ConfigCopied(t *testing.T) {
	r := NewRegistry()

	cfg := Config{EmitDebugMessages: false}
	r.SetConfig(&cfg)
	cfg.EmitDebugMessages = true

	var got Config
	r.GetConfig(&got)
	if got.EmitDebugMessages {
		t.Errorf("SetConfig kept a reference to its argument")
	}
}

func Test_LoadConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name, content string
		want          bool
		wantError     bool
	}{
		{"off.toml", "emit_debug_messages = false\n", false, false},
		{"on.toml", "emit_debug_messages = true\n", true, false},
		{"empty.toml", "", true, false},
		{"noext", "emit_debug_messages = false\n", false, false},
		{"off.yaml", "emit_debug_messages: false\n", false, false},
		{"off.YML", "emit_debug_messages: false\n", false, false},
		{"empty.yml", "", true, false},
		{"bad.toml", "emit_debug_messages = \n", false, true},
		{"bad.yaml", "emit_debug_messages: [\n", false, true},
		{"type.toml", "emit_debug_messages = \"yes please\"\n", false, true},
	}

	for _, test := range tests {
		path := filepath.Join(dir, test.name)
		if err := os.WriteFile(path, []byte(test.content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadConfig(path)
		if (err != nil) != test.wantError {
			t.Errorf("%s: error=%v", test.name, err)
			continue
		}
		if err == nil && cfg.EmitDebugMessages != test.want {
			t.Errorf("%s: got=%v want=%v", test.name, cfg.EmitDebugMessages, test.want)
		}
	}
}

func Test_LoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
}

func Test_DecodeConfigUnknownFormat(t *testing.T) {
	if _, err := DecodeConfig(nil, Format(9)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("got %v", err)
	}
	if Format(9).String() != "unknown" || FormatYAML.String() != "yaml" {
		t.Errorf("Format.String")
	}
}
