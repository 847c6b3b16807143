package linetrace

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `# stream settings
[stream.T]
enabled = false

[stream.S]
width = 4

[stream.X]
enabled = true
width = 2
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	tmp, ok := cfg.Streams["T"]
	if !ok || tmp.Enabled == nil || *tmp.Enabled {
		t.Fatalf("stream T not parsed as disabled: %+v", tmp)
	}
	if s := cfg.Streams["S"]; s.Width != 4 || s.Enabled != nil {
		t.Fatalf("stream S parsed as %+v", s)
	}
}

func TestConfigApply(t *testing.T) {
	cfg, err := ParseConfig(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	var buf bytes.Buffer
	s := New(&buf, 'S')
	u := New(&buf, 'U') // not in the config
	u.SetWidth(9)

	if err := cfg.Apply(s, u); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if s.st.width != 4 {
		t.Fatalf("stream S width = %d, want 4", s.st.width)
	}
	if !s.Enabled() {
		t.Fatal("Apply changed enabled state without an enabled key")
	}
	if u.st.width != 9 || !u.Enabled() {
		t.Fatal("Apply touched a stream absent from the config")
	}
}

func TestConfigRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		toml string
	}{
		{"multi-char tag", "[stream.OUT]\nwidth = 2\n"},
		{"negative width", "[stream.S]\nwidth = -1\n"},
		{"not toml", "stream: {S: {width: 2}}\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseConfig(strings.NewReader(tc.toml)); err == nil {
				t.Fatalf("ParseConfig accepted %q", tc.toml)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linetrace.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Streams) != 3 {
		t.Fatalf("got %d streams, want 3", len(cfg.Streams))
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("LoadConfig succeeded on a missing file")
	}
}
