package linetrace

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
)

// StreamConfig carries the per-stream settings a TOML file may set.
// Enabled is a pointer so that an absent key leaves the stream alone.
type StreamConfig struct {
	Enabled *bool `toml:"enabled"`
	Width   int64 `toml:"width"`
}

// Config maps one-character stream tags to their settings:
//
//	[stream.T]
//	enabled = false
//
//	[stream.O]
//	width = 8
type Config struct {
	Streams map[string]StreamConfig `toml:"stream"`
}

// LoadConfig reads a stream configuration file from path.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load stream config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig reads a stream configuration from r.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse stream config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	for tag, sc := range c.Streams {
		if len(tag) != 1 {
			return fmt.Errorf("stream tag %q must be exactly one character", tag)
		}
		if sc.Width < 0 {
			return fmt.Errorf("stream %q: width %d must not be negative", tag, sc.Width)
		}
		if _, err := safecast.Conv[int](sc.Width); err != nil {
			return fmt.Errorf("stream %q: width %d out of range: %w", tag, sc.Width, err)
		}
	}
	return nil
}

// Apply pushes the configured settings onto any of the given streams
// whose tag appears in the config. Unknown tags are ignored so one file
// can configure streams that only exist in some builds.
func (c Config) Apply(streams ...*Stream) error {
	for _, s := range streams {
		sc, ok := c.Streams[string(s.Tag())]
		if !ok {
			continue
		}
		if sc.Enabled != nil {
			s.st.enabled = *sc.Enabled
		}
		if sc.Width > 0 {
			width, err := safecast.Conv[int](sc.Width)
			if err != nil {
				return fmt.Errorf("stream %q: width %d out of range: %w", string(s.Tag()), sc.Width, err)
			}
			s.SetWidth(width)
		}
	}
	return nil
}
