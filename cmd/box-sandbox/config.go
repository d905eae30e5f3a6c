package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/lixenwraith/box2/vmath"
)

const (
	defaultToneHz   = 880
	defaultLogLevel = "info"
)

// Config is the sandbox TOML configuration
//
//	tone_hz = 660.0
//	mute = true
//	log_file = "sandbox.log"
//	log_level = "debug"
//
//	[[box]]
//	position = [4.0, 2.0]
//	size = [10.0, -3.0]
type Config struct {
	ToneHz   float64     `toml:"tone_hz"`
	Mute     bool        `toml:"mute"`
	LogFile  string      `toml:"log_file"`
	LogLevel string      `toml:"log_level"`
	Box      []BoxConfig `toml:"box"`
}

// BoxConfig is one preloaded box, taken as-is including signed sizes
type BoxConfig struct {
	Position [2]float32 `toml:"position"`
	Size     [2]float32 `toml:"size"`
}

func DefaultConfig() Config {
	return Config{
		ToneHz:   defaultToneHz,
		LogLevel: defaultLogLevel,
	}
}

// LoadConfig reads path over the defaults; an empty path returns the defaults
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.ToneHz <= 0 || c.ToneHz >= float64(sampleRate)/2 {
		return fmt.Errorf("tone_hz %v out of range (0, %d)", c.ToneHz, int(sampleRate)/2)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// Boxes converts the configured boxes through plain construction
func (c Config) Boxes() []vmath.Box2 {
	boxes := make([]vmath.Box2, len(c.Box))
	for i, b := range c.Box {
		boxes[i] = vmath.NewBox2F(b.Position[0], b.Position[1], b.Size[0], b.Size[1])
	}
	return boxes
}
