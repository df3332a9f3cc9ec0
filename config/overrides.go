package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the on-disk shape of an optional settings file. Only the
// fields present in the file replace the compiled-in defaults.
type Overrides struct {
	Window *struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
		TPS    int `yaml:"tps"`
	} `yaml:"window"`

	Game *struct {
		StartMap   string `yaml:"startMap"`
		Background string `yaml:"background"` // #rrggbb
	} `yaml:"game"`

	Player *struct {
		Speed              *float64 `yaml:"speed"`
		Friction           *float64 `yaml:"friction"`
		AnimationThreshold *float64 `yaml:"animationThreshold"`
	} `yaml:"player"`

	Map *struct {
		SpawnSelection string `yaml:"spawnSelection"`
	} `yaml:"map"`

	Camera *struct {
		Smoothing    *float64 `yaml:"smoothing"`
		DeadZoneX    *float64 `yaml:"deadZoneX"`
		DeadZoneY    *float64 `yaml:"deadZoneY"`
		ClampToWorld *bool    `yaml:"clampToWorld"`
	} `yaml:"camera"`

	Log *struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Debug *bool `yaml:"debug"`
}

// LoadOverrides reads a YAML settings file and applies it to the globals.
// A missing file is not an error.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides parses YAML settings and applies them to the globals.
func ApplyOverrides(data []byte) error {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if w := o.Window; w != nil {
		if w.Width > 0 {
			C.Width = w.Width
		}
		if w.Height > 0 {
			C.Height = w.Height
		}
		if w.TPS > 0 {
			C.TPS = w.TPS
		}
	}

	if g := o.Game; g != nil {
		if g.StartMap != "" {
			Game.StartMap = g.StartMap
		}
		if g.Background != "" {
			c, err := parseHexColor(g.Background)
			if err != nil {
				return err
			}
			Game.BackgroundColor = c
		}
	}

	if p := o.Player; p != nil {
		setFloat(&Player.Speed, p.Speed)
		setFloat(&Player.Friction, p.Friction)
		setFloat(&Player.AnimationThreshold, p.AnimationThreshold)
	}

	if m := o.Map; m != nil && m.SpawnSelection != "" {
		Map.SpawnSelection = m.SpawnSelection
	}

	if c := o.Camera; c != nil {
		setFloat(&Camera.Smoothing, c.Smoothing)
		setFloat(&Camera.DeadZoneX, c.DeadZoneX)
		setFloat(&Camera.DeadZoneY, c.DeadZoneY)
		if c.ClampToWorld != nil {
			Camera.ClampToWorld = *c.ClampToWorld
		}
	}

	if l := o.Log; l != nil {
		if l.Level != "" {
			Log.Level = l.Level
		}
		if l.Format != "" {
			Log.Format = l.Format
		}
	}

	if o.Debug != nil {
		Debug.Enabled = *o.Debug
	}

	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
