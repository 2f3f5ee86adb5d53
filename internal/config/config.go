// Package config handles application configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Controls ControlsConfig `yaml:"controls"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display, camera and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	Fov        float32 `yaml:"fov"` // vertical, degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
	LineWidth  float32 `yaml:"line_width"`
	// MSAA is the multisample count; 0 disables multisampling.
	MSAA int `yaml:"msaa"`
}

// TextConfig is one line of extruded text.
type TextConfig struct {
	Content string  `yaml:"content"`
	Size    float32 `yaml:"size"`
}

// DecorativeConfig describes the spinning torus knot.
type DecorativeConfig struct {
	Position        [3]float32 `yaml:"position"`
	Radius          float32    `yaml:"radius"`
	Tube            float32    `yaml:"tube"`
	TubularSegments int        `yaml:"tubular_segments"`
	RadialSegments  int        `yaml:"radial_segments"`
	P               int        `yaml:"p"`
	Q               int        `yaml:"q"`
	EdgeThreshold   float32    `yaml:"edge_threshold"` // degrees
}

// SpinConfig controls the decorative object's rotation.
type SpinConfig struct {
	// Rate is radians per second around X and Y.
	Rate float32 `yaml:"rate"`
	// FrameLocked rotates by Rate/60 every frame regardless of frame time.
	FrameLocked bool `yaml:"frame_locked"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	// Font is a typeface JSON or OpenType file. Empty, or a default path that
	// does not exist, uses the embedded font.
	Font          string           `yaml:"font"`
	Texts         []TextConfig     `yaml:"texts"`
	RowSpacing    float32          `yaml:"row_spacing"`
	TextDepth     float32          `yaml:"text_depth"`
	CurveSegments int              `yaml:"curve_segments"`
	Background    [3]float32       `yaml:"background"`
	Decorative    DecorativeConfig `yaml:"decorative"`
	Spin          SpinConfig       `yaml:"spin"`
}

// ControlsConfig holds orbit control settings.
type ControlsConfig struct {
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float32 `yaml:"damping_factor"`
	RotateSpeed   float32 `yaml:"rotate_speed"`
	ZoomSpeed     float32 `yaml:"zoom_speed"`
	PanSpeed      float32 `yaml:"pan_speed"`
	MinDistance   float32 `yaml:"min_distance"`
	MaxDistance   float32 `yaml:"max_distance"` // 0 means unlimited
}

// DebugConfig holds developer aids.
type DebugConfig struct {
	ShowBounds    bool   `yaml:"show_bounds"`
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultFont is the typeface the scene looks for next to the binary.
const DefaultFont = "fonts/helvetiker_regular.typeface.json"

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			Fov:        75,
			Near:       0.1,
			Far:        2000,
			LineWidth:  1,
			MSAA:       4,
		},
		Scene: SceneConfig{
			Font: DefaultFont,
			Texts: []TextConfig{
				{Content: "Hey! I'm Manuel.", Size: 40},
				{Content: "My projects", Size: 40},
			},
			RowSpacing:    -40,
			TextDepth:     5,
			CurveSegments: 12,
			Background:    [3]float32{1, 1, 1},
			Decorative: DecorativeConfig{
				Position:        [3]float32{0, -120, 0},
				Radius:          10,
				Tube:            3,
				TubularSegments: 100,
				RadialSegments:  16,
				P:               2,
				Q:               3,
				EdgeThreshold:   1,
			},
			Spin: SpinConfig{
				Rate:        0.6,
				FrameLocked: false,
			},
		},
		Controls: ControlsConfig{
			EnableDamping: true,
			DampingFactor: 0.05,
			RotateSpeed:   1,
			ZoomSpeed:     1,
			PanSpeed:      1,
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports every setting that would make the scene unusable.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Graphics.Fov <= 0 || c.Graphics.Fov >= 180 {
		errs = append(errs, fmt.Errorf("graphics: fov %v out of range (0, 180)", c.Graphics.Fov))
	}
	if c.Graphics.MSAA < 0 {
		errs = append(errs, fmt.Errorf("graphics: negative msaa %d", c.Graphics.MSAA))
	}
	if c.Graphics.Near <= 0 || c.Graphics.Far <= c.Graphics.Near {
		errs = append(errs, fmt.Errorf("graphics: invalid clip planes near=%v far=%v", c.Graphics.Near, c.Graphics.Far))
	}
	for i, t := range c.Scene.Texts {
		if t.Size <= 0 {
			errs = append(errs, fmt.Errorf("scene: text %d has size %v", i, t.Size))
		}
	}
	if c.Scene.TextDepth < 0 {
		errs = append(errs, fmt.Errorf("scene: negative text depth %v", c.Scene.TextDepth))
	}
	d := c.Scene.Decorative
	if d.Radius <= 0 || d.Tube <= 0 {
		errs = append(errs, fmt.Errorf("scene: decorative radius %v and tube %v must be positive", d.Radius, d.Tube))
	}
	if d.P <= 0 || d.Q <= 0 {
		errs = append(errs, fmt.Errorf("scene: decorative winding p=%d q=%d must be positive", d.P, d.Q))
	}
	if c.Controls.DampingFactor < 0 || c.Controls.DampingFactor > 1 {
		errs = append(errs, fmt.Errorf("controls: damping factor %v out of range [0, 1]", c.Controls.DampingFactor))
	}
	return errors.Join(errs...)
}
