// Package config handles renderer configuration loading and
// validation.
package config

import "fmt"

// Config holds all settings across the terminal and GPU frontends.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Window  WindowConfig  `yaml:"window"`
	Model   ModelConfig   `yaml:"model"`
	World   WorldConfig   `yaml:"world"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds the character-grid viewport settings. Zero
// width or height resolve to the terminal size at startup.
type DisplayConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FPS    int     `yaml:"fps"`
	FOV    float64 `yaml:"fov"`
}

// WindowConfig holds the GPU frontend's window settings.
type WindowConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// ModelConfig selects and parameterizes the static model viewer.
type ModelConfig struct {
	Name    string  `yaml:"name"` // cube, car or house
	Size    float64 `yaml:"size"`
	SpeedX  float64 `yaml:"speed_x"`
	SpeedY  float64 `yaml:"speed_y"`
	SpeedZ  float64 `yaml:"speed_z"`
	RotateZ bool    `yaml:"rotate_z"`
	Move    bool    `yaml:"move"` // start the viewer in free-camera mode
}

// WorldConfig holds the procedural forest parameters.
type WorldConfig struct {
	Seed           uint32  `yaml:"seed"`
	RenderDistance int     `yaml:"render_distance"`
	ChunkSize      float64 `yaml:"chunk_size"`
}

// CameraConfig holds movement tuning. A zero MoveSpeed picks the
// mode default: fixed walking speed in the forest, scaled to the
// model radius in the viewer.
type CameraConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`
	TurnSpeed float64 `yaml:"turn_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the standard settings.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:  0,
			Height: 0,
			FPS:    30,
			FOV:    90,
		},
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Model: ModelConfig{
			Name:   "cube",
			Size:   1.5,
			SpeedX: 0.01,
			SpeedY: 0.03,
			SpeedZ: 0.02,
		},
		World: WorldConfig{
			Seed:           42,
			RenderDistance: 2,
			ChunkSize:      12,
		},
		Camera: CameraConfig{
			MoveSpeed: 0,
			TurnSpeed: 0.05,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ResolveDisplay fills in zero display dimensions from the terminal
// size, leaving the bottom row free for the status line.
func (c *Config) ResolveDisplay(termW, termH int) {
	if c.Display.Width == 0 {
		c.Display.Width = termW
	}
	if c.Display.Height == 0 {
		c.Display.Height = termH - 1
	}
}

var modelNames = map[string]bool{"cube": true, "car": true, "house": true}

var logLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

// Validate checks every field against its usable range. Display
// dimensions must already be resolved.
func (c *Config) Validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 120 {
		return fmt.Errorf("fps %d outside 1..120", c.Display.FPS)
	}
	if c.Display.Width < 20 {
		return fmt.Errorf("display width %d below minimum 20", c.Display.Width)
	}
	if c.Display.Height < 10 {
		return fmt.Errorf("display height %d below minimum 10", c.Display.Height)
	}
	if c.Display.FOV < 10 || c.Display.FOV > 170 {
		return fmt.Errorf("fov %g outside 10..170 degrees", c.Display.FOV)
	}
	if c.Window.Width < 320 || c.Window.Height < 240 {
		return fmt.Errorf("window %dx%d below minimum 320x240", c.Window.Width, c.Window.Height)
	}
	if !modelNames[c.Model.Name] {
		return fmt.Errorf("unknown model %q", c.Model.Name)
	}
	if c.Model.Size <= 0 {
		return fmt.Errorf("model size %g must be positive", c.Model.Size)
	}
	if c.World.RenderDistance < 1 {
		return fmt.Errorf("render distance %d must be at least 1", c.World.RenderDistance)
	}
	if c.World.ChunkSize <= 0 {
		return fmt.Errorf("chunk size %g must be positive", c.World.ChunkSize)
	}
	if c.Camera.MoveSpeed < 0 {
		return fmt.Errorf("move speed %g must not be negative", c.Camera.MoveSpeed)
	}
	if c.Camera.TurnSpeed <= 0 {
		return fmt.Errorf("turn speed %g must be positive", c.Camera.TurnSpeed)
	}
	if !logLevels[c.Logging.Level] {
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}
