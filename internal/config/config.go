package config

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaultsTOML []byte

// Settings holds every build-time constant of the demo.
type Settings struct {
	Window   Window   `toml:"window"`
	Camera   Camera   `toml:"camera"`
	Controls Controls `toml:"controls"`
	Light    Light    `toml:"light"`
	Assets   Assets   `toml:"assets"`
	Frame    Frame    `toml:"frame"`
}

// Hidden creates the window invisible, for tools and tests that only need a
// GL context.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	VSync  bool   `toml:"vsync"`
	Hidden bool   `toml:"hidden"`
}

// Camera angles are in degrees.
type Camera struct {
	Position [3]float32 `toml:"position"`
	Yaw      float32    `toml:"yaw"`
	Pitch    float32    `toml:"pitch"`
	FOV      float32    `toml:"fov"`
	Near     float32    `toml:"near"`
	Far      float32    `toml:"far"`
}

type Controls struct {
	Sensitivity float32 `toml:"sensitivity"`
	Speed       float32 `toml:"speed"`
}

type Light struct {
	Position    [3]float32 `toml:"position"`
	Colour      [3]float32 `toml:"colour"`
	Radius      float32    `toml:"radius"`
	Speed       float32    `toml:"speed"`
	MarkerScale float32    `toml:"marker_scale"`

	// Per-vertex shading terms of the lit object.
	Ambient   float32 `toml:"ambient"`
	Specular  float32 `toml:"specular"`
	Shininess float32 `toml:"shininess"`
}

// Assets are paths relative to the working directory.
type Assets struct {
	ObjectTexture  string `toml:"object_texture"`
	MarkerTexture  string `toml:"marker_texture"`
	LitVertex      string `toml:"lit_vertex"`
	LitFragment    string `toml:"lit_fragment"`
	MarkerVertex   string `toml:"marker_vertex"`
	MarkerFragment string `toml:"marker_fragment"`
}

type Frame struct {
	ClearColour [3]float32 `toml:"clear_colour"`
	SlowFrameMs float64    `toml:"slow_frame_ms"`
}

// Default returns the settings compiled into the binary.
func Default() Settings {
	s, err := Parse(defaultsTOML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return s
}

// Parse decodes data on top of an empty Settings and validates the result.
// Keys missing from data keep their zero value.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every setting that would make the demo unrunnable.
func (s Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", s.Window.Width, s.Window.Height))
	}
	if s.Camera.FOV <= 0 || s.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v must be in (0, 180)", s.Camera.FOV))
	}
	if s.Camera.Near <= 0 || s.Camera.Near >= s.Camera.Far {
		errs = append(errs, fmt.Errorf("clip planes near=%v far=%v must satisfy 0 < near < far", s.Camera.Near, s.Camera.Far))
	}
	if s.Controls.Speed <= 0 || s.Controls.Sensitivity <= 0 {
		errs = append(errs, errors.New("control speed and sensitivity must be positive"))
	}
	if s.Light.MarkerScale <= 0 {
		errs = append(errs, errors.New("light marker scale must be positive"))
	}
	if s.Light.Ambient < 0 || s.Light.Specular < 0 || s.Light.Shininess < 0 {
		errs = append(errs, errors.New("light ambient, specular and shininess must not be negative"))
	}
	return errors.Join(errs...)
}
