package main

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/spf13/viper"

	"maze3d/engine"
)

type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type MapSettings struct {
	// File is a path to a text map on disk. Empty selects the embedded level.
	File      string `mapstructure:"file"`
	BlockSize int    `mapstructure:"block_size"`
}

// RenderSettings field names line up with engine.CasterConfig and
// engine.ProjectorConfig so they can be copied across.
type RenderSettings struct {
	FOVDegrees       float64 `mapstructure:"fov_degrees"`
	StepFraction     float64 `mapstructure:"step_fraction"`
	RefineIterations int     `mapstructure:"refine_iterations"`
	NearClamp        float64 `mapstructure:"near_clamp"`
	WinDistance      float64 `mapstructure:"win_distance"`
	SpriteScale      float64 `mapstructure:"sprite_scale"`
	Workers          int     `mapstructure:"workers"`
}

type PlayerSettings struct {
	// MoveSpeed is in blocks per tick.
	MoveSpeed float64 `mapstructure:"move_speed"`
	// RotateSpeed is in radians per pixel of mouse travel.
	RotateSpeed float64 `mapstructure:"rotate_speed"`
}

type AssetSettings struct {
	Dir string `mapstructure:"dir"`
}

type AudioSettings struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type DebugSettings struct {
	Minimap bool `mapstructure:"minimap"`
	Rays    bool `mapstructure:"rays"`
}

type Settings struct {
	Window WindowSettings `mapstructure:"window"`
	Map    MapSettings    `mapstructure:"map"`
	Render RenderSettings `mapstructure:"render"`
	Player PlayerSettings `mapstructure:"player"`
	Assets AssetSettings  `mapstructure:"assets"`
	Audio  AudioSettings  `mapstructure:"audio"`
	Log    LogSettings    `mapstructure:"log"`
	Debug  DebugSettings  `mapstructure:"debug"`
}

var errSettings = errors.New("invalid settings")

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1024)
	v.SetDefault("window.height", 640)
	v.SetDefault("window.title", "maze 3d raycasting")

	v.SetDefault("map.file", "")
	v.SetDefault("map.block_size", 64)

	v.SetDefault("render.fov_degrees", 60.0)
	v.SetDefault("render.step_fraction", 0.01)
	v.SetDefault("render.refine_iterations", 8)
	v.SetDefault("render.near_clamp", 10.0)
	v.SetDefault("render.win_distance", 10.0)
	v.SetDefault("render.sprite_scale", 0.5)
	v.SetDefault("render.workers", 0)

	v.SetDefault("player.move_speed", 0.1)
	v.SetDefault("player.rotate_speed", 0.003)

	v.SetDefault("assets.dir", "assets")
	v.SetDefault("audio.enabled", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("debug.minimap", true)
	v.SetDefault("debug.rays", false)
}

// LoadSettings reads defaults, then maze3d.yaml (or configFile when given),
// then MAZE3D_* environment overrides.
func LoadSettings(configFile string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MAZE3D")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("maze3d")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/maze3d")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Settings) validate() error {
	switch {
	case s.Window.Width <= 0 || s.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", errSettings, s.Window.Width, s.Window.Height)
	case s.Map.BlockSize <= 0:
		return fmt.Errorf("%w: map.block_size %d", errSettings, s.Map.BlockSize)
	case s.Render.FOVDegrees <= 0 || s.Render.FOVDegrees >= 180:
		return fmt.Errorf("%w: render.fov_degrees %v", errSettings, s.Render.FOVDegrees)
	case s.Render.RefineIterations < 0:
		return fmt.Errorf("%w: render.refine_iterations %d", errSettings, s.Render.RefineIterations)
	}
	return nil
}

func (s *Settings) FOV() float64 {
	return s.Render.FOVDegrees * math.Pi / 180
}

// CasterConfig projects the render settings onto the engine defaults.
// Zero settings keep the default, except refine_iterations where 0 turns
// refinement off.
func (s *Settings) CasterConfig() (engine.CasterConfig, error) {
	cfg := engine.DefaultCasterConfig()
	if err := copier.CopyWithOption(&cfg, &s.Render, copier.Option{IgnoreEmpty: true}); err != nil {
		return cfg, fmt.Errorf("caster config: %w", err)
	}
	cfg.RefineIterations = s.Render.RefineIterations
	return cfg, nil
}

func (s *Settings) ProjectorConfig() (engine.ProjectorConfig, error) {
	cfg := engine.DefaultProjectorConfig()
	if err := copier.CopyWithOption(&cfg, &s.Render, copier.Option{IgnoreEmpty: true}); err != nil {
		return cfg, fmt.Errorf("projector config: %w", err)
	}
	return cfg, nil
}
