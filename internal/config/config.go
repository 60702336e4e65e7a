// Package config handles showcase configuration loading and management.
package config

// Config holds all showcase settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Showcase ShowcaseConfig `yaml:"showcase"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
	MSAA       int  `yaml:"msaa"`
}

// ShowcaseConfig holds the initial state of the hero scene.
type ShowcaseConfig struct {
	Silhouette      string  `yaml:"silhouette"`       // high-top, low-top, running
	Material        string  `yaml:"material"`         // leather, nubuck, glint, knit
	BaseColor       string  `yaml:"base_color"`       // #RRGGBB
	AccentColor     string  `yaml:"accent_color"`     // #RRGGBB
	Scale           float32 `yaml:"scale"`
	AdvancedShaders bool    `yaml:"advanced_shaders"`
	AutoRotate      bool    `yaml:"auto_rotate"`
	TurntableSpeed  float32 `yaml:"turntable_speed"` // radians per second
}

// CaptureConfig holds screenshot settings.
type CaptureConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			MSAA:       4,
		},
		Showcase: ShowcaseConfig{
			Silhouette:      "low-top",
			Material:        "leather",
			BaseColor:       "#1A3C34",
			AccentColor:     "#E1B75A",
			Scale:           1.0,
			AdvancedShaders: true,
			AutoRotate:      true,
			TurntableSpeed:  0.35,
		},
		Capture: CaptureConfig{
			Dir: "captures",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
