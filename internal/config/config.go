package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
	"github.com/ThomasCrouzet/tierview/internal/logging"
	"github.com/ThomasCrouzet/tierview/internal/util"
)

// EnvPrefix is prepended to environment overrides, e.g. TIERVIEW_SERVER_PORT.
const EnvPrefix = "TIERVIEW"

type Config struct {
	Mode   string         `mapstructure:"mode"` // localstack, aws
	AWS    AWSConfig      `mapstructure:"aws"`
	Query  QueryConfig    `mapstructure:"query"`
	Server ServerConfig   `mapstructure:"server"`
	Log    logging.Config `mapstructure:"log"`
	Render RenderConfig   `mapstructure:"render"`
}

type AWSConfig struct {
	CLI      string `mapstructure:"cli"`
	Endpoint string `mapstructure:"endpoint"`
	Region   string `mapstructure:"region"`
	Profile  string `mapstructure:"profile"`
}

type QueryConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrent  bool          `mapstructure:"concurrent"`
	Deadline    time.Duration `mapstructure:"deadline"`
	FixturesDir string        `mapstructure:"fixtures_dir"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	OpenBrowser bool   `mapstructure:"open_browser"`
	StaticDir   string `mapstructure:"static_dir"`
	Metrics     bool   `mapstructure:"metrics"`
}

type RenderConfig struct {
	Output      string `mapstructure:"output"`
	Format      string `mapstructure:"format"` // d2, json, yaml, html
	Direction   string `mapstructure:"direction"`
	Theme       string `mapstructure:"theme"`
	DetailLevel string `mapstructure:"detail_level"` // minimal, standard, detailed
	AutoRender  bool   `mapstructure:"auto_render"`
	ImageFormat string `mapstructure:"image_format"` // svg, png
}

// Default returns the configuration used when no file, env or flag says otherwise.
func Default() *Config {
	return &Config{
		Mode: string(inventory.ModeLocalStack),
		AWS: AWSConfig{
			CLI:      inventory.DefaultBinary,
			Endpoint: inventory.DefaultEndpoint,
		},
		Query: QueryConfig{
			Timeout:    inventory.DefaultTimeout,
			Concurrent: true,
			Deadline:   20 * time.Second,
		},
		Server: ServerConfig{
			Host:        "localhost",
			Port:        8080,
			OpenBrowser: true,
			StaticDir:   ".",
			Metrics:     true,
		},
		Log: logging.DefaultConfig(),
		Render: RenderConfig{
			Output:      "tierview.d2",
			Format:      "d2",
			Direction:   "down",
			Theme:       "default",
			DetailLevel: "standard",
			ImageFormat: "svg",
		},
	}
}

// SetDefaults registers every default with v so that environment overrides
// apply to keys missing from the config file.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("mode", d.Mode)
	v.SetDefault("aws.cli", d.AWS.CLI)
	v.SetDefault("aws.endpoint", d.AWS.Endpoint)
	v.SetDefault("aws.region", d.AWS.Region)
	v.SetDefault("aws.profile", d.AWS.Profile)
	v.SetDefault("query.timeout", d.Query.Timeout)
	v.SetDefault("query.concurrent", d.Query.Concurrent)
	v.SetDefault("query.deadline", d.Query.Deadline)
	v.SetDefault("query.fixtures_dir", d.Query.FixturesDir)
	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.open_browser", d.Server.OpenBrowser)
	v.SetDefault("server.static_dir", d.Server.StaticDir)
	v.SetDefault("server.metrics", d.Server.Metrics)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("render.output", d.Render.Output)
	v.SetDefault("render.format", d.Render.Format)
	v.SetDefault("render.direction", d.Render.Direction)
	v.SetDefault("render.theme", d.Render.Theme)
	v.SetDefault("render.detail_level", d.Render.DetailLevel)
	v.SetDefault("render.auto_render", d.Render.AutoRender)
	v.SetDefault("render.image_format", d.Render.ImageFormat)
}

// Load decodes the global viper state over the defaults.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom decodes v over the defaults.
func LoadFrom(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandPaths resolves a leading ~ in every directory setting. Callers that
// override paths after loading must call it again.
func (c *Config) ExpandPaths() error {
	paths := []struct {
		key string
		dir *string
	}{
		{"query.fixtures_dir", &c.Query.FixturesDir},
		{"server.static_dir", &c.Server.StaticDir},
	}
	for _, p := range paths {
		expanded, err := util.ExpandPath(*p.dir)
		if err != nil {
			return fmt.Errorf("%s: %w", p.key, err)
		}
		*p.dir = expanded
	}
	return nil
}

// InventoryMode returns the typed query mode.
func (c *Config) InventoryMode() inventory.Mode {
	if c.Mode == string(inventory.ModeAWS) {
		return inventory.ModeAWS
	}
	return inventory.ModeLocalStack
}

// InventoryOptions returns the options for the resource query adapter.
func (c *Config) InventoryOptions() inventory.Options {
	return inventory.Options{
		Mode:        c.InventoryMode(),
		Binary:      c.AWS.CLI,
		Endpoint:    c.AWS.Endpoint,
		Region:      c.AWS.Region,
		Profile:     c.AWS.Profile,
		Timeout:     c.Query.Timeout,
		FixturesDir: c.Query.FixturesDir,
	}
}
