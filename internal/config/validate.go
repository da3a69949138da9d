package config

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"slices"

	"go.uber.org/zap/zapcore"

	"github.com/ThomasCrouzet/tierview/internal/inventory"
)

// ValidationError reports a config problem with a suggested fix.
type ValidationError struct {
	Field      string // dotted path, e.g. "aws.endpoint"
	Message    string // what's wrong
	Suggestion string // how to fix it
}

var (
	exportFormats = []string{"d2", "json", "yaml", "html"}
	imageFormats  = []string{"svg", "png"}
	detailLevels  = []string{"minimal", "standard", "detailed"}
	directions    = []string{"up", "down", "left", "right"}
	logFormats    = []string{"console", "json"}
)

// lookPath wraps exec.LookPath for testability.
var lookPath = exec.LookPath

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	add := func(field, msg, suggestion string) {
		errs = append(errs, ValidationError{Field: field, Message: msg, Suggestion: suggestion})
	}

	switch inventory.Mode(c.Mode) {
	case inventory.ModeLocalStack:
		u, err := url.Parse(c.AWS.Endpoint)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			add("aws.endpoint", fmt.Sprintf("invalid endpoint %q", c.AWS.Endpoint),
				"use a URL such as "+inventory.DefaultEndpoint)
		}
	case inventory.ModeAWS:
	default:
		add("mode", fmt.Sprintf("unknown mode %q", c.Mode), "use localstack or aws")
	}

	if c.Query.FixturesDir != "" {
		if info, err := os.Stat(c.Query.FixturesDir); err != nil || !info.IsDir() {
			add("query.fixtures_dir", fmt.Sprintf("directory not found: %s", c.Query.FixturesDir),
				"check the path or remove fixtures_dir to query the live endpoint")
		}
	} else if _, err := lookPath(c.AWS.CLI); err != nil {
		add("aws.cli", fmt.Sprintf("%s binary not found in PATH", c.AWS.CLI),
			"install the AWS CLI or set aws.cli to its full path")
	}

	if c.Query.Timeout <= 0 {
		add("query.timeout", "timeout must be positive", "use a duration such as 15s")
	}
	if c.Query.Deadline < 0 {
		add("query.deadline", "deadline must not be negative", "use 0 to disable the overall deadline")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		add("server.port", fmt.Sprintf("port %d out of range", c.Server.Port), "use a port between 1 and 65535")
	}
	if c.Server.StaticDir != "" {
		if info, err := os.Stat(c.Server.StaticDir); err != nil || !info.IsDir() {
			add("server.static_dir", fmt.Sprintf("directory not found: %s", c.Server.StaticDir),
				"check the path or remove static_dir")
		}
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		add("log.level", fmt.Sprintf("unknown level %q", c.Log.Level), "use debug, info, warn or error")
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		add("log.format", fmt.Sprintf("unknown format %q", c.Log.Format), "use console or json")
	}

	if !slices.Contains(exportFormats, c.Render.Format) {
		add("render.format", fmt.Sprintf("unknown format %q", c.Render.Format), "use d2, json, yaml or html")
	}
	if !slices.Contains(imageFormats, c.Render.ImageFormat) {
		add("render.image_format", fmt.Sprintf("unknown image format %q", c.Render.ImageFormat), "use svg or png")
	}
	if !slices.Contains(detailLevels, c.Render.DetailLevel) {
		add("render.detail_level", fmt.Sprintf("unknown detail level %q", c.Render.DetailLevel),
			"use minimal, standard or detailed")
	}
	if !slices.Contains(directions, c.Render.Direction) {
		add("render.direction", fmt.Sprintf("unknown direction %q", c.Render.Direction),
			"use up, down, left or right")
	}

	return errs
}
