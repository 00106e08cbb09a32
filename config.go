package main

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Addr         string `toml:"addr"`
	ContentDir   string `toml:"content_dir"`
	Extension    string `toml:"extension"`
	DefaultTitle string `toml:"default_title"`
	Theme        string `toml:"theme"`
	Trusted      bool   `toml:"trusted"`
	Watch        bool   `toml:"watch"`

	CopyButton CopyButtonOptions `toml:"copy_button"`
}

func defaultConfig() Config {
	return Config{
		Addr:         "localhost:8080",
		ContentDir:   "src/content/",
		Extension:    ".md",
		DefaultTitle: "Docker Containerization",
		Theme:        "github-dark",
		Trusted:      true,
		CopyButton: CopyButtonOptions{
			Visibility:       "always",
			FeedbackDuration: 3000,
		},
	}
}

// parseConfig reads the TOML file at the given path on top of the default configuration.
// A missing file is not an error, the defaults are used as-is.
func parseConfig(file string) (Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(file, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	// ensure content dir has trailing slash
	if cfg.ContentDir != "" && !strings.HasSuffix(cfg.ContentDir, "/") {
		cfg.ContentDir += "/"
	}

	// ensure extension has a leading dot
	if cfg.Extension != "" && !strings.HasPrefix(cfg.Extension, ".") {
		cfg.Extension = "." + cfg.Extension
	}

	return cfg, nil
}

func (c Config) pipelineOptions() PipelineOptions {
	return PipelineOptions{
		DefaultTitle: c.DefaultTitle,
		Theme:        c.Theme,
		Trusted:      c.Trusted,
		CopyButton:   c.CopyButton,
	}
}
