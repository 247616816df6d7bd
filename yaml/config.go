// Package yaml loads check options from a YAML config file.
package yaml

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/awalczyk/linkrot"
)

// Config mirrors the CLI flags in file form. Durations are strings in
// time.ParseDuration syntax ("10s", "1m30s").
type Config struct {
	Concurrency int      `yaml:"concurrency"`
	Port        int      `yaml:"port"`
	Recurse     bool     `yaml:"recurse"`
	Sitemap     bool     `yaml:"sitemap"`
	Timeout     string   `yaml:"timeout"`
	UserAgent   string   `yaml:"user_agent"`
	Skip        []string `yaml:"skip"`
}

// LoadOptions reads a YAML config file into CheckOptions. The returned
// options carry no path; the caller supplies the check target.
func LoadOptions(path string) (*linkrot.CheckOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, linkrot.Errorf(linkrot.ENOTFOUND, "config file %q not found", path)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, linkrot.Errorf(linkrot.EINVALID, "parse config %s: %v", path, err)
	}

	opts := &linkrot.CheckOptions{
		Concurrency: cfg.Concurrency,
		Port:        cfg.Port,
		Recurse:     cfg.Recurse,
		Sitemap:     cfg.Sitemap,
		UserAgent:   cfg.UserAgent,
		LinksToSkip: cfg.Skip,
	}

	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil {
			return nil, linkrot.Errorf(linkrot.EINVALID, "invalid timeout %q: %v", cfg.Timeout, err)
		}
		opts.Timeout = d
	}

	if opts.Concurrency < 0 {
		return nil, linkrot.Errorf(linkrot.EINVALID, "concurrency must not be negative")
	}
	if opts.Port < 0 || opts.Port > 65535 {
		return nil, linkrot.Errorf(linkrot.EINVALID, "port %d out of range", opts.Port)
	}

	return opts, nil
}
