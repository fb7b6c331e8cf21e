package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/c2fo/ftpsession"
)

const defaultConfigPath = "~/.ftpsh.yaml"

// config is the on-disk form of the global flags.
//
//	url: ftp://bob@ftp.example.com/upload
//	timeout: 30s
//	active: false
//	options:
//	  stagingDir: /var/tmp
//	  maxRetries: 3
//	  retryDelay: 2s
type config struct {
	URL     string             `yaml:"url"`
	Timeout time.Duration      `yaml:"timeout"`
	Active  bool               `yaml:"active"`
	Options ftpsession.Options `yaml:"options"`
}

// loadConfig reads the yaml file at p. A missing file at the default location is not an error.
func loadConfig(p string) (*config, error) {
	explicit := p != ""
	if !explicit {
		p = defaultConfigPath
	}
	expanded, err := homedir.Expand(p)
	if err != nil {
		return nil, fmt.Errorf("config path %q: %w", p, err)
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", expanded, err)
	}
	return cfg, nil
}
