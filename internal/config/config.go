// Package config loads the optional YAML run configuration. Flags override
// file values; prompts fill whatever is still missing.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig describes one migration run.
type RunConfig struct {
	Domain     string `yaml:"domain"`
	Nameserver string `yaml:"nameserver"`
	Provider   string `yaml:"provider"` // digitalocean|dnspod
	Transfer   string `yaml:"transfer"` // axfr|dig

	DigitalOcean DigitalOceanConfig `yaml:"digitalocean"`
	DNSPod       DNSPodConfig       `yaml:"dnspod"`
}

type DigitalOceanConfig struct {
	Token string `yaml:"token"`
}

type DNSPodConfig struct {
	SecretID   string `yaml:"secret_id"`
	SecretKey  string `yaml:"secret_key"`
	Region     string `yaml:"region"`
	RecordLine string `yaml:"record_line"`
}

// LoadFile reads and parses a run configuration.
func LoadFile(path string) (RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read config: %w", err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("parse config yaml: %w", err)
	}
	return cfg, nil
}
