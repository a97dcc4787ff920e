package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	flags *StructuredConfig
	env   *StructuredConfig
	file  *StructuredConfig
	err   error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// build merges the collected layers so that flags override the environment
// and the environment overrides the config file.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range []*StructuredConfig{b.file, b.env, b.flags} {
		if cfg == nil {
			continue
		}
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withFlags(name string, args []string, withServerFlags bool) *configBuilder {
	flags, err := parseFlags(name, args, withServerFlags)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

// withDotEnv seeds the process environment from a .env file. Variables that
// are already set are left untouched.
func (b *configBuilder) withDotEnv() *configBuilder {
	path := lookupEnvFile(b.flags)
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.file = fileCfg
	return b
}
