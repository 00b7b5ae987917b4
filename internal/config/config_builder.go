package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs and merges them in precedence
// order. Sources are kept in named slots because the JSON file path is only
// known after env and flags have been parsed.
type configBuilder struct {
	defaults *StructuredConfig
	json     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

// sources returns the collected configs from lowest to highest precedence.
func (b *configBuilder) sources() []*StructuredConfig {
	all := []*StructuredConfig{b.defaults, b.json, b.env, b.flags}
	res := make([]*StructuredConfig, 0, len(all))
	for _, cfg := range all {
		if cfg != nil {
			res = append(res, cfg)
		}
	}
	return res
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.sources() {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(); err != nil {
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

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range []*StructuredConfig{b.env, b.flags} {
		if cfg != nil && cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.json = jsonCfg

	return b
}
