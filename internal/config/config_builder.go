package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// layer is one configuration source. Layers are merged in the order they were
// added; non-zero fields of a later layer win.
type layer struct {
	source string
	cfg    *StructuredConfig
}

type configBuilder struct {
	layers   []layer
	defaults *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]layer, 0, 3)}
}

// add records cfg under source, or joins err into the builder error.
func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.layers = append(b.layers, layer{source: source, cfg: cfg})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg, err := parseEnv(processEnviron())
	return b.add("env", cfg, err)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := ParseFlags(args)
	return b.add("flags", cfg, err)
}

// withJSON loads the file named by the last layer that set JSONFilePath.
// It is skipped when an earlier source already failed.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	path := ""
	for _, l := range b.layers {
		if l.cfg.JSONFilePath != "" {
			path = l.cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	return b.add("json "+path, cfg, err)
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

// build merges the layers, fills zero fields from the defaults and validates
// the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(merged, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging %s config: %w", l.source, err)
		}
	}

	if b.defaults != nil {
		if err := mergo.Merge(merged, b.defaults); err != nil {
			return nil, fmt.Errorf("error merging default configs: %w", err)
		}
	}

	return merged, merged.validate()
}
