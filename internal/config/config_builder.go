package config

import (
	"errors"
	"fmt"
	"maps"

	"dario.cat/mergo"
)

// configBuilder collects one layer per source, highest priority first, and
// merges them in build.
type configBuilder struct {
	layers []*layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]*layer, 0, 3),
	}
}

// build starts from the defaults and applies the layers from the lowest
// priority to the highest. Only the keys a layer supplied override what is
// already there.
func (b *configBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := defaultSettings()
	supplied := make(map[string]struct{})
	for i := len(b.layers) - 1; i >= 0; i-- {
		l := b.layers[i]
		if err := mergo.Merge(config, l.Settings, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		l.overrideEmpty(config)
		maps.Copy(supplied, l.keys)
	}

	if err := config.validate(supplied); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsLayer, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, flagsLayer)
	return b
}

func (b *configBuilder) withEnv(environ []string) *configBuilder {
	envFile, explicit := b.envFile(environ)

	vars, err := environment(environ, envFile, explicit)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	envLayer, err := parseEnv(vars)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envLayer)
	return b
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, l := range b.layers {
		if l.FilePath != "" {
			path = l.FilePath
			break
		}
	}

	if path == "" {
		return b
	}

	fileLayer, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, fileLayer)
	return b
}

// envFile resolves the env file path from the flags or the process
// environment. explicit reports whether the path was named rather than
// defaulted, in which case the file must exist.
func (b *configBuilder) envFile(environ []string) (string, bool) {
	for _, l := range b.layers {
		if l.EnvFile != "" {
			return l.EnvFile, true
		}
	}

	if path := environToMap(environ)["ENV_FILE"]; path != "" {
		return path, true
	}

	return DefaultEnvFile, false
}
