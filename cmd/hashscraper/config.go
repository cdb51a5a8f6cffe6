package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAMLConfig loads flag defaults from a YAML document. Keys are flag names;
// dashes and underscores are interchangeable.
//
//	backend: browser
//	api_key: hs-...
//	concurrency: 4
func YAMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	normalized := make(map[string]any, len(values))
	for k, v := range values {
		normalized[configKey(k)] = v
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		v, ok := normalized[configKey(flag.Name)]
		if !ok {
			return nil, nil
		}
		return v, nil
	}), nil
}

func configKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "_", "-"))
}
