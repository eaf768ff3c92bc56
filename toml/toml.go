// Package toml loads CLI configuration files written in TOML.
package toml

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/pelletier/go-toml/v2"
)

// Loader is a kong.ConfigurationLoader for TOML files.
//
// Flags are looked up by name with dashes replaced by underscores, then by
// their exact name. Keys inside a table named after a command apply to that
// command's flags, e.g. [serve] addr = ":8080".
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}

	var f kong.ResolverFunc = func(ctx *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		if parent != nil && parent.Command != nil {
			if table, ok := values[parent.Command.Name].(map[string]any); ok {
				if v, ok := lookup(table, flag.Name); ok {
					return v, nil
				}
			}
		}
		if v, ok := lookup(values, flag.Name); ok {
			return v, nil
		}
		return nil, nil
	}
	return f, nil
}

func lookup(values map[string]any, name string) (any, bool) {
	if v, ok := values[strings.ReplaceAll(name, "-", "_")]; ok {
		return v, true
	}
	v, ok := values[name]
	return v, ok
}
