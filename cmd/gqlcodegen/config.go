package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/syssam/gqlcodegen/compiler/gen"
)

// envPrefix prefixes environment overrides, e.g. GQLCODEGEN_OUTPUTDIR or
// GQLCODEGEN_MAPPING__APINAMESUFFIX.
const envPrefix = "GQLCODEGEN_"

// Config is the configuration of a CLI run.
type Config struct {
	Schemas     []string          `koanf:"schemas"`
	OutputDir   string            `koanf:"outputDir"`
	Language    string            `koanf:"language"`
	TemplateDir string            `koanf:"templateDir"`
	Override    string            `koanf:"override"`
	Mapping     gen.MappingConfig `koanf:"mapping"`
}

// loadConfig layers defaults, the config file and the environment. A
// missing config file is only an error when required.
func loadConfig(path string, required bool) (*Config, *koanf.Koanf, error) {
	k := koanf.New(".")
	defaults := confmap.Provider(map[string]any{
		"outputDir": "generated",
		"language":  "java",
	}, ".")
	if err := k.Load(defaults, nil); err != nil {
		return nil, nil, fmt.Errorf("load defaults: %w", err)
	}
	if path != "" {
		switch _, err := os.Stat(path); {
		case err == nil:
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, nil, fmt.Errorf("load config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !required:
		default:
			return nil, nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	// Environment keys are upper case; match them to the keys already set.
	keys := k.Keys()
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
		for _, known := range keys {
			if strings.EqualFold(known, key) {
				return known
			}
		}
		return key
	}), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("load environment: %w", err)
	}
	cfg, err := unmarshal(k)
	return cfg, k, err
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// schemaFiles expands directories into the GraphQL files they contain,
// sorted by path. Files are kept as given.
func schemaFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		var found []string
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isSchemaFile(path) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", p, err)
		}
		slices.Sort(found)
		files = append(files, found...)
	}
	return files, nil
}

func isSchemaFile(path string) bool {
	switch filepath.Ext(path) {
	case ".graphql", ".graphqls", ".gql":
		return true
	}
	return false
}
