package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Supplier provides an override configuration, combined over the user
// configuration before defaults are applied.
type Supplier interface {
	Supply() (*MappingConfig, error)
}

// SupplierFunc adapts a function to the Supplier interface.
type SupplierFunc func() (*MappingConfig, error)

// Supply implements Supplier.
func (f SupplierFunc) Supply() (*MappingConfig, error) { return f() }

// YAMLSupplier reads an override configuration from a YAML file.
type YAMLSupplier struct {
	Path string
}

// Supply implements Supplier. An empty path yields an empty override; a
// missing file is an error.
func (s YAMLSupplier) Supply() (*MappingConfig, error) {
	if s.Path == "" {
		return &MappingConfig{}, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read mapping config: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML decodes a MappingConfig from YAML.
func ParseYAML(data []byte) (*MappingConfig, error) {
	var cfg MappingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse mapping config: %w", err)
	}
	return &cfg, nil
}

// EncodeYAML encodes the config as YAML, omitting unset options.
func (c *MappingConfig) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshal mapping config: %w", err)
	}
	return data, nil
}
