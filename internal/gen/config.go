package gen

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config lists the definitions generated into one package.
//
//	package: smallint
//	naming: legacy
//	types:
//	  - {type: Bit, repr: uint8, min: 0, max: 1}
//	  - {type: Nibble, repr: int8, min: -8, max: 7, naming: sign}
type Config struct {
	Package string       `yaml:"package"`
	Naming  Naming       `yaml:"naming,omitempty"`
	Types   []Definition `yaml:"types"`
}

// LoadConfig reads a YAML config from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Types) == 0 {
		return nil, fmt.Errorf("parse config: no types declared")
	}

	seen := make(map[string]bool, len(cfg.Types))
	for _, d := range cfg.Types {
		if seen[d.Type] {
			return nil, fmt.Errorf("parse config: type %s declared twice", d.Type)
		}
		seen[d.Type] = true
	}
	return &cfg, nil
}
