package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML verification profile from the given path.
func LoadFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile

	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyDefaults(&p)

	return &p, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(p *Profile) {
	if p.Version == "" {
		p.Version = "1"
	}
}

// Marshal serializes a Profile to YAML.
func Marshal(p *Profile) ([]byte, error) {
	return yaml.Marshal(p)
}
