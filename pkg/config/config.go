// Package config loads YAML files with environment variable expansion.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by targets that can check themselves after
// decoding.
type Validator interface {
	Validate() error
}

// Load reads filename, expands ${VAR} references, decodes it into target
// and runs target's Validate method when it has one.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return Decode(data, target)
}

// Decode is Load for data already in memory.
func Decode[T any](data []byte, target *T) error {
	return decode([]byte(os.ExpandEnv(string(data))), target)
}

// LoadRaw is Load without environment expansion, for data files whose
// text may legitimately contain "$".
func LoadRaw[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return decode(data, target)
}

func decode[T any](data []byte, target *T) error {
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse yaml: %w", err)
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}
	return nil
}

// LoadOptional behaves like Load but leaves target untouched (apart from
// validation) when filename does not exist.
func LoadOptional[T any](filename string, target *T) error {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		if validator, ok := any(target).(Validator); ok {
			return validator.Validate()
		}
		return nil
	}
	return Load(filename, target)
}
