package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by configuration types that can check themselves.
type Validator interface {
	Validate() error
}

// ErrConfigNotFound is returned when an explicitly requested file does not exist.
var ErrConfigNotFound = errors.New("config: configuration file not found")

// Load reads filename, expands environment variables, and decodes it into
// target. Fields absent from the file keep the value they had in target.
// If target implements Validator it is validated afterwards.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename) //nolint:gosec // path chosen by the user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, filename)
		}
		return fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	if v, ok := any(target).(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
	}

	return nil
}
