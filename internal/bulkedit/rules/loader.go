package rules

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FromBytes parses and validates a TOML rule set.
func FromBytes(data []byte) (*RuleSet, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}

	rs := &RuleSet{}
	if err := toml.Unmarshal(data, rs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadRules, err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

// FromReader parses a rule set from an io.Reader.
func FromReader(reader io.Reader) (*RuleSet, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule data from reader: %w", err)
	}
	return FromBytes(data)
}

// FromFilePath loads a rule set from a file. Only TOML is supported.
func FromFilePath(filePath string) (*RuleSet, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("rule file does not exist: %s", filePath)
	}

	if ext := filepath.Ext(filePath); ext != ".toml" {
		return nil, fmt.Errorf("unsupported rule file extension: '%s'", ext)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file '%s': %w", filePath, err)
	}
	return FromBytes(data)
}
