package jmx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atlanticdynamic/jmxbulk/internal/testplan"
)

// FromBytes decodes a plan from raw .jmx data.
func FromBytes(data []byte) (*testplan.Plan, error) {
	if len(data) == 0 {
		return nil, ErrNoData
	}
	return Decode(data)
}

// FromReader decodes a plan from an io.Reader.
func FromReader(reader io.Reader) (*testplan.Plan, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan data from reader: %w", err)
	}
	return FromBytes(data)
}

// FromFilePath decodes a plan from a file. Only the .jmx extension is
// supported.
func FromFilePath(filePath string) (*testplan.Plan, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("plan file does not exist: %s", filePath)
	}

	if ext := filepath.Ext(filePath); ext != ".jmx" {
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file '%s': %w", filePath, err)
	}
	return FromBytes(data)
}

// WriteFile encodes the plan and writes it to the given path.
func WriteFile(p *testplan.Plan, filePath string) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan file '%s': %w", filePath, err)
	}
	return nil
}
