package emit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding for the collected pairs
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from a flag or config file
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("unknown output format %q (supported: json, yaml)", name)
	}
}

// Write encodes the pairs in the given format and writes them to w.
// Key ordering in the output is not part of the contract.
func Write(w io.Writer, pairs map[string]string, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if err := enc.Encode(pairs); err != nil {
			return fmt.Errorf("failed to encode pairs as JSON: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(pairs); err != nil {
			return fmt.Errorf("failed to encode pairs as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to finish YAML document: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

// WriteFile encodes the pairs and writes them to path, or to stdout when
// path is empty.
func WriteFile(path string, pairs map[string]string, format Format) error {
	if path == "" {
		return Write(os.Stdout, pairs, format)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if err := Write(f, pairs, format); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
