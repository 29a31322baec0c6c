// Package commands contains CLI command implementations for the application.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/allisson/oscli/internal/errors"
	sseDomain "github.com/allisson/oscli/internal/sse/domain"
	sseService "github.com/allisson/oscli/internal/sse/service"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// loadKeyMaterial reads a key file when path is set. An empty path means the
// object is not encrypted with a customer key.
func loadKeyMaterial(path string) (*sseDomain.KeyMaterial, error) {
	if path == "" {
		return nil, nil
	}
	material, err := sseService.LoadKeyFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load key file %s: %w", path, err)
	}
	return material, nil
}

// writeData prints v wrapped in a {"data": ...} envelope.
func writeData(w io.Writer, v any) error {
	return writeJSON(w, map[string]any{"data": v})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// parseMetadata decodes a JSON object of string values, e.g. '{"owner":"ops"}'.
func parseMetadata(raw string) (map[string]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	var metadata map[string]string
	if err := json.Unmarshal([]byte(raw), &metadata); err != nil {
		return nil, errors.Wrapf(errors.ErrUsage, "invalid --metadata JSON: %v", err)
	}
	return metadata, nil
}

// validateFormat rejects output formats other than text and json.
func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	default:
		return errors.Wrapf(errors.ErrUsage, "invalid format: %s (valid options: text, json)", format)
	}
}
