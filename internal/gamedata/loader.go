package gamedata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads and unmarshals a YAML file. When dir is not empty and contains the
// file, the copy on disk wins; otherwise the embedded file is used.
func Load[T any](dir, filename string) (T, error) {
	var result T

	content, err := read(dir, filename)
	if err != nil {
		return result, err
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse YAML from %s: %w", filename, err)
	}

	return result, nil
}

func read(dir, filename string) ([]byte, error) {
	if dir != "" {
		content, err := os.ReadFile(filepath.Join(dir, filename))
		if err == nil {
			return content, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s from %s: %w", filename, dir, err)
		}
	}

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}
	return content, nil
}
