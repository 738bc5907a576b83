package spec

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a world spec from a YAML file.
func Load(path string) (*WorldSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}

	var spec WorldSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec YAML: %w", err)
	}

	return &spec, nil
}

// LoadProject loads a world spec from a project directory.
// It looks for world.yaml in the given directory.
func LoadProject(projectDir string) (*WorldSpec, error) {
	specPath := filepath.Join(projectDir, "world.yaml")
	return Load(specPath)
}
