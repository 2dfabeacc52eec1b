package cmakeext

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed setup.yaml
var setupYAML []byte

// Manifest is the static setup metadata compiled into the binary.
//
// It is the only source of extension declarations: nothing about the set of
// extensions can be changed at runtime.
type Manifest struct {
	Name            string      `yaml:"name"`
	Version         string      `yaml:"version"`
	Author          string      `yaml:"author"`
	AuthorEmail     string      `yaml:"author_email"`
	Description     string      `yaml:"description"`
	LongDescription string      `yaml:"long_description"`
	ZipSafe         bool        `yaml:"zip_safe"`
	ExtModules      []ExtModule `yaml:"ext_modules"`
}

// ExtModule declares one CMake extension.
type ExtModule struct {
	Name      string `yaml:"name"`
	SourceDir string `yaml:"sourcedir"`
}

// LoadManifest decodes the embedded setup.yaml.
func LoadManifest() (*Manifest, error) {
	return ParseManifest(setupYAML)
}

// ParseManifest decodes a setup manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse setup manifest: %w", err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("setup manifest has no name")
	}

	return &m, nil
}

// Extensions returns the declared extensions in order, with source
// directories resolved against the current working directory. An empty
// sourcedir means the current directory.
func (m *Manifest) Extensions() ([]Extension, error) {
	exts := make([]Extension, 0, len(m.ExtModules))
	for _, mod := range m.ExtModules {
		ext, err := NewExtension(mod.Name, mod.SourceDir)
		if err != nil {
			return nil, err
		}
		exts = append(exts, ext)
	}
	return exts, nil
}
