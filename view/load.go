package view

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a view from a YAML file. Settings missing from the file keep
// their Default values.
func Load(filename string) (View, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return View{}, fmt.Errorf("failed to read view: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML view on top of Default.
func Parse(data []byte) (View, error) {
	v := Default()
	if err := yaml.Unmarshal(data, &v); err != nil {
		return View{}, fmt.Errorf("failed to parse view: %w", err)
	}
	return v, nil
}

// Marshal encodes a view as YAML.
func Marshal(v View) ([]byte, error) {
	return yaml.Marshal(v)
}
