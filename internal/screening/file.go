package screening

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RecordFile is the YAML document holding one or more records and the
// variant they should be rendered with.
type RecordFile struct {
	Variant string   `yaml:"variant,omitempty"`
	Records []Record `yaml:"records"`
}

// LoadFromYAML reads a record file from disk.
func LoadFromYAML(path string) (*RecordFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading records file: %w", err)
	}

	var f RecordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing records file: %w", err)
	}
	if f.Variant != "" {
		if _, ok := variants[f.Variant]; !ok {
			return nil, fmt.Errorf("%w %q, valid variants: %v", ErrUnknownVariant, f.Variant, Variants())
		}
	}
	return &f, nil
}

// SaveToYAML writes the record file to disk.
func (f *RecordFile) SaveToYAML(path string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding records file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing records file: %w", err)
	}
	return nil
}

// Encode writes the record file as YAML to w.
func (f *RecordFile) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding records file: %w", err)
	}
	return enc.Close()
}
