// Package catalog supplies sample expressions for demonstrating the
// validator: a built-in set plus user-provided YAML catalogs. It has
// no effect on the engine's contract.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Sentinel errors
var (
	// ErrEmptyExpression indicates a catalog entry without an expression.
	ErrEmptyExpression = errors.New("catalog entry has empty expression")
	// ErrDuplicateName indicates two catalog entries sharing a name.
	ErrDuplicateName = errors.New("duplicate catalog entry name")
	// ErrNoSamples indicates a catalog file without any entries.
	ErrNoSamples = errors.New("catalog contains no samples")
)

// Sample is one demonstration expression together with the outcome it
// should produce.
type Sample struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
	WantValid  bool   `yaml:"valid"`
}

// Builtin returns the default sample set shipped with the tool.
func Builtin() []Sample {
	return []Sample{
		{Name: "precedence", Expression: "1+2*3", WantValid: true},
		{Name: "grouping", Expression: "(4 - 5) * (6 + 7)", WantValid: true},
		{Name: "negation", Expression: "-(3+2)*4", WantValid: true},
		{Name: "bare number", Expression: "42", WantValid: true},
		{Name: "missing operand", Expression: "3 + * 4", WantValid: false},
		{Name: "unclosed paren", Expression: "(1+2", WantValid: false},
	}
}

type catalogFile struct {
	Samples []Sample `yaml:"samples"`
}

// Load reads a YAML catalog of the form:
//
//	samples:
//	  - name: precedence
//	    expression: "1+2*3"
//	    valid: true
//
// Entries must have non-empty expressions and unique names; an entry
// without a name is named after its index.
func Load(path string) ([]Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) ([]Sample, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if len(file.Samples) == 0 {
		return nil, ErrNoSamples
	}

	seen := make(map[string]bool, len(file.Samples))

	for i := range file.Samples {
		sample := &file.Samples[i]

		if sample.Expression == "" {
			return nil, fmt.Errorf("%w: entry %d (%s)", ErrEmptyExpression, i, sample.Name)
		}

		if sample.Name == "" {
			sample.Name = fmt.Sprintf("sample-%d", i)
		}

		if seen[sample.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, sample.Name)
		}

		seen[sample.Name] = true
	}

	return file.Samples, nil
}
