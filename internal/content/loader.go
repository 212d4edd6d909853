package content

import (
	_ "embed"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

//go:embed portfolio.yaml
var embedded []byte

var (
	defaultOnce  sync.Once
	defaultModel *Model
	defaultErr   error
)

// Default returns the embedded portfolio, parsed on first use.
func Default() (*Model, error) {
	defaultOnce.Do(func() {
		defaultModel, defaultErr = Parse(embedded)
		if defaultErr != nil {
			defaultErr = errors.Wrap(defaultErr, "embedded portfolio")
		}
	})
	return defaultModel, defaultErr
}

// Load reads and validates a portfolio file.
func Load(path string) (m *Model, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file %s", path)
		return m, err
	}

	m, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "content file %s", path)
		return m, err
	}

	return m, err
}

// Parse decodes and validates portfolio YAML.
func Parse(data []byte) (*Model, error) {
	var m Model
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to parse portfolio yaml")
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required fields, link formats and that skill categories
// and coursework terms are not duplicated.
func Validate(m *Model) error {
	if err := validate.Struct(m); err != nil {
		return errors.Wrap(err, "invalid portfolio")
	}

	seen := make(map[string]struct{}, len(m.Skills))
	for _, c := range m.Skills {
		if _, dup := seen[c.Name]; dup {
			return errors.Errorf("invalid portfolio: duplicate skill category %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}

	terms := make(map[string]struct{}, len(m.Coursework))
	for _, t := range m.Coursework {
		if _, dup := terms[t.Name]; dup {
			return errors.Errorf("invalid portfolio: duplicate coursework term %q", t.Name)
		}
		terms[t.Name] = struct{}{}
	}

	return nil
}
