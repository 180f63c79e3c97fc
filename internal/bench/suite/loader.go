package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite *TestSuite
	Path  string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Path = path
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	if s.Runs.Warmup < 0 || s.Runs.Iterations < 0 {
		return nil, fmt.Errorf("runs must not be negative")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		switch {
		case c.Expect != "" && c.ExpectsError():
			return nil, fmt.Errorf("case %q sets both expect and error", c.ID)
		case c.Expect == "" && !c.ExpectsError():
			return nil, fmt.Errorf("case %q sets neither expect nor error", c.ID)
		case c.ExpectsError() && !knownKinds[c.Error]:
			return nil, fmt.Errorf("case %q has unknown error kind %q", c.ID, c.Error)
		}
	}

	return &LoadedSuite{Suite: &s}, nil
}
