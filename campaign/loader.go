package campaign

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Loader reads operator-supplied campaign datasets from YAML. It uses an
// afero.Fs so tests can run against an in-memory filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader on the given filesystem. Use afero.NewOsFs()
// for real filesystem operations, or afero.NewMemMapFs() for testing.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// NewOsLoader creates a Loader using the operating system filesystem.
func NewOsLoader() *Loader {
	return NewLoader(afero.NewOsFs())
}

// datasetFile is the YAML document shape: one or more brand datasets.
type datasetFile struct {
	Datasets []Dataset `yaml:"datasets"`
}

// LoadInto parses the dataset file at path and merges its brands into the
// store, overriding built-in datasets that share an alias. A missing path is
// not an error; the built-ins simply remain.
func (l *Loader) LoadInto(store *Store, path string) error {
	if path == "" {
		return nil
	}
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return fmt.Errorf("check campaign file: %w", err)
	}
	if !exists {
		return nil
	}

	raw, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return fmt.Errorf("read campaign file %s: %w", path, err)
	}

	var file datasetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse campaign file %s: %w", path, err)
	}

	for _, d := range file.Datasets {
		if d.Brand == "" {
			return fmt.Errorf("campaign file %s: dataset missing brand", path)
		}
		store.add(d)
	}
	return nil
}
