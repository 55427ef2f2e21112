package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the registry document at a fixed path. The
// path is injected at construction so tests can point it at a
// temporary directory.
type Store struct {
	path string
}

// NewStore creates a store for the registry file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the registry file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the registry document. A missing file is not an error and
// yields an empty registry; a malformed file fails with a corrupt
// error naming the path and the underlying parse failure. Load never
// writes.
func (s *Store) Load() (*Registry, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, NewCorruptError(s.path, "cannot read registry", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, NewCorruptError(s.path, "registry JSON is invalid", err)
	}

	reg := New()
	for key, value := range doc {
		if key == GroupsKey {
			if err := json.Unmarshal(value, &reg.Groups); err != nil {
				return nil, NewCorruptError(s.path, "registry has invalid "+GroupsKey+" section (expected an object of member lists)", err)
			}
			continue
		}

		// Top-level entries that are not {id,model} objects are
		// ignored, matching the documented file format.
		var probe struct {
			ID    *string `json:"id"`
			Model *string `json:"model"`
		}
		if err := json.Unmarshal(value, &probe); err != nil || probe.ID == nil || probe.Model == nil {
			continue
		}
		reg.Nicknames[key] = DeviceRef{ID: *probe.ID, Model: *probe.Model}
	}

	if reg.Groups == nil {
		reg.Groups = make(map[string][]Member)
	}
	for name, members := range reg.Groups {
		if members == nil {
			reg.Groups[name] = []Member{}
		}
	}

	return reg, nil
}

// Save serializes the full registry and atomically replaces the file:
// write to a sibling temp path, then rename over the target. Parent
// directories are created if absent. Nicknames serialize sorted by key
// so saved files diff cleanly.
func (s *Store) Save(reg *Registry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("cannot create registry directory: %w", err)
	}

	doc := make(map[string]any, len(reg.Nicknames)+1)
	for name, ref := range reg.Nicknames {
		if name == GroupsKey {
			continue
		}
		doc[name] = ref
	}
	doc[GroupsKey] = reg.Groups

	// json.MarshalIndent emits map keys in sorted order, which is the
	// deterministic layout we want on disk.
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode registry: %w", err)
	}
	data = append(data, '\n')

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("cannot write registry temp file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot replace registry file %s: %w", s.path, err)
	}

	return nil
}
