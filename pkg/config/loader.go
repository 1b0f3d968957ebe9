package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-navfilter/pkg/filter"
	"github.com/goliatone/go-navfilter/pkg/navigator"
)

// Store holds the filter definitions read from one or more documents, in
// file then declaration order.
type Store struct {
	definitions []navigator.Definition
	byName      map[string]int
}

type documentFile struct {
	Filters []navigator.Definition `json:"filters" yaml:"filters"`
}

// LoadFS walks fsys and parses every JSON/YAML document it finds. A nil fsys
// yields an empty store.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{byName: make(map[string]int)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isConfigFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single document.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	store := &Store{byName: make(map[string]int)}
	if err := store.add(data, path); err != nil {
		return nil, err
	}
	return store, nil
}

// Definitions returns the definitions in load order.
func (s *Store) Definitions() []navigator.Definition {
	if s == nil {
		return nil
	}
	return append([]navigator.Definition(nil), s.definitions...)
}

// Definition looks up a definition by filter name.
func (s *Store) Definition(name string) (navigator.Definition, bool) {
	if s == nil {
		return navigator.Definition{}, false
	}
	idx, ok := s.byName[strings.TrimSpace(name)]
	if !ok {
		return navigator.Definition{}, false
	}
	return s.definitions[idx], true
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.definitions) == 0
}

// Build constructs every filter through reg and returns them aggregated.
func (s *Store) Build(reg *navigator.Registry, deps navigator.Deps) (*navigator.Aggregator, error) {
	agg := navigator.NewAggregator()
	for _, def := range s.Definitions() {
		if !reg.Has(def.Kind) {
			return nil, fmt.Errorf("config: filter %q: %w: %q", def.Name, navigator.ErrUnknownKind, def.Kind)
		}
		f, err := reg.Build(def, deps)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		agg.Add(f)
	}
	return agg, nil
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for idx, raw := range doc.Filters {
		def, err := normaliseDefinition(raw, idx, source)
		if err != nil {
			return err
		}
		if _, exists := s.byName[def.Name]; exists {
			return fmt.Errorf("config: duplicate filter %q (file %s)", def.Name, source)
		}
		s.byName[def.Name] = len(s.definitions)
		s.definitions = append(s.definitions, def)
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("config: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return documentFile{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	return doc, nil
}

func normaliseDefinition(raw navigator.Definition, idx int, source string) (navigator.Definition, error) {
	def := raw
	def.Name = strings.TrimSpace(raw.Name)
	def.Kind = strings.TrimSpace(raw.Kind)
	def.Label = strings.TrimSpace(raw.Label)
	def.Property = strings.TrimSpace(raw.Property)
	if def.Name == "" {
		return navigator.Definition{}, fmt.Errorf("config: file %s filter at index %d has an empty name", source, idx)
	}
	if def.Kind == "" {
		def.Kind = navigator.KindStatic
	}

	if len(raw.Choices) > 0 {
		seen := make(map[string]struct{}, len(raw.Choices))
		def.Choices = make([]filter.Item, 0, len(raw.Choices))
		for cidx, choice := range raw.Choices {
			choice.ID = strings.TrimSpace(choice.ID)
			choice.Text = strings.TrimSpace(choice.Text)
			if choice.ID == "" {
				return navigator.Definition{}, fmt.Errorf("config: file %s filter %q choice %d has an empty id", source, def.Name, cidx)
			}
			if _, dup := seen[choice.ID]; dup {
				return navigator.Definition{}, fmt.Errorf("config: file %s filter %q defines duplicate choice %q", source, def.Name, choice.ID)
			}
			seen[choice.ID] = struct{}{}
			def.Choices = append(def.Choices, choice)
		}
	}
	return def, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
