package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed characters.yaml
var builtinYAML []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It is decoded on first use and
// shared by every caller afterwards.
func Default() *Catalog {
	defaultOnce.Do(func() {
		chars, err := decode(builtinYAML)
		if err != nil {
			panic(fmt.Sprintf("catalog: decoding built-in characters: %v", err))
		}
		c, err := New(chars)
		if err != nil {
			panic(fmt.Sprintf("catalog: built-in characters: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load builds a catalog from the YAML files under root matching any of the
// given patterns (doublestar syntax, so "heroes/**/*.yaml" works). Files are
// read in sorted path order and their records concatenated. With no patterns
// the built-in catalog is returned.
func Load(root string, patterns []string) (*Catalog, error) {
	if len(patterns) == 0 {
		return Default(), nil
	}
	if root == "" {
		root = "."
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(pattern))
		if err != nil {
			return nil, fmt.Errorf("matching catalog pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files match %v under %s", patterns, root)
	}
	sort.Strings(paths)

	var all []Character
	for _, p := range paths {
		data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
		if err != nil {
			return nil, fmt.Errorf("reading catalog file %s: %w", p, err)
		}
		chars, err := decode(data)
		if err != nil {
			return nil, fmt.Errorf("decoding catalog file %s: %w", p, err)
		}
		all = append(all, chars...)
	}

	return New(all)
}

func decode(data []byte) ([]Character, error) {
	var chars []Character
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&chars); err != nil {
		return nil, err
	}
	return chars, nil
}
