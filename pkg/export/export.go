// Package export serializes snapshots to files. Formats are keyed by file
// extension through a registry, so the writer picks the format from the
// target path alone.
//
// Basic usage:
//
//	f, err := export.Get(".json")
//	if err != nil {
//	    ...
//	}
//	var buf bytes.Buffer
//	if err := f.Format(&buf, snap); err != nil {
//	    ...
//	}
package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// Formatter renders one snapshot into a buffer.
type Formatter interface {
	Format(w *bytes.Buffer, snap *hwinfo.Snapshot) error
}

// FormatterFactory creates a new Formatter instance.
type FormatterFactory func() Formatter

// Registry maps file extensions to formatter factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]FormatterFactory
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]FormatterFactory)}
}

// Register adds a formatter for an extension, replacing any previous one.
// Extensions are normalized to lower case with a leading dot.
func (r *Registry) Register(ext string, factory FormatterFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[normalizeExt(ext)] = factory
}

// Get returns a new formatter for an extension.
func (r *Registry) Get(ext string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[normalizeExt(ext)]
	if !ok {
		return nil, fmt.Errorf("no formatter for extension %q", ext)
	}
	return factory(), nil
}

// Available returns the sorted registered extensions.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.factories))
	for ext := range r.factories {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter factory to the default registry.
func Register(ext string, factory FormatterFactory) {
	DefaultRegistry.Register(ext, factory)
}

// Get returns a new formatter instance from the default registry.
func Get(ext string) (Formatter, error) {
	return DefaultRegistry.Get(ext)
}

// Available returns all extensions from the default registry.
func Available() []string {
	return DefaultRegistry.Available()
}

// WriteFile renders the snapshot in the format implied by the path's
// extension and writes it. Unrecognized extensions fall back to JSON.
func WriteFile(path string, snap *hwinfo.Snapshot) error {
	f, err := Get(filepath.Ext(path))
	if err != nil {
		f, err = Get(".json")
		if err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := f.Format(&buf, snap); err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
