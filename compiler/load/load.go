// Package load is the interface for loading value record descriptions from
// schema files, annotated Go source, or the field DSL.
package load

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GeneratedSuffix is the file suffix of generated record files. Loading a
// directory skips them.
const GeneratedSuffix = "_arith.go"

// Load loads the records found in the given paths. A path is either a schema
// file (.yaml, .yml, .json), a Go file, or a directory whose entries of those
// kinds are loaded non-recursively. Records are returned in path order.
func Load(paths ...string) ([]*Record, error) {
	if len(paths) == 0 {
		return nil, errors.New("load: no schema paths provided")
	}
	var records []*Record
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		if !info.IsDir() {
			rs, err := loadPath(path)
			if err != nil {
				return nil, fmt.Errorf("load: %w", err)
			}
			records = append(records, rs...)
			continue
		}
		rs, err := loadDir(path)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		records = append(records, rs...)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("load: no records found in %s", strings.Join(paths, ", "))
	}
	return records, nil
}

func loadDir(dir string) ([]*Record, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var records []*Record
	for _, e := range entries {
		if e.IsDir() || !IsSchemaFile(e.Name()) {
			continue
		}
		rs, err := loadPath(filepath.Join(dir, e.Name()))
		// Configuration or unrelated YAML files share the directory.
		if errors.Is(err, errNoRecords) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rs...)
	}
	return records, nil
}

func loadPath(path string) ([]*Record, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml", ".json":
		return LoadFile(path)
	case ".go":
		return LoadSource(path)
	default:
		return nil, fmt.Errorf("unsupported schema file %q", path)
	}
}

// IsSchemaFile reports if the file name is one the loader reads when it
// scans a directory. Tests and generated record files are excluded.
func IsSchemaFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml", ".json":
		return true
	case ".go":
		return !strings.HasSuffix(name, "_test.go") && !strings.HasSuffix(name, GeneratedSuffix)
	default:
		return false
	}
}
