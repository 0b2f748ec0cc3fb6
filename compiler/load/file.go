package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// document is the layout of a YAML or JSON schema file.
//
//	package: vault
//	records:
//	  - name: Vault
//	    fields:
//	      - {name: sol, type: u64}
//	      - {name: tk1, type: "[2]uint64"}
type document struct {
	Package string    `yaml:"package"`
	Records []*Record `yaml:"records"`
}

// errNoRecords is returned for documents without a records key.
var errNoRecords = errors.New("load: no records in schema file")

// LoadFile loads the records of a YAML or JSON schema file. Records without
// an explicit package inherit the document package, and default to the name
// of the directory holding the file.
func LoadFile(path string) ([]*Record, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	records, err := decode(buf, dir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for i, r := range records {
		r.Pos = fmt.Sprintf("%s:records[%d]", path, i)
	}
	return records, nil
}

func decode(buf []byte, dir string) ([]*Record, error) {
	var doc document
	if err := yaml.NewDecoder(bytes.NewReader(buf)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoRecords
		}
		return nil, err
	}
	if len(doc.Records) == 0 {
		return nil, errNoRecords
	}
	pkg := doc.Package
	if pkg == "" {
		pkg = filepath.Base(dir)
	}
	for i, r := range doc.Records {
		if r == nil || r.Name == "" {
			return nil, fmt.Errorf("records[%d]: missing name", i)
		}
		for j, f := range r.Fields {
			if f == nil || f.Name == "" || f.Type == "" {
				return nil, fmt.Errorf("record %q: fields[%d]: name and type are required", r.Name, j)
			}
		}
		if r.Package == "" {
			r.Package = pkg
		}
		r.Dir = dir
	}
	return doc.Records, nil
}
