package gen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// WriterMetrics tracks generation output.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
}

// writeFile renders the file, formats it with goimports and writes it to
// dir/filename. On a formatting failure the unformatted output is kept
// next to the target with an .error suffix for debugging.
func (g *JenniferGenerator) writeFile(f *jen.File, dir, filename string) error {
	path := filepath.Join(dir, filename)
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError("render", path, "", err)
	}
	formatted, err := imports.Process(path, buf.Bytes(), nil)
	if err != nil {
		// Errors intentionally ignored as we're already in error state.
		debugPath := path + ".error"
		_ = os.MkdirAll(dir, 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return NewGenerationError("format", path, "unformatted written to "+debugPath, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return NewGenerationError("write", path, "create directory", err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return NewGenerationError("write", path, "", err)
	}
	g.mu.Lock()
	g.written = append(g.written, path)
	g.metrics.FilesGenerated++
	g.metrics.TotalBytes += int64(len(formatted))
	g.mu.Unlock()
	return nil
}
