package planpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Exporter stores a finished PDF under a file name.
type Exporter interface {
	Save(ctx context.Context, filename string, data []byte) error
}

// ExporterFunc adapts a function to the Exporter interface.
type ExporterFunc func(ctx context.Context, filename string, data []byte) error

func (f ExporterFunc) Save(ctx context.Context, filename string, data []byte) error {
	return f(ctx, filename, data)
}

// Save hands the artifact to exp. An empty filename means DefaultFilename.
// Failures wrap ErrExport; the artifact stays valid and Save can be retried.
func (a *Artifact) Save(ctx context.Context, exp Exporter, filename string) error {
	if exp == nil {
		return newRenderError("Save", ErrExport, ErrInvalidParam)
	}
	if filename == "" {
		filename = DefaultFilename
	}
	if err := exp.Save(ctx, filename, a.Bytes()); err != nil {
		return newRenderError("Save", ErrExport, err)
	}
	return nil
}

// WriteTo writes the PDF to w.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.data)
	return int64(n), err
}

// FileExporter writes artifacts into a directory. Only the base name of the
// requested file name is used, and the file appears atomically.
type FileExporter struct {
	Dir string
}

func (e FileExporter) Save(ctx context.Context, filename string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name := filepath.Base(filepath.Clean(filename))
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("%w: file name %q", ErrInvalidParam, filename)
	}
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, name)); err != nil {
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}
