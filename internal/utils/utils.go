package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// TextFS reads and writes text files in a single encoding.
type TextFS struct {
	Fs  afero.Fs
	enc encoding.Encoding
}

// NewTextFS resolves name (e.g. "utf-8", "windows-1252", "utf-16le") and binds it to fsys.
func NewTextFS(fsys afero.Fs, name string) (*TextFS, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return &TextFS{Fs: fsys, enc: enc}, nil
}

// ReadFile returns the file content as UTF-8.
func (t *TextFS) ReadFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(t.Fs, path)
	if err != nil {
		return nil, err
	}
	out, err := t.enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// WriteFile encodes UTF-8 data and writes it, creating parent directories.
func (t *TextFS) WriteFile(path string, data []byte) error {
	out, err := t.enc.NewEncoder().Bytes(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := t.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return afero.WriteFile(t.Fs, path, out, os.FileMode(0644))
}

func (t *TextFS) Exists(path string) bool {
	ok, err := afero.Exists(t.Fs, path)
	return err == nil && ok
}
