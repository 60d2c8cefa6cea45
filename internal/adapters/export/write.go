package export

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File names written by Write.
const (
	FileName     = "scouting_data.json"
	MinFileName  = "scouting_data.min.json"
	GzipFileName = "scouting_data.json.gz"
)

// Write persists doc under dir as indented and minified JSON, plus a gzip of
// the minified form when compress is set. It returns the written paths.
func Write(dir string, doc *Document, compress bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	indented, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}
	minified, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWrite, err)
	}

	paths := []string{filepath.Join(dir, FileName), filepath.Join(dir, MinFileName)}
	if err := writeFile(paths[0], indented); err != nil {
		return nil, err
	}
	if err := writeFile(paths[1], minified); err != nil {
		return nil, err
	}
	if compress {
		gz := filepath.Join(dir, GzipFileName)
		if err := writeGzip(gz, minified); err != nil {
			return nil, err
		}
		paths = append(paths, gz)
	}
	return paths, nil
}

// writeFile writes through a temp file and rename so readers never see a
// partial document.
func writeFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func writeGzip(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := zw.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}
