package cashflow

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirKV is a KV backed by a directory: each key is stored as <key>.json.
// Writes go through a temporary file and a rename, so a crash mid-write
// leaves the previous document intact.
type DirKV struct {
	dir string
}

// NewDirKV returns a KV rooted at dir. The directory is created on first
// write, not here.
func NewDirKV(dir string) *DirKV { return &DirKV{dir: dir} }

func (d *DirKV) path(key string) string {
	return filepath.Join(d.dir, key+".json")
}

// Get reads the stored value. The returned error wraps fs.ErrNotExist
// when the key has never been written.
func (d *DirKV) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", key, err)
	}
	return data, nil
}

// Set writes the value, replacing the whole document.
func (d *DirKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("cannot create store dir: %w", err)
	}
	tmp := d.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0644); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := os.Rename(tmp, d.path(key)); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	return nil
}
