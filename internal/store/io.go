package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// privateFile is a single owner-only file under the store directory.
// Writes go through a sibling temp file and a rename so readers never see a
// partial file.
type privateFile struct {
	path string
}

func fileIn(dir, name string) privateFile {
	return privateFile{path: filepath.Join(dir, name)}
}

// bytes returns the file contents, or nil when the file does not exist.
func (f privateFile) bytes() ([]byte, error) {
	b, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, err
	}
	return b, nil
}

// decode unmarshals the file into out and reports whether it existed.
func (f privateFile) decode(out any) (bool, error) {
	b, err := f.bytes()
	if b == nil {
		return false, err
	}
	return true, json.Unmarshal(b, out)
}

func (f privateFile) encode(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return f.replace(b)
}

// replace writes b with mode 0600, creating the directory when missing.
func (f privateFile) replace(b []byte) (err error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o600); err != nil {
		return err
	}
	if _, err = tmp.Write(b); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

// remove deletes the file; a missing file is not an error.
func (f privateFile) remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
