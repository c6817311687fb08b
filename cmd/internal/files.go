package internal

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/saylorsolutions/cloak64/pkg/cloak"
)

const outputMode os.FileMode = 0644

// ReadInput reads the whole file at path.
// An empty file is returned as an empty slice, so cloak can decide whether that's acceptable.
func ReadInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(cloak.ErrReadFailure, "%s: %v", path, err)
	}
	return data, nil
}

// CheckOutput returns an error if path exists and may not be overwritten.
func CheckOutput(path string, noClobber bool) error {
	if !noClobber {
		return nil
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return errors.Wrapf(cloak.ErrWriteFailure, "%s already exists", path)
	case errors.Is(err, os.ErrNotExist):
		return nil
	default:
		return errors.Wrapf(cloak.ErrWriteFailure, "%s: %v", path, err)
	}
}

// WriteOutput writes data to a temporary file next to path, and then renames it into place.
// A failed write never leaves partial output at path.
func WriteOutput(path string, data []byte, noClobber bool) (err error) {
	if err := CheckOutput(path, noClobber); err != nil {
		return err
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return errors.Wrapf(cloak.ErrWriteFailure, "%s: %v", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Wrapf(cloak.ErrWriteFailure, "%s: %v", path, err)
	}
	if err := tmp.Chmod(outputMode); err != nil {
		return errors.Wrapf(cloak.ErrWriteFailure, "%s: %v", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(cloak.ErrWriteFailure, "%s: %v", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(cloak.ErrWriteFailure, "%s: %v", path, err)
	}
	return nil
}
