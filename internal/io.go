package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MarshalFile writes o as indented JSON to path. The data is written to a
// temporary file in the same directory and renamed into place, so readers
// never see a partial file.
func MarshalFile(path string, o any) (outErr error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	defer func() {
		if outErr != nil {
			_ = os.Remove(f.Name())
		}
	}()

	defer Close(filepath.Base(path), f, &outErr)

	err = f.Chmod(0o644)
	if err != nil {
		return fmt.Errorf("failed to set file mode: %w", err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	err = enc.Encode(o)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	err = os.Rename(f.Name(), path)
	if err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	return nil
}

// UnmarshalFile reads the JSON file at path into o.
func UnmarshalFile(path string, o any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	err = json.Unmarshal(data, o)
	if err != nil {
		return fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	return nil
}

// Close a resource and joins the error to the outError if the close fails. Will
// ignore os.ErrClosed so it's safe to use together with "manual" closing of
// files.
func Close(name string, c io.Closer, outErr *error) {
	err := c.Close()
	if err != nil && !errors.Is(err, os.ErrClosed) {
		*outErr = errors.Join(*outErr, fmt.Errorf("close %s: %w", name, err))
	}
}
