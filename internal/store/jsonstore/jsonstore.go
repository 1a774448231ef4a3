package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Makepad-fr/sharelist/internal/model"
)

// JSON-backed list documents: the editable source a share link is encoded from.
// Single file, human-readable, portable.

// DefaultFileName is used when no path is given.
const DefaultFileName = "list.json"

// ErrNotFound is returned by Load when the file does not exist.
var ErrNotFound = errors.New("list file not found")

func resolve(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, DefaultFileName), nil
}

func Load(path string) (model.ListDocument, error) {
	p, err := resolve(path)
	if err != nil {
		return model.ListDocument{}, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.ListDocument{}, fmt.Errorf("%w: %s", ErrNotFound, p)
		}
		return model.ListDocument{}, fmt.Errorf("read file: %w", err)
	}
	var doc model.ListDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return model.ListDocument{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return doc, nil
}

func Save(path string, doc model.ListDocument) error {
	p, err := resolve(path)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(p, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
