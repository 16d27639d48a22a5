package holiday

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// yearFileName returns the conventional file name for a year's holidays.
func yearFileName(year int) string {
	return fmt.Sprintf("holidays-%d.json", year)
}

// ReadYearFile loads a pre-generated holiday file for a year. A missing
// file is (nil, nil): the caller moves on to the next source.
func ReadYearFile(dir string, year int) ([]Holiday, error) {
	data, err := os.ReadFile(filepath.Join(dir, yearFileName(year)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading holiday file for %d: %w", year, err)
	}

	var list []Holiday
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing holiday file for %d: %w", year, err)
	}
	return Normalize(list), nil
}

// WriteYearFile writes a year's holidays as indented JSON, creating dir
// if needed. Used by the generator.
func WriteYearFile(dir string, year int, list []Holiday) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	data, err := json.MarshalIndent(Normalize(list), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding holidays for %d: %w", year, err)
	}
	path := filepath.Join(dir, yearFileName(year))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
