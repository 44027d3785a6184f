package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-doctor-directory/internal/delivery/dto"
)

// WriteBatch writes the scraped records to the batch artifact consumed by
// the importer. Intermediate directories are created automatically.
func WriteBatch(path string, doctors []dto.CreateDoctorRequest) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("batch: create output dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(doctors, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal records: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write %q: %w", path, err)
	}

	return nil
}

// ReadBatch loads a batch artifact back into memory.
func ReadBatch(path string) ([]dto.CreateDoctorRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %q: %w", path, err)
	}

	var doctors []dto.CreateDoctorRequest
	if err := json.Unmarshal(data, &doctors); err != nil {
		return nil, fmt.Errorf("batch: parse %q: %w", path, err)
	}

	return doctors, nil
}
