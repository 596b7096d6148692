package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type FileStorage struct {
	filepath string
}

func NewFileStorage(filepath string) *FileStorage {
	return &FileStorage{
		filepath: filepath,
	}
}

// Save writes atomically: the data lands in a temp file in the target
// directory and is renamed into place, so readers never observe a partial
// table.
func (s *FileStorage) Save(data []byte) error {
	dir := filepath.Dir(s.filepath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".gfpoly-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpName, s.filepath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	return nil
}

func (s *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(s.filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

func (s *FileStorage) Exists() bool {
	_, err := os.Stat(s.filepath)
	return err == nil
}

func (s *FileStorage) Delete() error {
	if !s.Exists() {
		return nil
	}

	return os.Remove(s.filepath)
}

// TableStorage persists generated field tables together with the modulus
// they came from, so a table file can be traced back to its field.
type TableStorage struct {
	storage *FileStorage
}

type StoredTables struct {
	Modulus string   `json:"modulus"`
	Degree  int      `json:"degree"`
	Exp     []uint64 `json:"exp"`
	Log     []uint64 `json:"log"`
}

func NewTableStorage(filepath string) *TableStorage {
	return &TableStorage{
		storage: NewFileStorage(filepath),
	}
}

func (s *TableStorage) SaveTables(tables *StoredTables) error {
	data, err := json.MarshalIndent(tables, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tables: %w", err)
	}

	return s.storage.Save(data)
}

func (s *TableStorage) LoadTables() (*StoredTables, error) {
	data, err := s.storage.Load()
	if err != nil {
		return nil, err
	}

	var tables StoredTables
	if err := json.Unmarshal(data, &tables); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tables: %w", err)
	}

	return &tables, nil
}

func (s *TableStorage) Exists() bool {
	return s.storage.Exists()
}

func (s *TableStorage) Delete() error {
	return s.storage.Delete()
}
