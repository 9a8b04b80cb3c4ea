package scoring

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ScoreStorage loads and saves the run history.
type ScoreStorage interface {
	// LoadAll loads all score entries from the persistence layer.
	LoadAll() ([]ScoreHistoryEntry, error)
	// SaveAll saves a slice of score entries to the persistence layer, overwriting existing data.
	SaveAll(entries []ScoreHistoryEntry) error
}

// JSONFileStorage stores one JSON object per line.
type JSONFileStorage struct {
	path string
}

// NewJSONFileStorage returns a storage backed by path. An empty path selects
// ~/.config/go-jump/scores.json.
func NewJSONFileStorage(path string) (*JSONFileStorage, error) {
	if path != "" {
		return &JSONFileStorage{path: path}, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get user home directory: %w", err)
	}
	scoreFilePath := filepath.Join(homeDir, ".config", "go-jump", "scores.json")
	return &JSONFileStorage{path: scoreFilePath}, nil
}

// Path returns the file backing the storage.
func (jfs *JSONFileStorage) Path() string {
	return jfs.path
}

// LoadAll decodes every run in the file.
func (jfs *JSONFileStorage) LoadAll() ([]ScoreHistoryEntry, error) {
	file, err := os.Open(jfs.path)
	// A missing file is an empty history.
	if errors.Is(err, fs.ErrNotExist) {
		return []ScoreHistoryEntry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error opening scores file for reading: %w", err)
	}
	defer file.Close()

	entries := make([]ScoreHistoryEntry, 0)
	decoder := json.NewDecoder(bufio.NewReader(file))
	for {
		var entry ScoreHistoryEntry
		err := decoder.Decode(&entry)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding JSON entry in %s: %w", jfs.path, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// SaveAll replaces the file with entries. It writes a sibling temp file and
// renames it so a crash never leaves a half-written history.
func (jfs *JSONFileStorage) SaveAll(entries []ScoreHistoryEntry) error {
	dir := filepath.Dir(jfs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating scores directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.json")
	if err != nil {
		return fmt.Errorf("error opening scores file for writing: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := bufio.NewWriter(tmp)
	encoder := json.NewEncoder(writer)
	for _, entry := range entries {
		if err := encoder.Encode(entry); err != nil {
			tmp.Close()
			return fmt.Errorf("error encoding JSON entry: %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing scores file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error closing scores file: %w", err)
	}
	if err := os.Rename(tmp.Name(), jfs.path); err != nil {
		return fmt.Errorf("error replacing scores file: %w", err)
	}
	return nil
}
