package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// FileStore keeps the high score as a single decimal integer in a text file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (fs *FileStore) Path() string {
	return fs.path
}

// Load returns the stored high score. Missing, unreadable or corrupt data
// reads as 0.
func (fs *FileStore) Load() int {
	score, err := fs.read()
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("highscore: %v", err)
		}
		return 0
	}
	return score
}

// Save writes score. Failures are logged and otherwise ignored.
func (fs *FileStore) Save(score int) {
	if err := fs.write(score); err != nil {
		log.Printf("highscore: %v", err)
	}
}

func (fs *FileStore) read() (int, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", fs.path, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("parse %s: negative score %d", fs.path, score)
	}
	return score, nil
}

func (fs *FileStore) write(score int) error {
	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(fs.path, []byte(strconv.Itoa(score)), 0644); err != nil {
		return fmt.Errorf("write %s: %w", fs.path, err)
	}
	return nil
}

// MemoryStore is an in-process store for tests and throwaway sessions.
type MemoryStore struct {
	Score int
	Saves int
}

func (ms *MemoryStore) Load() int {
	return ms.Score
}

func (ms *MemoryStore) Save(score int) {
	ms.Score = score
	ms.Saves++
}
