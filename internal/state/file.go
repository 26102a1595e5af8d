package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
)

// fileVersion is the constant token handed out by FileStore. The file
// backend has no real versioning: saves overwrite unconditionally.
const fileVersion = Version("file")

// FileStore keeps the state document in a single JSON file. Suitable for
// single-writer setups; use SQLiteStore when confirmations and scheduled
// jobs can race.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (store *FileStore) Load(ctx context.Context) (models.AppState, Version, error) {
	content, err := os.ReadFile(store.path)
	if os.IsNotExist(err) {
		return models.AppState{}, "", ErrNotFound
	}
	if err != nil {
		return models.AppState{}, "", fmt.Errorf("reading state file: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal(content, &state); err != nil {
		return models.AppState{}, "", fmt.Errorf("decoding state file: %w", err)
	}
	return state, fileVersion, nil
}

func (store *FileStore) Save(ctx context.Context, state models.AppState, version Version, changeDescription string) error {
	state.LastUpdated = time.Now().UTC()

	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(store.path), 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	if err := os.WriteFile(store.path, content, 0644); err != nil {
		return fmt.Errorf("writing state file: %w", err)
	}
	return nil
}
