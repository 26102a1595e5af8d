// Package state persists the application's single state document. Each
// operation loads one snapshot, mutates it in memory, and writes it back;
// the version token makes the write a compare-and-swap so racing writers
// surface as ErrConflict instead of silently overwriting each other.
package state

import (
	"context"
	"errors"

	"github.com/campbellhoskins/chore-bot/internal/models"
)

var (
	// ErrNotFound means no state document exists yet. Callers substitute
	// models.NewEmptyState().
	ErrNotFound = errors.New("state document not found")
	// ErrConflict means the document changed since it was loaded. The
	// store never retries; retry policy belongs to the caller.
	ErrConflict = errors.New("state document version is stale")
)

// Version is the opaque optimistic-concurrency token returned by Load and
// checked by Save.
type Version string

type Store interface {
	Load(ctx context.Context) (models.AppState, Version, error)
	Save(ctx context.Context, state models.AppState, version Version, changeDescription string) error
}
