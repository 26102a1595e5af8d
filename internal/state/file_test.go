package state_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/campbellhoskins/chore-bot/internal/state"
	"github.com/campbellhoskins/chore-bot/internal/testutil"
)

func TestFileStore_LoadNotFound(t *testing.T) {
	store := state.NewFileStore(filepath.Join(t.TempDir(), "state.json"))

	_, _, err := store.Load(context.Background())
	if !errors.Is(err, state.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := state.NewFileStore(filepath.Join(t.TempDir(), "data", "state.json"))
	ctx := context.Background()

	if err := store.Save(ctx, testutil.State(), "", "initial week"); err != nil {
		t.Fatalf("saving: %v", err)
	}

	loaded, _, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if len(loaded.CurrentWeek.Assignments) != 3 {
		t.Fatalf("expected 3 assignments, got %d", len(loaded.CurrentWeek.Assignments))
	}
	if loaded.CurrentWeek.Assignments[2].ConfirmationToken != "token-m3" {
		t.Errorf("token not preserved: %s", loaded.CurrentWeek.Assignments[2].ConfirmationToken)
	}
}

func TestFileStore_OverwritesUnconditionally(t *testing.T) {
	store := state.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	if err := store.Save(ctx, testutil.State(), "", "first"); err != nil {
		t.Fatalf("first save: %v", err)
	}

	updated := testutil.State()
	updated.CurrentWeek.RotationIndex = 2
	// Any version token is accepted: the file backend does not version.
	if err := store.Save(ctx, updated, "stale-version", "second"); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if loaded.CurrentWeek.RotationIndex != 2 {
		t.Errorf("expected rotation index 2 after overwrite, got %d", loaded.CurrentWeek.RotationIndex)
	}
}
