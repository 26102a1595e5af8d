package state

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
)

// SQLiteStore keeps the state document as a single JSON row with an
// integer version counter. Save is one conditional statement, so the
// version check and the write are atomic.
type SQLiteStore struct {
	database *sql.DB
}

func NewSQLiteStore(database *sql.DB) *SQLiteStore {
	return &SQLiteStore{database: database}
}

func (store *SQLiteStore) Load(ctx context.Context) (models.AppState, Version, error) {
	var document string
	var version int64
	err := store.database.QueryRowContext(ctx,
		"SELECT document, version FROM app_state WHERE id = 1",
	).Scan(&document, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AppState{}, "", ErrNotFound
	}
	if err != nil {
		return models.AppState{}, "", fmt.Errorf("loading state document: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal([]byte(document), &state); err != nil {
		return models.AppState{}, "", fmt.Errorf("decoding state document: %w", err)
	}
	return state, Version(strconv.FormatInt(version, 10)), nil
}

func (store *SQLiteStore) Save(ctx context.Context, state models.AppState, version Version, changeDescription string) error {
	state.LastUpdated = time.Now().UTC()

	document, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding state document: %w", err)
	}

	// An empty version means the caller loaded nothing: create the row,
	// and treat a concurrently created row as a conflict.
	if version == "" {
		result, err := store.database.ExecContext(ctx,
			`INSERT INTO app_state (id, document, version, change_description, updated_at)
			VALUES (1, ?, 1, ?, ?)
			ON CONFLICT(id) DO NOTHING`,
			string(document), changeDescription, state.LastUpdated,
		)
		if err != nil {
			return fmt.Errorf("creating state document: %w", err)
		}
		return checkAffected(result)
	}

	loadedVersion, err := strconv.ParseInt(string(version), 10, 64)
	if err != nil {
		return fmt.Errorf("parsing version token %q: %w", version, err)
	}

	result, err := store.database.ExecContext(ctx,
		`UPDATE app_state
		SET document = ?, version = version + 1, change_description = ?, updated_at = ?
		WHERE id = 1 AND version = ?`,
		string(document), changeDescription, state.LastUpdated, loadedVersion,
	)
	if err != nil {
		return fmt.Errorf("saving state document: %w", err)
	}
	return checkAffected(result)
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if affected == 0 {
		return ErrConflict
	}
	return nil
}
