// Package jobs holds the scheduled entry points: weekly rotation, daily
// reminders, and the weekly admin summary. Each run loads one state
// snapshot, applies the core services, and saves with the loaded version
// token. A stale version aborts the run; the job never re-derives on top
// of data that changed underneath it.
package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/campbellhoskins/chore-bot/internal/messaging"
	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/repository"
	"github.com/campbellhoskins/chore-bot/internal/state"
)

type Runner struct {
	roster     models.Roster
	store      state.Store
	messenger  messaging.Messenger
	deliveries repository.DeliveryRepository
	baseURL    string
}

func NewRunner(
	roster models.Roster,
	store state.Store,
	messenger messaging.Messenger,
	deliveries repository.DeliveryRepository,
	baseURL string,
) *Runner {
	return &Runner{
		roster:     roster,
		store:      store,
		messenger:  messenger,
		deliveries: deliveries,
		baseURL:    baseURL,
	}
}

// loadState returns the stored document, or the canonical empty document
// when none exists yet.
func (runner *Runner) loadState(ctx context.Context) (models.AppState, state.Version, error) {
	appState, version, err := runner.store.Load(ctx)
	if errors.Is(err, state.ErrNotFound) {
		return models.NewEmptyState(), "", nil
	}
	if err != nil {
		return models.AppState{}, "", fmt.Errorf("loading state: %w", err)
	}
	return appState, version, nil
}

func (runner *Runner) confirmURL(confirmationToken string) string {
	return fmt.Sprintf("%s/confirm?token=%s", runner.baseURL, confirmationToken)
}

func (runner *Runner) historyURL(confirmationToken string) string {
	return fmt.Sprintf("%s/history?token=%s", runner.baseURL, confirmationToken)
}

// recordDelivery writes the audit row for one send attempt. Audit failures
// are logged and swallowed: they must not affect the batch.
func (runner *Runner) recordDelivery(ctx context.Context, memberID string, kind models.DeliveryKind, sid string, sendErr error) {
	delivery := models.Delivery{
		MemberID:    memberID,
		Kind:        kind,
		ProviderSID: sid,
	}
	if sendErr != nil {
		delivery.Error = sendErr.Error()
	}
	if _, err := runner.deliveries.Create(ctx, delivery); err != nil {
		slog.Error("recording delivery", "member", memberID, "kind", kind, "error", err)
	}
}
