package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
)

// Summary texts the current week's status digest to every admin. Read
// only: nothing is saved.
func (runner *Runner) Summary(ctx context.Context) error {
	rotationService, err := services.NewRotationService(runner.roster)
	if err != nil {
		return fmt.Errorf("creating rotation service: %w", err)
	}

	appState, _, err := runner.loadState(ctx)
	if err != nil {
		return err
	}
	if len(appState.CurrentWeek.Assignments) == 0 {
		slog.Info("no assignments for current week, skipping summary")
		return nil
	}

	confirmationService := services.NewConfirmationService(&appState, runner.roster)
	summary := confirmationService.Summary()

	admins := rotationService.Admins()
	if len(admins) == 0 {
		slog.Warn("no admins configured, skipping summary")
		return nil
	}

	for _, admin := range admins {
		sid, err := runner.messenger.SendAdminSummary(ctx, admin.Phone, admin.Name, summary)
		runner.recordDelivery(ctx, admin.ID, models.DeliverySummary, sid, err)
		if err != nil {
			slog.Error("sending summary sms", "admin", admin.Name, "error", err)
			continue
		}
		slog.Info("summary sms sent", "admin", admin.Name, "sid", sid)
	}
	return nil
}
