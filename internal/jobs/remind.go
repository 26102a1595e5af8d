package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
)

// Remind texts every member whose assignment is past the household's
// reminder threshold with no confirmation and no prior reminder. An
// assignment is only marked reminded after its SMS actually went out.
func (runner *Runner) Remind(ctx context.Context) error {
	rotationService, err := services.NewRotationService(runner.roster)
	if err != nil {
		return fmt.Errorf("creating rotation service: %w", err)
	}

	appState, version, err := runner.loadState(ctx)
	if err != nil {
		return err
	}
	if len(appState.CurrentWeek.Assignments) == 0 {
		slog.Info("no assignments for current week, skipping reminders")
		return nil
	}

	confirmationService := services.NewConfirmationService(&appState, runner.roster)
	due := confirmationService.DueForReminder()
	if len(due) == 0 {
		slog.Info("no reminders needed")
		return nil
	}
	slog.Info("assignments needing reminders", "count", len(due))

	sent := 0
	for _, assignment := range due {
		member, chore, err := rotationService.AssignmentDetails(*assignment)
		if err != nil {
			return fmt.Errorf("resolving assignment: %w", err)
		}

		sid, err := runner.messenger.SendReminder(ctx,
			member.Phone, member.Name, chore.Name,
			runner.confirmURL(assignment.ConfirmationToken))
		runner.recordDelivery(ctx, member.ID, models.DeliveryReminder, sid, err)
		if err != nil {
			slog.Error("sending reminder sms", "member", member.Name, "error", err)
			continue
		}

		confirmationService.MarkReminderSent(assignment)
		sent++
		slog.Info("reminder sms sent", "member", member.Name, "chore", chore.Name, "sid", sid)
	}

	if sent == 0 {
		return nil
	}

	description := fmt.Sprintf("remind: %d reminder(s) sent", sent)
	if err := runner.store.Save(ctx, appState, version, description); err != nil {
		return fmt.Errorf("saving reminded state: %w", err)
	}
	return nil
}
