package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
)

// Rotate archives the outgoing week, generates the next week's
// assignments, and texts each member their chore.
func (runner *Runner) Rotate(ctx context.Context) error {
	rotationService, err := services.NewRotationService(runner.roster)
	if err != nil {
		return fmt.Errorf("creating rotation service: %w", err)
	}

	appState, version, err := runner.loadState(ctx)
	if err != nil {
		return err
	}

	historyService := services.NewHistoryService(&appState, runner.roster)
	if len(appState.CurrentWeek.Assignments) > 0 {
		historyService.ArchiveCurrentWeek()
		slog.Info("archived previous week", "week_of", appState.CurrentWeek.WeekOf)
	}

	week, err := rotationService.NextWeek(appState.CurrentWeek.RotationIndex)
	if err != nil {
		return fmt.Errorf("creating new week: %w", err)
	}
	appState.CurrentWeek = week

	slog.Info("new week generated",
		"week_of", week.WeekOf,
		"rotation_index", week.RotationIndex,
		"assignments", len(week.Assignments))

	for _, assignment := range week.Assignments {
		member, chore, err := rotationService.AssignmentDetails(assignment)
		if err != nil {
			return fmt.Errorf("resolving assignment: %w", err)
		}

		sid, err := runner.messenger.SendAssignment(ctx,
			member.Phone, member.Name, chore.Name, chore.Description,
			runner.confirmURL(assignment.ConfirmationToken),
			runner.historyURL(assignment.ConfirmationToken))
		runner.recordDelivery(ctx, member.ID, models.DeliveryAssignment, sid, err)
		if err != nil {
			slog.Error("sending assignment sms", "member", member.Name, "error", err)
			continue
		}
		slog.Info("assignment sms sent", "member", member.Name, "chore", chore.Name, "sid", sid)
	}

	description := fmt.Sprintf("rotate: week of %s, index %d",
		week.WeekOf.Format("2006-01-02"), week.RotationIndex)
	if err := runner.store.Save(ctx, appState, version, description); err != nil {
		return fmt.Errorf("saving rotated state: %w", err)
	}
	return nil
}
