package services_test

import (
	"testing"
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
)

func testRoster() models.Roster {
	return models.Roster{
		Household: models.Household{
			Name:               "Test House",
			Timezone:           "America/Los_Angeles",
			RotationDay:        0,
			RotationHour:       17,
			ReminderHoursAfter: 24,
		},
		Members: []models.Member{
			{ID: "m1", Name: "Alice", Phone: "+1111", IsAdmin: true},
			{ID: "m2", Name: "Bob", Phone: "+2222"},
			{ID: "m3", Name: "Charlie", Phone: "+3333"},
		},
		Chores: []models.Chore{
			{ID: "c1", Name: "Kitchen", Description: "Clean the kitchen"},
			{ID: "c2", Name: "Bathroom", Description: "Clean the bathroom"},
			{ID: "c3", Name: "Trash", Description: "Take out the trash"},
		},
	}
}

func newRotationService(t *testing.T, roster models.Roster) *services.RotationService {
	t.Helper()
	service, err := services.NewRotationService(roster)
	if err != nil {
		t.Fatalf("creating rotation service: %v", err)
	}
	return service
}

func assignment(memberID, choreID, token string, assignedAgo time.Duration) models.Assignment {
	return models.Assignment{
		MemberID:          memberID,
		ChoreID:           choreID,
		AssignedAt:        time.Now().UTC().Add(-assignedAgo),
		ConfirmationToken: token,
	}
}

func confirmedAssignment(memberID, choreID, token string, confirmedAt time.Time) models.Assignment {
	a := assignment(memberID, choreID, token, 48*time.Hour)
	a.ConfirmedAt = &confirmedAt
	return a
}

func testState(assignments ...models.Assignment) models.AppState {
	return models.AppState{
		CurrentWeek: models.WeekState{
			WeekOf:        time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			RotationIndex: 0,
			Assignments:   assignments,
		},
	}
}
