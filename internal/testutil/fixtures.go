package testutil

import (
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
)

// Roster returns a three-member household with matching chores, one admin.
func Roster() models.Roster {
	return models.Roster{
		Household: models.Household{
			Name:               "Test House",
			Timezone:           "America/Los_Angeles",
			RotationDay:        0,
			RotationHour:       17,
			ReminderHoursAfter: 24,
		},
		Members: []models.Member{
			{ID: "m1", Name: "Alice", Phone: "+15550000001", IsAdmin: true},
			{ID: "m2", Name: "Bob", Phone: "+15550000002"},
			{ID: "m3", Name: "Charlie", Phone: "+15550000003"},
		},
		Chores: []models.Chore{
			{ID: "c1", Name: "Kitchen", Description: "Clean the kitchen"},
			{ID: "c2", Name: "Bathroom", Description: "Clean the bathroom"},
			{ID: "c3", Name: "Trash", Description: "Take out the trash"},
		},
	}
}

// State returns a document with one active week assigning each roster
// member its same-index chore, with predictable tokens token-m1..token-m3.
func State() models.AppState {
	weekOf := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	roster := Roster()

	assignments := make([]models.Assignment, len(roster.Members))
	for i, member := range roster.Members {
		assignments[i] = models.Assignment{
			MemberID:          member.ID,
			ChoreID:           roster.Chores[i].ID,
			AssignedAt:        weekOf.Add(time.Hour),
			ConfirmationToken: "token-" + member.ID,
		}
	}

	return models.AppState{
		CurrentWeek: models.WeekState{
			WeekOf:        weekOf,
			RotationIndex: 0,
			Assignments:   assignments,
		},
	}
}
