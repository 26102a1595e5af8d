package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
)

func archivedWeek(weekOf time.Time, rotationIndex int, assignments ...models.Assignment) models.WeekState {
	return models.WeekState{WeekOf: weekOf, RotationIndex: rotationIndex, Assignments: assignments}
}

func TestArchiveCurrentWeek_EmptyWeekIsNoop(t *testing.T) {
	state := models.NewEmptyState()
	service := services.NewHistoryService(&state, testRoster())

	service.ArchiveCurrentWeek()
	if len(state.History) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(state.History))
	}
}

func TestArchiveCurrentWeek_DeepCopy(t *testing.T) {
	state := testState(assignment("m1", "c1", "token-alice", time.Hour))
	service := services.NewHistoryService(&state, testRoster())

	service.ArchiveCurrentWeek()
	if len(state.History) != 1 {
		t.Fatalf("expected 1 archived week, got %d", len(state.History))
	}

	// Mutating the live week must not alter the archived copy.
	confirmedAt := time.Now().UTC()
	state.CurrentWeek.Assignments[0].ConfirmedAt = &confirmedAt
	state.CurrentWeek.Assignments[0].ChoreID = "mutated"

	archived := state.History[0].Assignments[0]
	if archived.ConfirmedAt != nil {
		t.Error("archived assignment gained a confirmation from the live week")
	}
	if archived.ChoreID != "c1" {
		t.Errorf("archived assignment chore changed to %s", archived.ChoreID)
	}
}

func TestArchiveCurrentWeek_Truncation(t *testing.T) {
	state := testState(assignment("m1", "c1", "token-0", time.Hour))
	service := services.NewHistoryService(&state, testRoster())

	for i := 0; i < 7; i++ {
		service.ArchiveCurrentWeek()
		state.CurrentWeek = models.WeekState{
			WeekOf:        state.CurrentWeek.WeekOf.AddDate(0, 0, 7),
			RotationIndex: (state.CurrentWeek.RotationIndex + 1) % 3,
			Assignments:   []models.Assignment{assignment("m1", "c1", fmt.Sprintf("token-%d", i+1), time.Hour)},
		}
	}

	if len(state.History) != 5 {
		t.Fatalf("expected history capped at 5 weeks, got %d", len(state.History))
	}
	// Most recent first: the last archived week leads.
	if !state.History[0].WeekOf.After(state.History[1].WeekOf) {
		t.Error("history is not ordered most-recent-first")
	}
}

func TestMemberHistory_OrderAndCap(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	state := testState(assignment("m1", "c1", "token-current", time.Hour))
	state.CurrentWeek.WeekOf = base

	for i := 1; i <= 5; i++ {
		weekOf := base.AddDate(0, 0, -7*i)
		state.History = append(state.History, archivedWeek(weekOf, i%3,
			confirmedAssignment("m1", "c2", fmt.Sprintf("old-%d", i), weekOf.Add(24*time.Hour)),
		))
	}

	service := services.NewHistoryService(&state, testRoster())
	entries := service.MemberHistory("m1")

	if len(entries) != 4 {
		t.Fatalf("expected 4 history entries, got %d", len(entries))
	}
	if !entries[0].WeekOf.Equal(base) {
		t.Errorf("expected current week first, got %s", entries[0].WeekOf)
	}
	for i := 1; i < len(entries); i++ {
		if !entries[i-1].WeekOf.After(entries[i].WeekOf) {
			t.Error("entries are not ordered most-recent-first")
		}
	}
	if entries[0].Confirmed {
		t.Error("current week entry should be pending")
	}
	if !entries[1].Confirmed {
		t.Error("archived entry should be confirmed")
	}
	if entries[0].ChoreName != "Kitchen" || entries[0].ChoreDescription != "Clean the kitchen" {
		t.Errorf("chore details not resolved: %+v", entries[0])
	}
}

func TestMemberHistory_SkipsWeeksWithoutAssignment(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	state := testState(assignment("m1", "c1", "token-current", time.Hour))
	state.CurrentWeek.WeekOf = base

	// A week where only Bob had an assignment must not consume a slot.
	state.History = append(state.History,
		archivedWeek(base.AddDate(0, 0, -7), 1, assignment("m2", "c2", "bob-only", time.Hour)),
		archivedWeek(base.AddDate(0, 0, -14), 2, confirmedAssignment("m1", "c3", "old", base.AddDate(0, 0, -13))),
	)

	service := services.NewHistoryService(&state, testRoster())
	entries := service.MemberHistory("m1")

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1].ChoreName != "Trash" {
		t.Errorf("expected the two-weeks-ago chore, got %s", entries[1].ChoreName)
	}
}

func TestMemberIDForToken_CurrentWeekOnly(t *testing.T) {
	state := testState(assignment("m1", "c1", "token-live", time.Hour))
	state.History = append(state.History,
		archivedWeek(time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC), 2,
			assignment("m2", "c2", "token-archived", time.Hour)))

	service := services.NewHistoryService(&state, testRoster())

	memberID, found := service.MemberIDForToken("token-live")
	if !found || memberID != "m1" {
		t.Fatalf("expected live token to resolve to m1, got %q found=%v", memberID, found)
	}
	if _, found := service.MemberIDForToken("token-archived"); found {
		t.Error("archived tokens must not resolve")
	}
}

func TestCompletionRate(t *testing.T) {
	state := testState(assignment("m1", "c1", "token-current", time.Hour))
	// Plenty of archived weeks: the completion scan is unbounded, unlike
	// the 4-week member history cap.
	base := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		weekOf := base.AddDate(0, 0, -7*i)
		state.History = append(state.History, archivedWeek(weekOf, i%3,
			confirmedAssignment("m1", "c2", fmt.Sprintf("t-%d", i), weekOf.Add(time.Hour))))
	}

	service := services.NewHistoryService(&state, testRoster())

	completed, total := service.CompletionRate("m1")
	if completed != 5 || total != 6 {
		t.Errorf("got completion %d/%d, want 5/6", completed, total)
	}

	completed, total = service.CompletionRate("m2")
	if completed != 0 || total != 0 {
		t.Errorf("got completion %d/%d for absent member, want 0/0", completed, total)
	}
}
