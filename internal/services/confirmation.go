package services

import (
	"errors"
	"strings"
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
)

var (
	// ErrTokenNotFound means no current-week assignment matches the token.
	ErrTokenNotFound = errors.New("invalid or expired confirmation token")
	// ErrAlreadyConfirmed means the assignment was confirmed earlier.
	// Re-confirming is rejected, not merged.
	ErrAlreadyConfirmed = errors.New("chore already confirmed")
)

// ConfirmationService applies completion confirmations and reminder
// transitions to a loaded state document. It mutates the document in
// place; the caller persists it.
type ConfirmationService struct {
	state  *models.AppState
	roster models.Roster
}

func NewConfirmationService(state *models.AppState, roster models.Roster) *ConfirmationService {
	return &ConfirmationService{state: state, roster: roster}
}

// FindByToken scans the current week's assignments for the token. Archived
// weeks are never searched: their links are expired.
func (service *ConfirmationService) FindByToken(token string) *models.Assignment {
	for i := range service.state.CurrentWeek.Assignments {
		assignment := &service.state.CurrentWeek.Assignments[i]
		if assignment.ConfirmationToken == token {
			return assignment
		}
	}
	return nil
}

// Confirm records a completion. Returns ErrTokenNotFound for an unknown
// token and ErrAlreadyConfirmed (with the existing assignment) for a
// repeat confirmation; neither mutates state.
func (service *ConfirmationService) Confirm(token string) (*models.Assignment, error) {
	assignment := service.FindByToken(token)
	if assignment == nil {
		return nil, ErrTokenNotFound
	}
	if assignment.ConfirmedAt != nil {
		return assignment, ErrAlreadyConfirmed
	}

	confirmedAt := time.Now().UTC()
	assignment.ConfirmedAt = &confirmedAt
	return assignment, nil
}

// DueForReminder returns current-week assignments that are unconfirmed,
// not yet reminded, and older than the household's reminder threshold.
// Results are in roster order.
func (service *ConfirmationService) DueForReminder() []*models.Assignment {
	threshold := time.Duration(service.roster.Household.ReminderHoursAfter) * time.Hour

	var due []*models.Assignment
	for i := range service.state.CurrentWeek.Assignments {
		assignment := &service.state.CurrentWeek.Assignments[i]
		if assignment.ConfirmedAt != nil || assignment.ReminderSentAt != nil {
			continue
		}
		if time.Since(assignment.AssignedAt) >= threshold {
			due = append(due, assignment)
		}
	}
	return due
}

// MarkReminderSent stamps the assignment after a reminder was actually
// delivered. A failed delivery must not be marked.
func (service *ConfirmationService) MarkReminderSent(assignment *models.Assignment) {
	reminderSentAt := time.Now().UTC()
	assignment.ReminderSentAt = &reminderSentAt
}

// Summary renders one status line per assignment for the admin digest.
// Assignments whose member or chore no longer resolves are skipped.
func (service *ConfirmationService) Summary() string {
	var lines []string
	for _, assignment := range service.state.CurrentWeek.Assignments {
		member, memberFound := findMember(service.roster, assignment.MemberID)
		chore, choreFound := findChore(service.roster, assignment.ChoreID)
		if !memberFound || !choreFound {
			continue
		}

		status := "Pending"
		if assignment.ConfirmedAt != nil {
			status = "Completed"
		}
		lines = append(lines, member.Name+": "+chore.Name+" - "+status)
	}
	return strings.Join(lines, "\n")
}

// AllConfirmed reports whether every current-week assignment is confirmed.
// Vacuously true when there are no assignments.
func (service *ConfirmationService) AllConfirmed() bool {
	for _, assignment := range service.state.CurrentWeek.Assignments {
		if assignment.ConfirmedAt == nil {
			return false
		}
	}
	return true
}

func findMember(roster models.Roster, memberID string) (models.Member, bool) {
	for _, member := range roster.Members {
		if member.ID == memberID {
			return member, true
		}
	}
	return models.Member{}, false
}

func findChore(roster models.Roster, choreID string) (models.Chore, bool) {
	for _, chore := range roster.Chores {
		if chore.ID == choreID {
			return chore, true
		}
	}
	return models.Chore{}, false
}
