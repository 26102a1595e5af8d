package services

import (
	"github.com/campbellhoskins/chore-bot/internal/models"
)

const (
	// maxArchivedWeeks bounds the trailing log kept in the state document.
	maxArchivedWeeks = 5
	// memberHistoryWeeks bounds the per-member history query. Independent
	// of the storage bound above.
	memberHistoryWeeks = 4
)

// HistoryService snapshots completed weeks into a bounded trailing log and
// answers per-member historical queries.
type HistoryService struct {
	state  *models.AppState
	roster models.Roster
}

func NewHistoryService(state *models.AppState, roster models.Roster) *HistoryService {
	return &HistoryService{state: state, roster: roster}
}

// ArchiveCurrentWeek prepends a value copy of the current week to history
// and truncates history to the retention bound. A current week with no
// assignments is the "no week yet" sentinel and is not archived.
func (service *HistoryService) ArchiveCurrentWeek() {
	if len(service.state.CurrentWeek.Assignments) == 0 {
		return
	}

	archived := service.state.CurrentWeek.Clone()
	service.state.History = append([]models.WeekState{archived}, service.state.History...)
	if len(service.state.History) > maxArchivedWeeks {
		service.state.History = service.state.History[:maxArchivedWeeks]
	}
}

// MemberHistory returns up to four weeks of the member's assignments,
// current week first, then most-recent-archived first. Weeks where the
// member has no assignment, or whose chore no longer resolves, are skipped
// without consuming a slot.
func (service *HistoryService) MemberHistory(memberID string) []models.HistoryEntry {
	var entries []models.HistoryEntry

	weeks := append([]models.WeekState{service.state.CurrentWeek}, service.state.History...)
	for _, week := range weeks {
		if len(entries) == memberHistoryWeeks {
			break
		}

		assignment, found := assignmentForMember(week, memberID)
		if !found {
			continue
		}
		chore, choreFound := findChore(service.roster, assignment.ChoreID)
		if !choreFound {
			continue
		}

		entries = append(entries, models.HistoryEntry{
			WeekOf:           week.WeekOf,
			ChoreName:        chore.Name,
			ChoreDescription: chore.Description,
			Confirmed:        assignment.ConfirmedAt != nil,
			ConfirmedAt:      assignment.ConfirmedAt,
		})
	}
	return entries
}

// MemberIDForToken resolves a confirmation token to its member, looking
// only at the current week. Tokens in archived weeks are intentionally
// unresolvable: those links have expired.
func (service *HistoryService) MemberIDForToken(token string) (string, bool) {
	for _, assignment := range service.state.CurrentWeek.Assignments {
		if assignment.ConfirmationToken == token {
			return assignment.MemberID, true
		}
	}
	return "", false
}

// CompletionRate counts the member's confirmed and total assignments
// across the current week and all retained history.
func (service *HistoryService) CompletionRate(memberID string) (completed, total int) {
	weeks := append([]models.WeekState{service.state.CurrentWeek}, service.state.History...)
	for _, week := range weeks {
		assignment, found := assignmentForMember(week, memberID)
		if !found {
			continue
		}
		total++
		if assignment.ConfirmedAt != nil {
			completed++
		}
	}
	return completed, total
}

func assignmentForMember(week models.WeekState, memberID string) (models.Assignment, bool) {
	for _, assignment := range week.Assignments {
		if assignment.MemberID == memberID {
			return assignment, true
		}
	}
	return models.Assignment{}, false
}
