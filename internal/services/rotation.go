package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/token"
)

// ErrAssignmentIntegrity means an assignment references a member or chore
// that the roster does not contain. Assignments produced by this engine
// against its own roster can never trip it; seeing it means the stored
// document is corrupt.
var ErrAssignmentIntegrity = errors.New("assignment references unknown member or chore")

// RotationService computes the member-to-chore mapping for each week.
// The roster is immutable for the service's lifetime.
type RotationService struct {
	roster   models.Roster
	location *time.Location
}

func NewRotationService(roster models.Roster) (*RotationService, error) {
	if len(roster.Members) != len(roster.Chores) {
		return nil, fmt.Errorf("members (%d) and chores (%d) must have equal count",
			len(roster.Members), len(roster.Chores))
	}

	location := time.UTC
	if roster.Household.Timezone != "" {
		loaded, err := time.LoadLocation(roster.Household.Timezone)
		if err != nil {
			return nil, fmt.Errorf("loading household timezone: %w", err)
		}
		location = loaded
	}

	return &RotationService{roster: roster, location: location}, nil
}

// AssignmentsFor maps each member at roster position i to the chore at
// position (i + rotationIndex) mod N. The mapping is deterministic for a
// given roster and index; only tokens and timestamps vary per call.
func (service *RotationService) AssignmentsFor(rotationIndex int) ([]models.Assignment, error) {
	memberCount := len(service.roster.Members)
	assignedAt := time.Now().UTC()

	assignments := make([]models.Assignment, 0, memberCount)
	for i, member := range service.roster.Members {
		chore := service.roster.Chores[(i+rotationIndex)%memberCount]

		confirmationToken, err := token.Generate()
		if err != nil {
			return nil, fmt.Errorf("generating confirmation token: %w", err)
		}

		assignments = append(assignments, models.Assignment{
			MemberID:          member.ID,
			ChoreID:           chore.ID,
			AssignedAt:        assignedAt,
			ConfirmationToken: confirmationToken,
		})
	}
	return assignments, nil
}

// NextWeek produces the week that follows previousIndex. A negative
// previous index means no week has ever been generated, so the rotation
// starts at 0.
func (service *RotationService) NextWeek(previousIndex int) (models.WeekState, error) {
	newIndex := 0
	if previousIndex >= 0 {
		newIndex = (previousIndex + 1) % len(service.roster.Members)
	}

	assignments, err := service.AssignmentsFor(newIndex)
	if err != nil {
		return models.WeekState{}, err
	}

	return models.WeekState{
		WeekOf:        WeekStart(time.Now(), service.location),
		RotationIndex: newIndex,
		Assignments:   assignments,
	}, nil
}

// Member looks up a roster member by id.
func (service *RotationService) Member(memberID string) (models.Member, bool) {
	for _, member := range service.roster.Members {
		if member.ID == memberID {
			return member, true
		}
	}
	return models.Member{}, false
}

// Chore looks up a roster chore by id.
func (service *RotationService) Chore(choreID string) (models.Chore, bool) {
	for _, chore := range service.roster.Chores {
		if chore.ID == choreID {
			return chore, true
		}
	}
	return models.Chore{}, false
}

// AssignmentDetails resolves an assignment's member and chore against the
// roster. Returns ErrAssignmentIntegrity if either id does not resolve.
func (service *RotationService) AssignmentDetails(assignment models.Assignment) (models.Member, models.Chore, error) {
	member, memberFound := service.Member(assignment.MemberID)
	chore, choreFound := service.Chore(assignment.ChoreID)
	if !memberFound || !choreFound {
		return models.Member{}, models.Chore{}, fmt.Errorf("%w: member %q chore %q",
			ErrAssignmentIntegrity, assignment.MemberID, assignment.ChoreID)
	}
	return member, chore, nil
}

// Admins returns the roster's admin members in roster order.
func (service *RotationService) Admins() []models.Member {
	var admins []models.Member
	for _, member := range service.roster.Members {
		if member.IsAdmin {
			admins = append(admins, member)
		}
	}
	return admins
}

// WeekStart returns midnight on the Sunday beginning the week that
// contains t, in the given location.
func WeekStart(t time.Time, location *time.Location) time.Time {
	local := t.In(location)
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, location)
	return midnight.AddDate(0, 0, -int(local.Weekday()))
}
