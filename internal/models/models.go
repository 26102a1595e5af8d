package models

import "time"

// Member is a static roster entry. Phone numbers are E.164 (e.g. +15551234567).
type Member struct {
	ID      string `yaml:"id" json:"id"`
	Name    string `yaml:"name" json:"name"`
	Phone   string `yaml:"phone" json:"phone"`
	IsAdmin bool   `yaml:"admin" json:"isAdmin"`
}

type Chore struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Household holds rotation cadence settings. RotationDay is a weekday
// (0 = Sunday), RotationHour is 24-hour local time.
type Household struct {
	Name               string `yaml:"name" json:"name"`
	Timezone           string `yaml:"timezone" json:"timezone"`
	RotationDay        int    `yaml:"rotation_day" json:"rotationDay"`
	RotationHour       int    `yaml:"rotation_hour" json:"rotationHour"`
	ReminderHoursAfter int    `yaml:"reminder_hours_after" json:"reminderHoursAfter"`
}

// Roster is the full static configuration document: one household, its
// members, and its chores. Members and chores must have equal counts.
type Roster struct {
	Household Household `yaml:"household"`
	Members   []Member  `yaml:"members"`
	Chores    []Chore   `yaml:"chores"`
}

// Assignment is one member's chore obligation for one week. ConfirmedAt and
// ReminderSentAt are each set at most once, never reset.
type Assignment struct {
	MemberID          string     `json:"memberId"`
	ChoreID           string     `json:"choreId"`
	AssignedAt        time.Time  `json:"assignedAt"`
	ConfirmationToken string     `json:"confirmationToken"`
	ConfirmedAt       *time.Time `json:"confirmedAt"`
	ReminderSentAt    *time.Time `json:"reminderSentAt"`
}

type WeekState struct {
	WeekOf        time.Time    `json:"weekOf"`
	RotationIndex int          `json:"rotationIndex"`
	Assignments   []Assignment `json:"assignments"`
}

// Clone returns a full value copy of the week. Archived weeks must never
// alias the live week's assignments.
func (week WeekState) Clone() WeekState {
	cloned := week
	if week.Assignments == nil {
		return cloned
	}
	cloned.Assignments = make([]Assignment, len(week.Assignments))
	for i, assignment := range week.Assignments {
		if assignment.ConfirmedAt != nil {
			confirmedAt := *assignment.ConfirmedAt
			assignment.ConfirmedAt = &confirmedAt
		}
		if assignment.ReminderSentAt != nil {
			reminderSentAt := *assignment.ReminderSentAt
			assignment.ReminderSentAt = &reminderSentAt
		}
		cloned.Assignments[i] = assignment
	}
	return cloned
}

// AppState is the entire persisted document. History is ordered
// most-recent-first and bounded at archiving time.
type AppState struct {
	CurrentWeek WeekState   `json:"currentWeek"`
	History     []WeekState `json:"history"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

// NewEmptyState returns the canonical "no week yet" document, substituted by
// callers when the store has no document.
func NewEmptyState() AppState {
	return AppState{
		CurrentWeek: WeekState{RotationIndex: -1},
	}
}

// HistoryEntry is one week of a member's history, with chore details
// resolved against the roster at query time.
type HistoryEntry struct {
	WeekOf           time.Time
	ChoreName        string
	ChoreDescription string
	Confirmed        bool
	ConfirmedAt      *time.Time
}

type DeliveryKind string

const (
	DeliveryAssignment DeliveryKind = "assignment"
	DeliveryReminder   DeliveryKind = "reminder"
	DeliverySummary    DeliveryKind = "summary"
)

// Delivery is one SMS send attempt, recorded whether it succeeded or not.
type Delivery struct {
	ID          string
	MemberID    string
	Kind        DeliveryKind
	ProviderSID string
	Error       string
	CreatedAt   time.Time
}
