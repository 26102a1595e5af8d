package config

import (
	"fmt"
	"os"
	"time"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadRoster reads and validates the household roster document. The core
// never sees an invalid roster: validation failures here are fatal at
// startup.
func LoadRoster(path string) (models.Roster, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.Roster{}, fmt.Errorf("reading roster file: %w", err)
	}

	var roster models.Roster
	if err := yaml.Unmarshal(content, &roster); err != nil {
		return models.Roster{}, fmt.Errorf("parsing roster file: %w", err)
	}

	if err := ValidateRoster(roster); err != nil {
		return models.Roster{}, err
	}
	return roster, nil
}

func ValidateRoster(roster models.Roster) error {
	if len(roster.Members) == 0 {
		return fmt.Errorf("roster has no members")
	}
	if len(roster.Members) != len(roster.Chores) {
		return fmt.Errorf("members (%d) and chores (%d) must have equal count",
			len(roster.Members), len(roster.Chores))
	}

	hasAdmin := false
	memberIDs := make(map[string]bool, len(roster.Members))
	for _, member := range roster.Members {
		if member.ID == "" {
			return fmt.Errorf("member %q has no id", member.Name)
		}
		if memberIDs[member.ID] {
			return fmt.Errorf("duplicate member id %q", member.ID)
		}
		memberIDs[member.ID] = true
		if member.IsAdmin {
			hasAdmin = true
		}
	}
	if !hasAdmin {
		return fmt.Errorf("at least one member must be an admin")
	}

	choreIDs := make(map[string]bool, len(roster.Chores))
	for _, chore := range roster.Chores {
		if chore.ID == "" {
			return fmt.Errorf("chore %q has no id", chore.Name)
		}
		if choreIDs[chore.ID] {
			return fmt.Errorf("duplicate chore id %q", chore.ID)
		}
		choreIDs[chore.ID] = true
	}

	if roster.Household.Timezone != "" {
		if _, err := time.LoadLocation(roster.Household.Timezone); err != nil {
			return fmt.Errorf("invalid household timezone %q: %w", roster.Household.Timezone, err)
		}
	}
	if roster.Household.ReminderHoursAfter < 0 {
		return fmt.Errorf("reminder_hours_after must not be negative")
	}

	return nil
}
