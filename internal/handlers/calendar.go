package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	ics "github.com/arran4/golang-ical"
	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
	"github.com/campbellhoskins/chore-bot/internal/state"
)

type CalendarHandler struct {
	store           state.Store
	roster          models.Roster
	rotationService *services.RotationService
}

func NewCalendarHandler(store state.Store, roster models.Roster, rotationService *services.RotationService) *CalendarHandler {
	return &CalendarHandler{store: store, roster: roster, rotationService: rotationService}
}

// Feed serves the current week's assignments as an iCal calendar. Any live
// confirmation token authorizes the feed, so every member can subscribe
// with the link from their assignment SMS.
func (handler *CalendarHandler) Feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	appState, _, err := handler.store.Load(ctx)
	if errors.Is(err, state.ErrNotFound) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		slog.Error("loading state for calendar feed", "error", err)
		http.Error(w, "Error", http.StatusInternalServerError)
		return
	}

	historyService := services.NewHistoryService(&appState, handler.roster)
	if _, found := historyService.MemberIDForToken(token); !found {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId("-//chore-bot//EN")
	calendar.SetXWRCalName(handler.roster.Household.Name + " Chores")

	week := appState.CurrentWeek
	for _, assignment := range week.Assignments {
		member, chore, err := handler.rotationService.AssignmentDetails(assignment)
		if err != nil {
			slog.Warn("skipping unresolvable assignment in feed", "error", err)
			continue
		}

		uid := fmt.Sprintf("%s-%s@chore-bot", week.WeekOf.Format("20060102"), member.ID)
		event := calendar.AddEvent(uid)
		event.SetAllDayStartAt(week.WeekOf)
		event.SetAllDayEndAt(week.WeekOf.AddDate(0, 0, 7))
		event.SetSummary(fmt.Sprintf("%s: %s", member.Name, chore.Name))
		event.SetDescription(chore.Description)
		event.SetDtStampTime(assignment.AssignedAt)
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=chores.ics")
	if _, err := w.Write([]byte(calendar.Serialize())); err != nil {
		slog.Error("writing calendar feed", "error", err)
	}
}
