package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
	"github.com/campbellhoskins/chore-bot/internal/state"
)

type HistoryHandler struct {
	store           state.Store
	roster          models.Roster
	rotationService *services.RotationService
}

func NewHistoryHandler(store state.Store, roster models.Roster, rotationService *services.RotationService) *HistoryHandler {
	return &HistoryHandler{store: store, roster: roster, rotationService: rotationService}
}

// History shows a member their recent weeks. Only a current-week token
// resolves; links from archived weeks have expired.
func (handler *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.URL.Query().Get("token")
	if token == "" {
		renderStatus(w, http.StatusBadRequest, statusPage{
			Title:   "Invalid Link",
			Message: "Invalid or missing token.",
		})
		return
	}

	appState, _, err := handler.store.Load(ctx)
	if errors.Is(err, state.ErrNotFound) {
		renderStatus(w, http.StatusNotFound, statusPage{
			Title:   "Not Found",
			Message: "Member not found. This link may have expired.",
		})
		return
	}
	if err != nil {
		slog.Error("loading state for history", "error", err)
		renderStatus(w, http.StatusInternalServerError, statusPage{
			Title:   "Error",
			Message: "An error occurred. Please try again later.",
		})
		return
	}

	historyService := services.NewHistoryService(&appState, handler.roster)

	memberID, found := historyService.MemberIDForToken(token)
	if !found {
		renderStatus(w, http.StatusNotFound, statusPage{
			Title:   "Not Found",
			Message: "Member not found. This link may have expired.",
		})
		return
	}

	member, memberFound := handler.rotationService.Member(memberID)
	if !memberFound {
		slog.Error("token resolved to unknown member", "member_id", memberID)
		renderStatus(w, http.StatusInternalServerError, statusPage{
			Title:   "Error",
			Message: "An error occurred. Please try again later.",
		})
		return
	}

	completed, total := historyService.CompletionRate(memberID)
	renderHistory(w, historyPage{
		MemberName: member.Name,
		Entries:    historyService.MemberHistory(memberID),
		Completed:  completed,
		Total:      total,
	})
}
