package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
	"github.com/campbellhoskins/chore-bot/internal/state"
)

type ConfirmHandler struct {
	store           state.Store
	roster          models.Roster
	rotationService *services.RotationService
}

func NewConfirmHandler(store state.Store, roster models.Roster, rotationService *services.RotationService) *ConfirmHandler {
	return &ConfirmHandler{store: store, roster: roster, rotationService: rotationService}
}

// Confirm handles the link members click after finishing a chore. The
// token in the query string is the sole credential.
func (handler *ConfirmHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.URL.Query().Get("token")
	if token == "" {
		renderStatus(w, http.StatusBadRequest, statusPage{
			Title:   "Invalid Link",
			Message: "This confirmation link is invalid or has expired.",
		})
		return
	}

	appState, version, err := handler.store.Load(ctx)
	if errors.Is(err, state.ErrNotFound) {
		renderStatus(w, http.StatusBadRequest, statusPage{
			Title:   "Invalid Link",
			Message: "This confirmation link is invalid or has expired.",
		})
		return
	}
	if err != nil {
		slog.Error("loading state for confirmation", "error", err)
		renderStatus(w, http.StatusInternalServerError, statusPage{
			Title:   "Error",
			Message: "An error occurred. Please try again later.",
		})
		return
	}

	confirmationService := services.NewConfirmationService(&appState, handler.roster)
	assignment, err := confirmationService.Confirm(token)
	switch {
	case errors.Is(err, services.ErrTokenNotFound):
		renderStatus(w, http.StatusBadRequest, statusPage{
			Title:   "Invalid Link",
			Message: "This confirmation link is invalid or has expired.",
		})
		return
	case errors.Is(err, services.ErrAlreadyConfirmed):
		renderStatus(w, http.StatusBadRequest, statusPage{
			Title:   "Confirmation Issue",
			Message: "This chore has already been confirmed.",
		})
		return
	case err != nil:
		slog.Error("confirming chore", "error", err)
		renderStatus(w, http.StatusInternalServerError, statusPage{
			Title:   "Error",
			Message: "An error occurred. Please try again later.",
		})
		return
	}

	description := fmt.Sprintf("confirm: %s completed chore", assignment.MemberID)
	if err := handler.store.Save(ctx, appState, version, description); err != nil {
		if errors.Is(err, state.ErrConflict) {
			renderStatus(w, http.StatusConflict, statusPage{
				Title:   "Please Try Again",
				Message: "Someone else updated the schedule at the same moment. Please click your link again.",
			})
			return
		}
		slog.Error("saving confirmed state", "error", err)
		renderStatus(w, http.StatusInternalServerError, statusPage{
			Title:   "Error",
			Message: "An error occurred. Please try again later.",
		})
		return
	}

	member, chore, err := handler.rotationService.AssignmentDetails(*assignment)
	if err != nil {
		// The confirmation is persisted; only the names are missing.
		slog.Error("resolving confirmed assignment", "error", err)
		renderStatus(w, http.StatusOK, statusPage{
			Title:   "Chore Confirmed!",
			Message: "Your completion has been recorded.",
			Success: true,
		})
		return
	}

	renderStatus(w, http.StatusOK, statusPage{
		Title:   "Chore Confirmed!",
		Message: fmt.Sprintf("Thank you, %s! Your completion of %q has been recorded.", member.Name, chore.Name),
		Success: true,
	})
}
