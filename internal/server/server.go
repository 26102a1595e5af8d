package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/campbellhoskins/chore-bot/internal/config"
	"github.com/campbellhoskins/chore-bot/internal/handlers"
	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/services"
	"github.com/campbellhoskins/chore-bot/internal/state"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router *chi.Mux
	config config.Config
}

func New(cfg config.Config, roster models.Roster, store state.Store) (*Server, error) {
	rotationService, err := services.NewRotationService(roster)
	if err != nil {
		return nil, fmt.Errorf("creating rotation service: %w", err)
	}

	confirmHandler := handlers.NewConfirmHandler(store, roster, rotationService)
	historyHandler := handlers.NewHistoryHandler(store, roster, rotationService)
	calendarHandler := handlers.NewCalendarHandler(store, roster, rotationService)

	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Get("/confirm", confirmHandler.Confirm)
	router.Get("/history", historyHandler.History)
	router.Get("/calendar.ics", calendarHandler.Feed)

	return &Server{router: router, config: cfg}, nil
}

func (server *Server) Handler() http.Handler {
	return server.router
}

func (server *Server) Start() error {
	address := ":" + server.config.Port
	slog.Info("starting server", "address", address)
	return http.ListenAndServe(address, server.router)
}
