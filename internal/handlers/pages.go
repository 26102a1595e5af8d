package handlers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/campbellhoskins/chore-bot/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type statusPage struct {
	Title   string
	Message string
	Success bool
}

type historyPage struct {
	MemberName string
	Entries    []models.HistoryEntry
	Completed  int
	Total      int
}

func renderStatus(w http.ResponseWriter, code int, page statusPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := pageTemplates.ExecuteTemplate(w, "status", page); err != nil {
		slog.Error("rendering status page", "error", err)
	}
}

func renderHistory(w http.ResponseWriter, page historyPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "history", page); err != nil {
		slog.Error("rendering history page", "error", err)
	}
}
