package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campbellhoskins/chore-bot/internal/config"
	"github.com/campbellhoskins/chore-bot/internal/server"
	"github.com/campbellhoskins/chore-bot/internal/state"
	"github.com/campbellhoskins/chore-bot/internal/testutil"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	store := state.NewSQLiteStore(testutil.NewTestDatabase(t))
	if err := store.Save(context.Background(), testutil.State(), "", "seed"); err != nil {
		t.Fatalf("seeding state: %v", err)
	}

	srv, err := server.New(config.Config{Port: "0"}, testutil.Roster(), store)
	if err != nil {
		t.Fatalf("creating server: %v", err)
	}
	return srv
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)

	cases := []struct {
		path string
		want int
	}{
		{path: "/health", want: http.StatusOK},
		{path: "/confirm?token=token-m1", want: http.StatusOK},
		{path: "/history?token=token-m2", want: http.StatusOK},
		{path: "/calendar.ics?token=token-m3", want: http.StatusOK},
		{path: "/confirm?token=bogus", want: http.StatusBadRequest},
		{path: "/nope", want: http.StatusNotFound},
	}
	for _, c := range cases {
		recorder := httptest.NewRecorder()
		srv.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, c.path, nil))
		if recorder.Code != c.want {
			t.Errorf("GET %s: got %d, want %d", c.path, recorder.Code, c.want)
		}
	}
}
