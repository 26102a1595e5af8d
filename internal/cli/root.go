// Package cli wires the four entry points: the web server and the three
// scheduled jobs. Schedulers (cron, CI workflows) invoke the job commands;
// members hit the server through the links in their texts.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/campbellhoskins/chore-bot/internal/config"
	"github.com/campbellhoskins/chore-bot/internal/database"
	"github.com/campbellhoskins/chore-bot/internal/jobs"
	"github.com/campbellhoskins/chore-bot/internal/messaging"
	"github.com/campbellhoskins/chore-bot/internal/models"
	"github.com/campbellhoskins/chore-bot/internal/repository"
	"github.com/campbellhoskins/chore-bot/internal/state"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "chore-bot",
	Short:         "Rotate household chores and track confirmations over SMS",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, rotateCmd, remindCmd, summaryCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// env holds everything a command needs after startup wiring.
type env struct {
	config config.Config
	roster models.Roster
	db     *sql.DB
	store  state.Store
}

func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	roster, err := config.LoadRoster(cfg.RosterPath)
	if err != nil {
		return nil, fmt.Errorf("loading roster: %w", err)
	}

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	var store state.Store
	switch cfg.StateBackend {
	case config.StateBackendFile:
		store = state.NewFileStore(cfg.StatePath)
	default:
		store = state.NewSQLiteStore(db)
	}

	return &env{config: cfg, roster: roster, db: db, store: store}, nil
}

func (environment *env) close() {
	environment.db.Close()
}

func (environment *env) newRunner() (*jobs.Runner, error) {
	if err := environment.config.RequireTwilio(); err != nil {
		return nil, err
	}

	messenger := messaging.NewTwilioMessenger(
		environment.config.TwilioAccountSID,
		environment.config.TwilioAuthToken,
		environment.config.TwilioFromNumber,
	)
	deliveries := repository.NewDeliveryRepository(environment.db)

	return jobs.NewRunner(
		environment.roster,
		environment.store,
		messenger,
		deliveries,
		environment.config.BaseURL,
	), nil
}
