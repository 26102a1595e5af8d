package cli

import (
	"log/slog"

	"github.com/campbellhoskins/chore-bot/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the confirmation and history web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		environment, err := setup()
		if err != nil {
			return err
		}
		defer environment.close()

		srv, err := server.New(environment.config, environment.roster, environment.store)
		if err != nil {
			return err
		}
		return srv.Start()
	},
}

var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Archive the outgoing week, assign the new week, and text members",
	RunE: func(cmd *cobra.Command, args []string) error {
		environment, err := setup()
		if err != nil {
			return err
		}
		defer environment.close()

		slog.Info("starting weekly rotation",
			"household", environment.roster.Household.Name,
			"members", len(environment.roster.Members),
			"chores", len(environment.roster.Chores))

		runner, err := environment.newRunner()
		if err != nil {
			return err
		}
		if err := runner.Rotate(cmd.Context()); err != nil {
			return err
		}
		slog.Info("weekly rotation complete")
		return nil
	},
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Text reminders for overdue unconfirmed chores",
	RunE: func(cmd *cobra.Command, args []string) error {
		environment, err := setup()
		if err != nil {
			return err
		}
		defer environment.close()

		runner, err := environment.newRunner()
		if err != nil {
			return err
		}
		if err := runner.Remind(cmd.Context()); err != nil {
			return err
		}
		slog.Info("reminder check complete")
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Text the weekly status digest to admins",
	RunE: func(cmd *cobra.Command, args []string) error {
		environment, err := setup()
		if err != nil {
			return err
		}
		defer environment.close()

		runner, err := environment.newRunner()
		if err != nil {
			return err
		}
		if err := runner.Summary(cmd.Context()); err != nil {
			return err
		}
		slog.Info("weekly summary complete")
		return nil
	},
}
