package schema

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/ribgsilva/notebook-api/persistence/v1/schema"
	"github.com/ribgsilva/notebook-api/platform/database"
	"github.com/ribgsilva/notebook-api/platform/env"
	"github.com/ribgsilva/notebook-api/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Command groups the schema commands
func Command(log *zap.SugaredLogger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Creates the schema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), log, func(ctx context.Context, db *sql.DB) error {
					cmd.Println("creating schema")
					if err := schema.Create(ctx, db, sys.Configs.Database.Driver); err != nil {
						return fmt.Errorf("failed to create schema: %w", err)
					}
					cmd.Println("created schema")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:     "drop",
			Aliases: []string{"delete"},
			Short:   "Drops the schema",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), log, func(ctx context.Context, db *sql.DB) error {
					cmd.Println("dropping schema")
					if err := schema.Drop(ctx, db); err != nil {
						return fmt.Errorf("failed to drop schema: %w", err)
					}
					cmd.Println("dropped schema")
					return nil
				})
			},
		},
	)
	return cmd
}

func initVars(log *zap.SugaredLogger) {
	sys.Configs.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", "mysql")
	sys.Configs.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/notebook?parseTime=true")
	sys.Configs.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	sys.Configs.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")

	// logger
	sys.R.Log = log
}

func withDatabase(ctx context.Context, log *zap.SugaredLogger, f func(ctx context.Context, db *sql.DB) error) error {
	initVars(log)
	if sys.Configs.Database.Driver == database.Memory {
		return fmt.Errorf("driver %s has no schema", database.Memory)
	}

	db, err := database.Open(sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}()
	sys.R.Database = db

	opCtx, cancel := context.WithTimeout(ctx, sys.Configs.Database.OperationTimeout)
	defer cancel()
	return f(opCtx, db)
}
