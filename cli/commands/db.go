package commands

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yeajay0001/dquest/cli/internal/ui"
	"github.com/yeajay0001/dquest/engine"
	"github.com/yeajay0001/dquest/internal/config"
	"github.com/yeajay0001/dquest/runtime"
)

// newDBCommand groups the commands that touch a live database.
func newDBCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(newDBPushCommand())
	cmd.AddCommand(newDBDropCommand())
	return cmd
}

// newDBPushCommand creates the tables for every model in the schema
// file, seeding initial data.
func newDBPushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "push [schema]",
		Short: "Create the tables for all models",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, db, err := openConnection(args)
			if err != nil {
				return err
			}
			defer db.Close()
			defer conn.Close()

			stop := ui.Spinner("creating tables")
			err = conn.CreateTables()
			stop(err)
			if err != nil {
				if last := conn.LastQuery(); last != "" {
					ui.PrintStatement(last)
				}
				return err
			}
			ui.PrintSuccess("tables created")
			return nil
		},
	}
}

// newDBDropCommand drops the tables of every model in the schema file.
func newDBDropCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "drop [schema]",
		Short: "Drop the tables of all models",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				ui.PrintWarning("dropping tables is destructive, pass --force to confirm")
				return fmt.Errorf("refusing to drop without --force")
			}

			conn, db, err := openConnection(args)
			if err != nil {
				return err
			}
			defer db.Close()
			defer conn.Close()

			stop := ui.Spinner("dropping tables")
			err = conn.DropTables()
			stop(err)
			if err != nil {
				return err
			}
			ui.PrintSuccess("tables dropped")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "confirm the destructive drop")
	return cmd
}

// openConnection loads the configuration, opens the physical database
// handle and binds every model from the schema file to a fresh
// connection.
func openConnection(args []string) (runtime.Connection, *sql.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return runtime.Connection{}, nil, err
	}

	metas, err := loadModels(args)
	if err != nil {
		ui.PrintError("%v", err)
		return runtime.Connection{}, nil, err
	}

	driver := engine.DriverName(cfg.Provider)
	if driver == "" {
		return runtime.Connection{}, nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
	}

	db, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return runtime.Connection{}, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		ui.PrintError("cannot reach database: %v", err)
		return runtime.Connection{}, nil, err
	}

	conn := runtime.NewConnection(runtime.WithEngine(engine.New(cfg.Provider)))
	if err := conn.Open(db); err != nil {
		db.Close()
		return runtime.Connection{}, nil, err
	}
	for _, meta := range metas {
		if err := conn.AddModel(meta); err != nil {
			conn.Close()
			db.Close()
			return runtime.Connection{}, nil, err
		}
	}
	return conn, db, nil
}
