package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"complaintbox/internal/infrastructure/config"
	"complaintbox/internal/infrastructure/database"
	"complaintbox/internal/infrastructure/migration"
	"complaintbox/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, rolling back, and checking status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func initEnv() (*migration.GooseMigrator, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := filepath.Abs("./scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to get scripts path: %w", err)
	}

	return migration.NewGooseMigrator(scriptsPath, cfg.Database.Driver), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	migrator, err := initEnv()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	if err := migrator.Up(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	migrator, err := initEnv()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	if err := migrator.Down(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	migrator, err := initEnv()
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer database.Close()

	if err := migrator.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}
