package migration

import (
	"fmt"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"complaintbox/internal/shared/logger"
)

// GooseMigrator runs SQL migrations with goose. MySQL and sqlite need
// different DDL, so each driver has its own script directory under the
// scripts root and both the directory and the goose dialect follow the
// configured driver.
type GooseMigrator struct {
	scriptsPath string
	dialect     string
	logger      logger.Interface
}

func NewGooseMigrator(scriptsRoot, driver string) *GooseMigrator {
	dialect, dir := "mysql", "mysql"
	if driver == "sqlite" {
		dialect, dir = "sqlite3", "sqlite"
	}
	return &GooseMigrator{
		scriptsPath: filepath.Join(scriptsRoot, dir),
		dialect:     dialect,
		logger:      logger.NewLogger().With("component", "migration.goose"),
	}
}

func (m *GooseMigrator) Up(db *gorm.DB) error {
	m.logger.Infow("starting migration",
		"scripts_path", m.scriptsPath,
		"dialect", m.dialect)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, m.scriptsPath); err != nil {
		m.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (m *GooseMigrator) Down(db *gorm.DB, steps int) error {
	m.logger.Infow("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, m.scriptsPath); err != nil {
			m.logger.Errorw("down migration failed", "error", err)
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	m.logger.Infow("down migration completed successfully")
	return nil
}

func (m *GooseMigrator) Status(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, m.scriptsPath); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	return nil
}
