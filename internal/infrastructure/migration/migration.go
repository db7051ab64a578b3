// Package migration applies the database schema.
package migration

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// Manager runs the strategy chosen for the environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager uses AutoMigrate in development and versioned scripts elsewhere.
func NewManager(environment, scriptsPath string, log logger.Interface) *Manager {
	var strategy Strategy
	switch strings.ToLower(environment) {
	case "test", "release", "production":
		strategy = NewGolangMigrateStrategy(scriptsPath, log)
	default:
		strategy = NewGormAutoMigrateStrategy(log)
	}
	return NewManagerWithStrategy(strategy, log)
}

func NewManagerWithStrategy(strategy Strategy, log logger.Interface) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   log.With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
