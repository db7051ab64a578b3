package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tradesbook-ie/tradesbook/internal/infrastructure/persistence/models"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

// AutoMigrateModels lists every table owned by the service. casbin_rule is
// created by the casbin adapter.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.BookingModel{},
		&models.ScheduleProposalModel{},
		&models.PhotoProgressModel{},
		&models.PhotoSessionModel{},
		&models.TicketModel{},
		&models.TicketMessageModel{},
	}
}

// GormAutoMigrateStrategy creates or alters tables from the persistence models.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy(log logger.Interface) Strategy {
	return &GormAutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB) error {
	list := AutoMigrateModels()
	if err := db.AutoMigrate(list...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	s.logger.Infow("auto migration finished", "models", len(list))
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}
