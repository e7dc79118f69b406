package interfaces

import (
	"gorm.io/gorm"

	"salon-booking-api/internal/models"
)

// ScheduleRepository manages a master's weekly working-hours rows.
type ScheduleRepository interface {
	ListForMaster(masterID int) ([]models.Schedule, error)
	GetForMasterDay(masterID, dayOfWeek int) (*models.Schedule, error)
	ReplaceForMaster(masterID int, entries []models.Schedule) error
	// WithTx returns a repository bound to an existing transaction. The
	// booking engine reads schedule coverage through the unbound
	// repository, before its conflict-check transaction opens.
	WithTx(tx *gorm.DB) ScheduleRepository
}
