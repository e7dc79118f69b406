package repositories

import (
	"gorm.io/gorm"

	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
)

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository builds the GORM-backed interfaces.ScheduleRepository.
func NewScheduleRepository(db *gorm.DB) interfaces.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) WithTx(tx *gorm.DB) interfaces.ScheduleRepository {
	return &scheduleRepository{db: tx}
}

func (r *scheduleRepository) ListForMaster(masterID int) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Where("master_id = ?", masterID).Order("day_of_week").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) GetForMasterDay(masterID, dayOfWeek int) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.Where("master_id = ? AND day_of_week = ?", masterID, dayOfWeek).First(&schedule).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// ReplaceForMaster deletes every existing row for masterID and inserts
// entries, inside one transaction, per §4.2's replace-all-atomically
// semantics. Callers have already filtered out unparsable entries.
func (r *scheduleRepository) ReplaceForMaster(masterID int, entries []models.Schedule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("master_id = ?", masterID).Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].MasterID = masterID
			entries[i].ID = 0
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
