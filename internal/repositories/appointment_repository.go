package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
)

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository builds the GORM-backed
// interfaces.AppointmentRepository.
func NewAppointmentRepository(db *gorm.DB) interfaces.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) WithTx(tx *gorm.DB) interfaces.AppointmentRepository {
	return &appointmentRepository{db: tx}
}

func (r *appointmentRepository) Create(appt *models.Appointment) error {
	return r.db.Create(appt).Error
}

func (r *appointmentRepository) GetByID(tenantID, id int) (*models.Appointment, error) {
	var appt models.Appointment
	err := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).First(&appt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("appointment")
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) Update(appt *models.Appointment) error {
	return r.db.Save(appt).Error
}

func (r *appointmentRepository) Delete(tenantID, id int) error {
	res := r.db.Where("tenant_id = ? AND id = ?", tenantID, id).Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("appointment")
	}
	return nil
}

// ListFutureForClient returns clientID's appointments starting at or after
// from, ascending, per §4.4.
func (r *appointmentRepository) ListFutureForClient(tenantID, clientID int, from time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("tenant_id = ? AND client_id = ? AND start_time >= ?", tenantID, clientID, from).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) ListForMasterOnDate(tenantID, masterID int, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var appts []models.Appointment
	err := r.db.Where("tenant_id = ? AND master_id = ? AND start_time < ? AND end_time > ?",
		tenantID, masterID, dayEnd, dayStart).
		Order("start_time ASC").
		Find(&appts).Error
	return appts, err
}

// ConflictingForMaster implements the half-open-interval overlap test
// (§8: max(a.start,b.start) < min(a.end,b.end)) as a range query, the
// same shape as the teacher's CheckTimeSlotAvailability.
func (r *appointmentRepository) ConflictingForMaster(tenantID, masterID int, start, end time.Time, excludeID int) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := r.db.Where("tenant_id = ? AND master_id = ? AND start_time < ? AND end_time > ?",
		tenantID, masterID, end, start)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	err := q.Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) ConflictingForClient(tenantID, clientID int, start, end time.Time, excludeID int) ([]models.Appointment, error) {
	var appts []models.Appointment
	q := r.db.Where("tenant_id = ? AND client_id = ? AND start_time < ? AND end_time > ?",
		tenantID, clientID, end, start)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	err := q.Find(&appts).Error
	return appts, err
}

func (r *appointmentRepository) CountForMaster(tenantID, masterID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.Appointment{}).
		Where("tenant_id = ? AND master_id = ?", tenantID, masterID).
		Count(&count).Error
	return count, err
}
