package interfaces

import (
	"time"

	"gorm.io/gorm"

	"salon-booking-api/internal/models"
)

// AppointmentRepository is the tenant-scoped persistence layer for
// appointments, including the conflict-detection queries the booking
// engine's serializable transactions depend on (§4.4, §5).
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(tenantID, id int) (*models.Appointment, error)
	Update(appt *models.Appointment) error
	Delete(tenantID, id int) error
	ListFutureForClient(tenantID, clientID int, from time.Time) ([]models.Appointment, error)
	ListForMasterOnDate(tenantID, masterID int, dayStart, dayEnd time.Time) ([]models.Appointment, error)

	// ConflictingForMaster returns appointments for masterID whose
	// interval overlaps [start, end), excluding excludeID (used by
	// update, which must not conflict with itself).
	ConflictingForMaster(tenantID, masterID int, start, end time.Time, excludeID int) ([]models.Appointment, error)
	// ConflictingForClient is the client-side analogue of
	// ConflictingForMaster.
	ConflictingForClient(tenantID, clientID int, start, end time.Time, excludeID int) ([]models.Appointment, error)

	CountForMaster(tenantID, masterID int) (int64, error)

	// WithTx returns a repository bound to an existing transaction.
	WithTx(tx *gorm.DB) AppointmentRepository
}
