package services

import (
	"time"

	"salon-booking-api/internal/apperr"
	"salon-booking-api/internal/config"
	"salon-booking-api/internal/models"
	"salon-booking-api/internal/repositories/interfaces"
	"salon-booking-api/internal/utils"
)

// AvailabilityService is the availability engine (C4): it turns a
// master's weekly schedule plus already-booked appointments into a list
// of bookable slots for one calendar day, following the step-by-step
// algorithm in §4.3.
type AvailabilityService struct {
	catalog     interfaces.CatalogRepository
	schedule    interfaces.ScheduleRepository
	appointment interfaces.AppointmentRepository
	cfg         *config.Config
	now         func() time.Time
}

func NewAvailabilityService(
	catalog interfaces.CatalogRepository,
	schedule interfaces.ScheduleRepository,
	appointment interfaces.AppointmentRepository,
	cfg *config.Config,
) *AvailabilityService {
	return &AvailabilityService{
		catalog:     catalog,
		schedule:    schedule,
		appointment: appointment,
		cfg:         cfg,
		now:         time.Now,
	}
}

// Slot is one bookable [Start, End) window for a specific master.
type Slot struct {
	Start    time.Time
	End      time.Time
	MasterID int
}

// AvailableSlots implements §4.3: resolve the master's working window for
// the requested date's weekday, lay a SlotGridMinutes grid across it sized
// to the service duration, drop slots that collide with existing
// appointments for that master (and, if clientID is non-zero, with the
// client's own appointments), and drop past slots when date is today.
func (s *AvailabilityService) AvailableSlots(tenantID, masterID, serviceID int, date time.Time, clientID int) ([]Slot, error) {
	master, err := s.catalog.GetMasterByID(tenantID, masterID)
	if err != nil {
		return nil, err
	}
	service, err := s.catalog.GetServiceByID(tenantID, serviceID)
	if err != nil {
		return nil, err
	}
	offers, err := s.catalog.MasterOffersService(masterID, serviceID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if !offers {
		return nil, apperr.Validation("master %q does not offer this service", master.Name)
	}

	loc := s.cfg.Location()
	dayOfWeek := utils.ISOWeekday(date)

	working, err := s.schedule.GetForMasterDay(masterID, dayOfWeek)
	if err != nil {
		return []Slot{}, nil
	}

	sh, sm, ok1 := utils.ParseClockTime(working.StartTime)
	eh, em, ok2 := utils.ParseClockTime(working.EndTime)
	if !ok1 || !ok2 {
		return []Slot{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), sh, sm, 0, 0, loc)
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), eh, em, 0, 0, loc)
	if !dayStart.Before(dayEnd) {
		return []Slot{}, nil
	}

	existing, err := s.appointment.ListForMasterOnDate(tenantID, masterID, dayStart, dayEnd)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	var clientExisting []models.Appointment
	if clientID != 0 {
		clientExisting, err = s.appointment.ConflictingForClient(tenantID, clientID, dayStart, dayEnd, 0)
		if err != nil {
			return nil, apperr.Internal(err)
		}
	}

	grid := time.Duration(s.cfg.SlotGridMinutes) * time.Minute
	duration := time.Duration(service.DurationMinutes) * time.Minute

	cutoff := dayStart
	now := s.now().In(loc)
	sameDay := now.Year() == date.Year() && now.YearDay() == date.YearDay()
	if sameDay {
		rounded := utils.RoundUpToGrid(now, s.cfg.SlotGridMinutes)
		if rounded.After(cutoff) {
			cutoff = rounded
		}
	}

	var slots []Slot
	for t := dayStart; !t.Add(duration).After(dayEnd); t = t.Add(grid) {
		slotEnd := t.Add(duration)
		if t.Before(cutoff) {
			continue
		}
		if overlapsAny(existing, t, slotEnd) {
			continue
		}
		if overlapsAny(clientExisting, t, slotEnd) {
			continue
		}
		slots = append(slots, Slot{Start: t, End: slotEnd, MasterID: master.ID})
	}

	if slots == nil {
		slots = []Slot{}
	}
	return slots, nil
}

func overlapsAny(appts []models.Appointment, start, end time.Time) bool {
	for i := range appts {
		if appts[i].Overlaps(start, end) {
			return true
		}
	}
	return false
}

// ActiveDaysInMonth returns the days of (year, month), at or after today in
// the business timezone, on which at least one slot is actually bookable
// for (masterID, serviceID) — not merely on which the master has working
// hours that weekday, since a day with working hours fully booked out has
// no active slots left (§4.3's derived active-days-in-month operation). An
// invalid (year, month) pair tolerates by returning an empty slice rather
// than an error, mirroring the original's calendar.IllegalMonthError
// handling.
func (s *AvailabilityService) ActiveDaysInMonth(tenantID, masterID, serviceID, year, month int) ([]int, error) {
	if _, err := s.catalog.GetMasterByID(tenantID, masterID); err != nil {
		return nil, err
	}

	numDays := utils.DaysInMonth(year, month)
	if numDays == 0 {
		return []int{}, nil
	}

	loc := s.cfg.Location()
	today := s.now().In(loc)
	todayKey := today.Year()*10000 + int(today.Month())*100 + today.Day()

	var days []int
	for d := 1; d <= numDays; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, loc)
		dateKey := year*10000 + month*100 + d
		if dateKey < todayKey {
			continue
		}
		slots, err := s.AvailableSlots(tenantID, masterID, serviceID, date, 0)
		if err != nil {
			continue
		}
		if len(slots) > 0 {
			days = append(days, d)
		}
	}
	if days == nil {
		days = []int{}
	}
	return days, nil
}
