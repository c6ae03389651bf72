// services/appointment_service.go
package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"salonstore-backend/catalog"
	"salonstore-backend/models"
	"salonstore-backend/store"
	"salonstore-backend/utils"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

const appointmentsStoreKey = "appointments"

// AppointmentService owns the append-only log of booked appointments.
// Entries are never edited or cancelled; every booking writes the whole log
// through the store before returning.
type AppointmentService struct {
	store     store.Store
	catalog   *catalog.Catalog
	bus       EventBus.Bus
	notifier  Notifier
	confirmer BookingConfirmer
	now       func() time.Time

	mu           sync.Mutex
	appointments []models.Appointment
	lastID       int64
}

// NewAppointmentService restores the persisted log, or starts empty when
// the stored value is absent or unreadable.
func NewAppointmentService(st store.Store, cat *catalog.Catalog, bus EventBus.Bus, notifier Notifier) *AppointmentService {
	s := &AppointmentService{
		store:    st,
		catalog:  cat,
		bus:      bus,
		notifier: notifier,
		now:      time.Now,
	}
	s.appointments = restoreList[models.Appointment](st, appointmentsStoreKey)
	for _, a := range s.appointments {
		if a.ID > s.lastID {
			s.lastID = a.ID
		}
	}
	return s
}

// SetConfirmer attaches an out-of-band booking confirmation sender.
func (s *AppointmentService) SetConfirmer(c BookingConfirmer) {
	s.confirmer = c
}

// Appointments returns a copy of the log in booking order.
func (s *AppointmentService) Appointments() []models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	appts := make([]models.Appointment, len(s.appointments))
	copy(appts, s.appointments)
	return appts
}

// Book validates the input and appends a new appointment. Checks run in
// order and the first failure wins: structural validity
// (ErrIncompleteInput), date not before today (ErrPastDate), known service
// id (ErrUnknownService).
func (s *AppointmentService) Book(input models.BookingInput) (models.Appointment, error) {
	name := strings.TrimSpace(input.ClientName)
	phone := strings.TrimSpace(input.ClientPhone)
	dateValue := strings.TrimSpace(input.Date)

	if name == "" || phone == "" || input.ServiceID == 0 || dateValue == "" {
		return models.Appointment{}, fmt.Errorf("%w: all fields are required", ErrIncompleteInput)
	}
	if !utils.ValidatePhone(phone) {
		return models.Appointment{}, fmt.Errorf("%w: invalid phone number", ErrIncompleteInput)
	}
	date, err := utils.ParseDate(dateValue)
	if err != nil {
		return models.Appointment{}, fmt.Errorf("%w: invalid date %q", ErrIncompleteInput, dateValue)
	}

	if utils.IsPastDay(date, s.now()) {
		return models.Appointment{}, fmt.Errorf("%w: %s", ErrPastDate, dateValue)
	}

	service, ok := s.catalog.ServiceByID(input.ServiceID)
	if !ok {
		return models.Appointment{}, fmt.Errorf("%w: id %d", ErrUnknownService, input.ServiceID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appt := models.Appointment{
		ID:          s.nextID(),
		ClientName:  name,
		ClientPhone: phone,
		ServiceName: service.Name,
		Date:        dateValue,
	}
	s.appointments = append(s.appointments, appt)

	s.persist()
	s.bus.Publish(TopicAppointmentCreated, appt)
	s.notifier.Notify(models.Notification{
		Title:    "Appointment booked",
		Message:  "Your appointment was booked successfully.",
		Severity: models.SeveritySuccess,
	})

	if s.confirmer != nil {
		if err := s.confirmer.ConfirmBooking(appt); err != nil {
			zap.L().Warn("booking confirmation not delivered",
				zap.Int64("appointment_id", appt.ID), zap.Error(err))
		}
	}

	return appt, nil
}

// nextID derives the id from the booking timestamp, bumping past the last
// id when two bookings land in the same millisecond.
func (s *AppointmentService) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *AppointmentService) persist() {
	if err := s.store.Set(appointmentsStoreKey, s.appointments); err != nil {
		zap.L().Error("appointment log persist failed", zap.Error(err))
		s.notifier.Notify(models.Notification{
			Title:    "Storage error",
			Message:  "Your appointment could not be saved.",
			Severity: models.SeverityError,
		})
	}
}
