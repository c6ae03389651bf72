package services

import (
	"testing"
	"time"

	"salonstore-backend/models"
	"salonstore-backend/store"
	"salonstore-backend/utils"

	"github.com/asaskevich/EventBus"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

const testPhone = "+5491144445555"

func dateFromToday(days int) string {
	return time.Now().AddDate(0, 0, days).Format(utils.DateLayout)
}

func validBooking() models.BookingInput {
	return models.BookingInput{
		ClientName:  gofakeit.Name(),
		ClientPhone: testPhone,
		ServiceID:   2,
		Date:        dateFromToday(0),
	}
}

func newAppointmentService(st store.Store) (*AppointmentService, *captureNotifier) {
	notifier := &captureNotifier{}
	return NewAppointmentService(st, testCatalog(), EventBus.New(), notifier), notifier
}

func TestBookValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *models.BookingInput)
		wantErr error
	}{
		{
			name:   "today is accepted",
			mutate: func(in *models.BookingInput) {},
		},
		{
			name:   "future date is accepted",
			mutate: func(in *models.BookingInput) { in.Date = dateFromToday(30) },
		},
		{
			name:    "yesterday is rejected",
			mutate:  func(in *models.BookingInput) { in.Date = dateFromToday(-1) },
			wantErr: ErrPastDate,
		},
		{
			name:    "blank name",
			mutate:  func(in *models.BookingInput) { in.ClientName = "   " },
			wantErr: ErrIncompleteInput,
		},
		{
			name:    "blank phone",
			mutate:  func(in *models.BookingInput) { in.ClientPhone = "" },
			wantErr: ErrIncompleteInput,
		},
		{
			name:    "malformed phone",
			mutate:  func(in *models.BookingInput) { in.ClientPhone = "not-a-phone" },
			wantErr: ErrIncompleteInput,
		},
		{
			name:    "unparsable date",
			mutate:  func(in *models.BookingInput) { in.Date = "28/08/2026" },
			wantErr: ErrIncompleteInput,
		},
		{
			name:    "missing service id",
			mutate:  func(in *models.BookingInput) { in.ServiceID = 0 },
			wantErr: ErrIncompleteInput,
		},
		{
			name:    "unknown service id",
			mutate:  func(in *models.BookingInput) { in.ServiceID = 99 },
			wantErr: ErrUnknownService,
		},
		{
			// Past date is checked before service resolution.
			name: "past date wins over unknown service",
			mutate: func(in *models.BookingInput) {
				in.Date = dateFromToday(-1)
				in.ServiceID = 99
			},
			wantErr: ErrPastDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAppointmentService(store.NewMemory())
			input := validBooking()
			tt.mutate(&input)

			appt, err := svc.Book(input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, svc.Appointments(), "log unchanged after rejection")
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Haircut", appt.ServiceName)
			require.Len(t, svc.Appointments(), 1)
		})
	}
}

func TestBookDenormalizesServiceAndTrims(t *testing.T) {
	st := store.NewMemory()
	svc, notifier := newAppointmentService(st)

	input := validBooking()
	input.ClientName = "  Ana Gomez  "
	input.ClientPhone = " " + testPhone + " "

	appt, err := svc.Book(input)
	require.NoError(t, err)
	require.Equal(t, "Ana Gomez", appt.ClientName)
	require.Equal(t, testPhone, appt.ClientPhone)
	require.Equal(t, "Haircut", appt.ServiceName)
	require.Equal(t, input.Date, appt.Date)
	require.Positive(t, appt.ID)

	// Write-through: the log is persisted before Book returns.
	var stored []models.Appointment
	found, err := st.Get(appointmentsStoreKey, &stored)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, svc.Appointments(), stored)

	require.Equal(t, models.SeveritySuccess, notifier.last().Severity)
}

func TestBookIDsAreUniqueWithinOneMillisecond(t *testing.T) {
	svc, _ := newAppointmentService(store.NewMemory())
	frozen := time.Now()
	svc.now = func() time.Time { return frozen }

	first, err := svc.Book(validBooking())
	require.NoError(t, err)
	second, err := svc.Book(validBooking())
	require.NoError(t, err)

	require.Greater(t, second.ID, first.ID)
}

func TestAppointmentsRestoreFromStore(t *testing.T) {
	st := store.NewMemory()
	svc, _ := newAppointmentService(st)

	_, err := svc.Book(validBooking())
	require.NoError(t, err)

	reloaded, _ := newAppointmentService(st)
	require.Equal(t, svc.Appointments(), reloaded.Appointments())

	// Restored services keep allocating ids past the persisted ones.
	appt, err := reloaded.Book(validBooking())
	require.NoError(t, err)
	require.Greater(t, appt.ID, svc.Appointments()[0].ID)
}

func TestAppointmentsRestoreFromEmptyStore(t *testing.T) {
	svc, _ := newAppointmentService(store.NewMemory())
	require.Empty(t, svc.Appointments())
}

func TestAppointmentsRestoreFromUnreadableStore(t *testing.T) {
	svc := NewAppointmentService(failingStore{}, testCatalog(), EventBus.New(), &captureNotifier{})
	require.Empty(t, svc.Appointments())
}
