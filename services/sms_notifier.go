// services/sms_notifier.go
package services

import (
	"fmt"

	"salonstore-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// BookingConfirmer delivers a booking confirmation out of band, in addition
// to the in-process notification channel.
type BookingConfirmer interface {
	ConfirmBooking(appt models.Appointment) error
}

// SMSConfirmer sends booking confirmations to the client's phone via
// Twilio. Optional: wired only when the Twilio credentials are configured.
type SMSConfirmer struct {
	client *twilio.RestClient
	from   string
}

func NewSMSConfirmer(accountSID, authToken, from string) *SMSConfirmer {
	return &SMSConfirmer{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *SMSConfirmer) ConfirmBooking(appt models.Appointment) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(appt.ClientPhone)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("Hi %s, your %s appointment on %s is confirmed.",
		appt.ClientName, appt.ServiceName, appt.Date))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio send: %w", err)
	}
	return nil
}
