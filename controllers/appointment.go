// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"

	"salonstore-backend/models"
	"salonstore-backend/services"
	"salonstore-backend/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentController translates booking requests into the appointment
// manager.
type AppointmentController struct {
	Appointments *services.AppointmentService
}

// List renders the append-only appointment log in booking order.
func (ct *AppointmentController) List(c *gin.Context) {
	c.JSON(http.StatusOK, ct.Appointments.Appointments())
}

// Book validates and creates a new appointment from the submitted form.
func (ct *AppointmentController) Book(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ct.respondBookingError(c, services.ErrIncompleteInput)
		return
	}

	appt, err := ct.Appointments.Book(input)
	if err != nil {
		ct.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"appointment": appt,
		"notification": models.Notification{
			Title:    "Appointment booked",
			Message:  "Your appointment was booked successfully.",
			Severity: models.SeveritySuccess,
		},
	})
}

// respondBookingError maps the validation taxonomy onto alert responses.
// Every failure blocks only this booking attempt; the visitor is
// re-prompted by the client.
func (ct *AppointmentController) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrIncompleteInput):
		utils.RespondWithAlert(c, http.StatusBadRequest, models.Notification{
			Title:    "Error",
			Message:  "Complete all booking fields correctly.",
			Severity: models.SeverityError,
		})
	case errors.Is(err, services.ErrPastDate):
		utils.RespondWithAlert(c, http.StatusBadRequest, models.Notification{
			Title:    "Error",
			Message:  "You cannot pick a date before today.",
			Severity: models.SeverityError,
		})
	case errors.Is(err, services.ErrUnknownService):
		utils.RespondWithAlert(c, http.StatusBadRequest, models.Notification{
			Title:    "Error",
			Message:  "Select a valid service.",
			Severity: models.SeverityError,
		})
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to book appointment")
	}
}
