// controllers/events.go
package controllers

import (
	"io"
	"net/http"

	"salonstore-backend/models"
	"salonstore-backend/services"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
)

// EventsController streams cart and appointment change events over SSE so
// the client can re-render without polling.
type EventsController struct {
	Bus EventBus.Bus
}

type busEvent struct {
	name    string
	payload any
}

// Stream subscribes the connection to the manager topics and forwards
// events until the client disconnects. Events are dropped rather than
// blocking a mutation when the client cannot keep up.
func (ct *EventsController) Stream(c *gin.Context) {
	events := make(chan busEvent, 16)

	onCart := func(items []models.CartItem) {
		select {
		case events <- busEvent{name: services.TopicCartChanged, payload: items}:
		default:
		}
	}
	onAppointment := func(appt models.Appointment) {
		select {
		case events <- busEvent{name: services.TopicAppointmentCreated, payload: appt}:
		default:
		}
	}

	if err := ct.Bus.Subscribe(services.TopicCartChanged, onCart); err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if err := ct.Bus.Subscribe(services.TopicAppointmentCreated, onAppointment); err != nil {
		ct.Bus.Unsubscribe(services.TopicCartChanged, onCart)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	defer func() {
		ct.Bus.Unsubscribe(services.TopicCartChanged, onCart)
		ct.Bus.Unsubscribe(services.TopicAppointmentCreated, onAppointment)
	}()

	c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(ev.name, ev.payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
