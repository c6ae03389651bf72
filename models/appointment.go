package models

// Appointment is one booked slot in the append-only appointment log.
// ServiceName is a denormalized copy of the chosen service's name taken at
// booking time, so later catalog changes never rewrite history.
type Appointment struct {
	ID          int64  `json:"id"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
}

// BookingInput is the booking form payload as submitted by the visitor.
type BookingInput struct {
	ClientName  string `json:"clientName" binding:"required"`
	ClientPhone string `json:"clientPhone" binding:"required"`
	ServiceID   int64  `json:"serviceId" binding:"required"`
	Date        string `json:"date" binding:"required"`
}
