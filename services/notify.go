package services

import (
	"salonstore-backend/models"

	"go.uber.org/zap"
)

// Event bus topics published by the managers so the view layer can
// re-render without polling.
const (
	TopicCartChanged        = "cart:changed"
	TopicAppointmentCreated = "appointment:created"
)

// Notifier is the user-facing notification sink. Implementations must not
// block the calling mutation.
type Notifier interface {
	Notify(n models.Notification)
}

// LogNotifier writes notifications to the global zap logger. It is the
// default sink when no richer channel is attached.
type LogNotifier struct{}

func (LogNotifier) Notify(n models.Notification) {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("severity", string(n.Severity)),
	}
	switch n.Severity {
	case models.SeverityWarning:
		zap.L().Warn(n.Message, fields...)
	case models.SeverityError:
		zap.L().Error(n.Message, fields...)
	default:
		zap.L().Info(n.Message, fields...)
	}
}
