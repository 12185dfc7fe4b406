package calendar

import (
	"context"
	"time"

	"realtor/config"
	"realtor/models"
)

// ViewingService defines the calendar-facing operations of the assistant:
// finding open viewing slots and booking one.
type ViewingService interface {
	// FindAvailableSlots computes the free fixed-duration slots within
	// business hours on the given date. An empty timezone falls back to the
	// configured default.
	FindAvailableSlots(ctx context.Context, date string, timezone string) (*models.SlotListing, error)
	// ScheduleViewing books a viewing for a previously advertised slot.
	ScheduleViewing(ctx context.Context, req models.ViewingRequest) (*models.ViewingConfirmation, error)
}

// DefaultViewingService is the concrete implementation backed by an external
// calendar. It holds no mutable state; every call is independent and reflects
// the calendar's state at call time.
type DefaultViewingService struct {
	API             CalendarAPI
	CalendarID      string
	DefaultTimezone string
	SlotDuration    time.Duration
	BusinessStart   int // hour of day, e.g. 9
	BusinessEnd     int // hour of day, e.g. 17
}

// NewDefaultViewingService wires a viewing service from the app configuration.
func NewDefaultViewingService(api CalendarAPI) *DefaultViewingService {
	cfg := config.AppConfig
	return &DefaultViewingService{
		API:             api,
		CalendarID:      cfg.CalendarID,
		DefaultTimezone: cfg.DefaultTimezone,
		SlotDuration:    time.Duration(cfg.SlotDurationMin) * time.Minute,
		BusinessStart:   cfg.BusinessHoursStart,
		BusinessEnd:     cfg.BusinessHoursEnd,
	}
}
