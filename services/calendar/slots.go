package calendar

import (
	"context"
	"time"

	"realtor/models"
	"realtor/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// noSlotsMessage is returned in place of an empty slot list so a conversational
// agent can relay the outcome without extra logic.
const noSlotsMessage = "No available slots found for the selected date."

// FindAvailableSlots tiles the business-hours window on the requested date
// into fixed-duration candidate slots, fetches the busy intervals for exactly
// that window, and returns the candidates that overlap none of them.
func (s *DefaultViewingService) FindAvailableSlots(ctx context.Context, date string, timezone string) (*models.SlotListing, error) {
	if timezone == "" {
		timezone = s.DefaultTimezone
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, newError(CodeInvalidDateFormat, "Invalid date format. Please use YYYY-MM-DD.")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, newError(CodeInvalidTimezone, "Invalid timezone specified: %s", timezone)
	}
	if s.API == nil {
		return nil, newError(CodeCalendarUnavailable, "Failed to connect to Google Calendar: service is not configured")
	}

	// Business hours in the calendar's timezone.
	windowStart := time.Date(day.Year(), day.Month(), day.Day(), s.BusinessStart, 0, 0, 0, loc)
	windowEnd := time.Date(day.Year(), day.Month(), day.Day(), s.BusinessEnd, 0, 0, 0, loc)

	busy, err := s.API.ListBusyIntervals(ctx, s.CalendarID, windowStart, windowEnd)
	if err != nil {
		// A fetch failure must never read as a fully open calendar.
		return nil, newError(CodeCalendarUnavailable, "Failed to connect to Google Calendar: %v", err)
	}

	candidates := tileWindow(windowStart, windowEnd, s.SlotDuration, timezone)
	free := excludeBusy(candidates, busy)

	utils.GetLogger().Debug("Computed available viewing slots",
		zap.String("date", date),
		zap.String("timezone", timezone),
		zap.Int("busy", len(busy)),
		zap.Int("available", len(free)),
	)

	listing := &models.SlotListing{Date: date, Timezone: timezone}
	if len(free) == 0 {
		listing.Message = noSlotsMessage
		return listing, nil
	}
	for _, iv := range free {
		listing.Slots = append(listing.Slots, presentSlot(iv))
	}
	return listing, nil
}

// presentSlot renders an interval as a caller-facing slot record, e.g.
// "10:00 AM - 11:00 AM" with ISO timestamps.
func presentSlot(iv models.Interval) models.CandidateSlot {
	return models.CandidateSlot{
		Label:    iv.Start.Format("3:04 PM") + " - " + iv.End.Format("3:04 PM"),
		Start:    iv.Start.Format(time.RFC3339),
		End:      iv.End.Format(time.RFC3339),
		Timezone: iv.Timezone,
	}
}
