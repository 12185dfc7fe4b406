package calendar

import (
	"context"
	"fmt"
	"strings"

	"realtor/models"
	"realtor/utils"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
)

// descriptionTemplate is the fixed event body. Only the three contact fields
// vary; the notice text is not caller-suppliable.
const descriptionTemplate = `📋 Property Viewing Details:
🏠 Property: %s
👤 Client: %s
📞 Phone: %s

📅 Please arrive 5 minutes early for the viewing.
💼 Bring a valid ID and any questions about the property.`

// ScheduleViewing books the requested viewing on the primary calendar. The
// interval is trusted to be a previously advertised slot and is written
// exactly as supplied. The call is not idempotent: repeating it creates a
// second event, since conflict avoidance already happened at slot discovery.
func (s *DefaultViewingService) ScheduleViewing(ctx context.Context, req models.ViewingRequest) (*models.ViewingConfirmation, error) {
	if strings.TrimSpace(req.UserPhoneNumber) == "" {
		return nil, newError(CodeMissingContactInfo,
			"The user's phone number is required to schedule a viewing. Please ask the user for their phone number.")
	}
	if s.API == nil {
		return nil, newError(CodeCalendarUnavailable, "Failed to connect to Google Calendar: service is not configured")
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = s.DefaultTimezone
	}

	event := &gcal.Event{
		Summary:     fmt.Sprintf("Property Viewing: %s for %s", req.PropertyTitle, req.UserName),
		Description: fmt.Sprintf(descriptionTemplate, req.PropertyTitle, req.UserName, req.UserPhoneNumber),
		Start: &gcal.EventDateTime{
			DateTime: req.Start,
			TimeZone: timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: req.End,
			TimeZone: timezone,
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: 60},
			},
			// UseDefault is false, which encoding/json would otherwise omit.
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := s.API.InsertEvent(ctx, s.CalendarID, event)
	if err != nil {
		return nil, newError(CodeCalendarWriteFailed, "An error occurred while creating the event: %v", err)
	}

	utils.GetLogger().Info("Viewing scheduled",
		zap.String("property", req.PropertyTitle),
		zap.String("start", req.Start),
		zap.String("eventId", created.Id),
	)

	return &models.ViewingConfirmation{
		EventID:   created.Id,
		EventLink: created.HtmlLink,
		Message:   fmt.Sprintf("Viewing confirmed! Event created: %s", created.HtmlLink),
	}, nil
}
