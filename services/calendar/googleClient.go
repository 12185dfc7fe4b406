// File: services/calendar/googleClient.go
package calendar

import (
	"context"
	"fmt"
	"time"

	"realtor/models"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarAPI is the narrow surface of the external calendar backend the
// viewing services depend on. It exists so slot finding and booking can be
// exercised against a fake in tests.
type CalendarAPI interface {
	// ListBusyIntervals returns the occupied intervals between timeMin and
	// timeMax on the given calendar, ordered by start time.
	ListBusyIntervals(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]models.Interval, error)
	// InsertEvent creates an event and returns the created resource.
	InsertEvent(ctx context.Context, calendarID string, event *gcal.Event) (*gcal.Event, error)
}

// GoogleCalendarAPI implements CalendarAPI against the Google Calendar v3 API
// using a service account credential.
type GoogleCalendarAPI struct {
	svc *gcal.Service
}

// NewGoogleCalendarAPI builds the Google Calendar client once, at startup.
// The returned handle is safe for concurrent reuse across requests.
func NewGoogleCalendarAPI(ctx context.Context, credentialsFile string) (*GoogleCalendarAPI, error) {
	svc, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Calendar service: %w", err)
	}
	return &GoogleCalendarAPI{svc: svc}, nil
}

func (g *GoogleCalendarAPI) ListBusyIntervals(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]models.Interval, error) {
	events, err := g.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var busy []models.Interval
	for _, item := range events.Items {
		// All-day events carry a Date instead of a DateTime; they do not
		// block timed viewing slots.
		if item.Start == nil || item.End == nil || item.Start.DateTime == "" || item.End.DateTime == "" {
			continue
		}
		start, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event start %q: %w", item.Start.DateTime, err)
		}
		end, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse event end %q: %w", item.End.DateTime, err)
		}
		busy = append(busy, models.Interval{Start: start, End: end, Timezone: item.Start.TimeZone})
	}
	return busy, nil
}

func (g *GoogleCalendarAPI) InsertEvent(ctx context.Context, calendarID string, event *gcal.Event) (*gcal.Event, error) {
	created, err := g.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}
	return created, nil
}
