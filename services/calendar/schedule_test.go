package calendar

import (
	"context"
	"errors"
	"testing"

	"realtor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validViewingRequest() models.ViewingRequest {
	return models.ViewingRequest{
		PropertyTitle:   "Seaside Villa",
		UserName:        "Omar Hassan",
		UserPhoneNumber: "+20 100 555 0199",
		Start:           "2025-03-15T10:00:00",
		End:             "2025-03-15T11:00:00",
		Timezone:        "Africa/Cairo",
	}
}

func TestScheduleViewingSuccess(t *testing.T) {
	api := &fakeCalendarAPI{}
	svc := newTestService(api)

	confirmation, err := svc.ScheduleViewing(context.Background(), validViewingRequest())
	require.NoError(t, err)

	assert.Contains(t, confirmation.Message, "confirmed")
	assert.Contains(t, confirmation.Message, confirmation.EventLink)
	assert.NotEmpty(t, confirmation.EventID)

	require.Len(t, api.inserted, 1)
	event := api.inserted[0]
	assert.Equal(t, "Property Viewing: Seaside Villa for Omar Hassan", event.Summary)
	assert.Contains(t, event.Description, "Seaside Villa")
	assert.Contains(t, event.Description, "Omar Hassan")
	assert.Contains(t, event.Description, "+20 100 555 0199")
	assert.Contains(t, event.Description, "arrive 5 minutes early")

	assert.Equal(t, "2025-03-15T10:00:00", event.Start.DateTime)
	assert.Equal(t, "2025-03-15T11:00:00", event.End.DateTime)
	assert.Equal(t, "Africa/Cairo", event.Start.TimeZone)
	assert.Equal(t, "Africa/Cairo", event.End.TimeZone)

	require.NotNil(t, event.Reminders)
	assert.False(t, event.Reminders.UseDefault)
	assert.Contains(t, event.Reminders.ForceSendFields, "UseDefault")
	require.Len(t, event.Reminders.Overrides, 1)
	assert.Equal(t, "popup", event.Reminders.Overrides[0].Method)
	assert.Equal(t, int64(60), event.Reminders.Overrides[0].Minutes)
}

func TestScheduleViewingMissingPhoneSkipsNetwork(t *testing.T) {
	api := &fakeCalendarAPI{}
	svc := newTestService(api)

	for _, phone := range []string{"", "   "} {
		req := validViewingRequest()
		req.UserPhoneNumber = phone

		_, err := svc.ScheduleViewing(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, CodeMissingContactInfo, CodeOf(err))
		assert.Contains(t, err.Error(), "phone number")
	}
	assert.Equal(t, 0, api.insertCalls)
}

func TestScheduleViewingWriteFailure(t *testing.T) {
	api := &fakeCalendarAPI{insertErr: errors.New("quota exceeded")}
	svc := newTestService(api)

	_, err := svc.ScheduleViewing(context.Background(), validViewingRequest())
	require.Error(t, err)
	assert.Equal(t, CodeCalendarWriteFailed, CodeOf(err))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestScheduleViewingIsNotIdempotent(t *testing.T) {
	api := &fakeCalendarAPI{}
	svc := newTestService(api)

	first, err := svc.ScheduleViewing(context.Background(), validViewingRequest())
	require.NoError(t, err)
	second, err := svc.ScheduleViewing(context.Background(), validViewingRequest())
	require.NoError(t, err)

	// No dedup: identical input books twice.
	assert.Equal(t, 2, api.insertCalls)
	assert.NotEqual(t, first.EventID, second.EventID)
}

func TestScheduleViewingEmptyTimezoneUsesDefault(t *testing.T) {
	api := &fakeCalendarAPI{}
	svc := newTestService(api)

	req := validViewingRequest()
	req.Timezone = ""

	_, err := svc.ScheduleViewing(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Africa/Cairo", api.inserted[0].Start.TimeZone)
}

func TestScheduleViewingUnconfiguredService(t *testing.T) {
	svc := newTestService(nil)

	_, err := svc.ScheduleViewing(context.Background(), validViewingRequest())
	require.Error(t, err)
	assert.Equal(t, CodeCalendarUnavailable, CodeOf(err))
}
