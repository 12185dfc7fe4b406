// File: services/intelligence/supervisor_test.go
package ai

import (
	"context"
	"errors"
	"testing"

	"realtor/models"
	"realtor/services/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRouter plays the language model: it returns a scripted turn instead of
// calling Gemini.
type fakeRouter struct {
	turn       *RoutedTurn
	turnErr    error
	filters    models.PropertySearchFilters
	filtersErr error

	routeCalls int
	parseCalls int
	lastText   string
}

func (f *fakeRouter) RouteTurn(_ context.Context, text, _ string, _ models.UserProfile, _ models.ConversationContext) (*RoutedTurn, error) {
	f.routeCalls++
	f.lastText = text
	if f.turnErr != nil {
		return nil, f.turnErr
	}
	return f.turn, nil
}

func (f *fakeRouter) ParsePropertyQuery(_ context.Context, text string) (models.PropertySearchFilters, error) {
	f.parseCalls++
	f.lastText = text
	return f.filters, f.filtersErr
}

type memConversations struct {
	contexts map[string]*models.ConversationContext
}

func newMemConversations() *memConversations {
	return &memConversations{contexts: make(map[string]*models.ConversationContext)}
}

func (m *memConversations) Get(_ context.Context, userID string) (*models.ConversationContext, error) {
	if ctx, ok := m.contexts[userID]; ok {
		copied := *ctx
		return &copied, nil
	}
	return &models.ConversationContext{}, nil
}

func (m *memConversations) Set(_ context.Context, userID string, convCtx *models.ConversationContext) error {
	copied := *convCtx
	m.contexts[userID] = &copied
	return nil
}

func (m *memConversations) Clear(_ context.Context, userID string) error {
	delete(m.contexts, userID)
	return nil
}

type memProfiles struct {
	profiles map[string]*models.UserProfile
}

func newMemProfiles() *memProfiles {
	return &memProfiles{profiles: make(map[string]*models.UserProfile)}
}

func (m *memProfiles) Get(_ context.Context, userID string) (*models.UserProfile, error) {
	if p, ok := m.profiles[userID]; ok {
		copied := *p
		return &copied, nil
	}
	return &models.UserProfile{}, nil
}

func (m *memProfiles) Update(_ context.Context, userID string, learned models.UserProfile) (*models.UserProfile, error) {
	current, _ := m.Get(context.Background(), userID)
	current.Merge(learned)
	m.profiles[userID] = current
	copied := *current
	return &copied, nil
}

type fakeViewings struct {
	listing     *models.SlotListing
	listingErr  error
	confirmErr  error
	slotCalls   int
	booked      []models.ViewingRequest
	gotDate     string
	gotTimezone string
}

func (f *fakeViewings) FindAvailableSlots(_ context.Context, date, timezone string) (*models.SlotListing, error) {
	f.slotCalls++
	f.gotDate = date
	f.gotTimezone = timezone
	if f.listingErr != nil {
		return nil, f.listingErr
	}
	return f.listing, nil
}

func (f *fakeViewings) ScheduleViewing(_ context.Context, req models.ViewingRequest) (*models.ViewingConfirmation, error) {
	f.booked = append(f.booked, req)
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return &models.ViewingConfirmation{
		EventID:   "evt1",
		EventLink: "https://calendar.example/evt1",
		Message:   "Viewing confirmed! Event created: https://calendar.example/evt1",
	}, nil
}

type fakeProperties struct {
	results []models.Property
	err     error
}

func (f *fakeProperties) Search(_ context.Context, _ models.PropertySearchFilters) ([]models.Property, error) {
	return f.results, f.err
}

func (f *fakeProperties) GetByID(_ context.Context, _ string) (*models.Property, error) {
	return nil, errors.New("not implemented")
}

func offeredSlots(t *testing.T) []models.CandidateSlot {
	t.Helper()
	return []models.CandidateSlot{
		{
			Label:    "9:00 AM - 10:00 AM",
			Start:    "2025-03-15T09:00:00+02:00",
			End:      "2025-03-15T10:00:00+02:00",
			Timezone: "Africa/Cairo",
		},
		{
			Label:    "11:00 AM - 12:00 PM",
			Start:    "2025-03-15T11:00:00+02:00",
			End:      "2025-03-15T12:00:00+02:00",
			Timezone: "Africa/Cairo",
		},
	}
}

func newTestSupervisor(router *fakeRouter, viewings *fakeViewings, props *fakeProperties) (*DefaultAssistantService, *memConversations, *memProfiles) {
	conversations := newMemConversations()
	profiles := newMemProfiles()
	return NewDefaultAssistantService(router, conversations, profiles, props, viewings), conversations, profiles
}

func TestProcessUserInputChatFallsBackToDefaultReply(t *testing.T) {
	router := &fakeRouter{turn: &RoutedTurn{Intent: "chat"}}
	svc, _, _ := newTestSupervisor(router, &fakeViewings{}, &fakeProperties{})

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "chat", resp.Intent)
	assert.Contains(t, resp.ResponseText, "real estate assistant")
}

func TestProcessUserInputCapturesProfileDetails(t *testing.T) {
	router := &fakeRouter{turn: &RoutedTurn{
		Intent:  "chat",
		Reply:   "Nice to meet you, Omar!",
		Profile: models.UserProfile{Name: "Omar Hassan", CityOfResidence: "Cairo"},
	}}
	svc, _, profiles := newTestSupervisor(router, &fakeViewings{}, &fakeProperties{})

	_, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "I'm Omar from Cairo"})
	require.NoError(t, err)

	stored, err := profiles.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "Omar Hassan", stored.Name)
	assert.Equal(t, "Cairo", stored.CityOfResidence)
}

func TestProcessUserInputSearchBuildsCarousel(t *testing.T) {
	router := &fakeRouter{
		turn:    &RoutedTurn{Intent: "search"},
		filters: models.PropertySearchFilters{},
	}
	props := &fakeProperties{results: []models.Property{
		{ID: "p1", Title: "Seaside Villa"},
		{ID: "p2", Title: "Downtown Loft"},
	}}
	svc, _, _ := newTestSupervisor(router, &fakeViewings{}, props)

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "show me villas"})
	require.NoError(t, err)
	assert.Equal(t, "search", resp.Intent)
	assert.Equal(t, 1, router.parseCalls)
	require.NotNil(t, resp.UI)
	assert.Equal(t, "property_carousel", resp.UI.Type)
	assert.Contains(t, resp.ResponseText, "2 properties")
}

func TestProcessUserInputSlotsWithoutDateAsksForOne(t *testing.T) {
	router := &fakeRouter{turn: &RoutedTurn{Intent: "slots"}}
	viewings := &fakeViewings{}
	svc, _, _ := newTestSupervisor(router, viewings, &fakeProperties{})

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "I want a viewing"})
	require.NoError(t, err)
	assert.Equal(t, "slots", resp.Intent)
	assert.Contains(t, resp.ResponseText, "date")
	assert.Zero(t, viewings.slotCalls, "no calendar call without a date")
}

func TestProcessUserInputSlotsOffersSlotsAndAdvancesFlow(t *testing.T) {
	slots := offeredSlots(t)
	router := &fakeRouter{turn: &RoutedTurn{
		Intent:        "slots",
		Date:          "2025-03-15",
		PropertyTitle: "Seaside Villa",
	}}
	viewings := &fakeViewings{listing: &models.SlotListing{
		Date:     "2025-03-15",
		Timezone: "Africa/Cairo",
		Slots:    slots,
	}}
	svc, conversations, _ := newTestSupervisor(router, viewings, &fakeProperties{})

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "slots for March 15"})
	require.NoError(t, err)
	assert.Equal(t, "slots", resp.Intent)
	assert.Equal(t, "2025-03-15", viewings.gotDate)
	require.Len(t, resp.Actions, 2)
	assert.Equal(t, "select_slot", resp.Actions[0].Type)
	assert.Equal(t, "9:00 AM - 10:00 AM", resp.Actions[0].Label)
	assert.Contains(t, resp.ResponseText, "March 15, 2025")

	saved, err := conversations.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, saved.BookingStep)
	assert.Equal(t, "Seaside Villa", saved.PropertyTitle)
	assert.Equal(t, "2025-03-15", saved.ViewingDate)
	assert.Len(t, saved.OfferedSlots, 2)
}

func TestProcessUserInputSlotsRelaysFullDayMessage(t *testing.T) {
	router := &fakeRouter{turn: &RoutedTurn{Intent: "slots", Date: "2025-03-15"}}
	viewings := &fakeViewings{listing: &models.SlotListing{
		Date:     "2025-03-15",
		Timezone: "Africa/Cairo",
		Message:  "No available slots found for the selected date.",
	}}
	svc, conversations, _ := newTestSupervisor(router, viewings, &fakeProperties{})

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "slots for March 15"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "No available slots")
	assert.Empty(t, resp.Actions)

	saved, err := conversations.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, saved.BookingStep)
}

func TestProcessUserInputSlotsRelaysCalendarErrorAsReply(t *testing.T) {
	router := &fakeRouter{turn: &RoutedTurn{Intent: "slots", Date: "2024-02-30"}}
	viewings := &fakeViewings{listingErr: &calendar.Error{
		Code:    calendar.CodeInvalidDateFormat,
		Message: "Invalid date format. Please use YYYY-MM-DD.",
	}}
	svc, _, _ := newTestSupervisor(router, viewings, &fakeProperties{})

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "slots please"})
	require.NoError(t, err)
	assert.Equal(t, "Invalid date format. Please use YYYY-MM-DD.", resp.ResponseText)
}

func TestBookingFlowChoiceByNumberBooksWhenContactKnown(t *testing.T) {
	slots := offeredSlots(t)
	router := &fakeRouter{turn: &RoutedTurn{Intent: "book", SlotChoice: "2"}}
	viewings := &fakeViewings{}
	svc, conversations, profiles := newTestSupervisor(router, viewings, &fakeProperties{})

	_, err := profiles.Update(context.Background(), "u1", models.UserProfile{
		Name:        "Omar Hassan",
		PhoneNumber: "+20 100 555 0199",
	})
	require.NoError(t, err)
	require.NoError(t, conversations.Set(context.Background(), "u1", &models.ConversationContext{
		BookingStep:   1,
		PropertyTitle: "Seaside Villa",
		ViewingDate:   "2025-03-15",
		OfferedSlots:  slots,
	}))

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "the second one"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "confirmed")

	require.Len(t, viewings.booked, 1)
	booked := viewings.booked[0]
	assert.Equal(t, "Seaside Villa", booked.PropertyTitle)
	assert.Equal(t, "Omar Hassan", booked.UserName)
	assert.Equal(t, "+20 100 555 0199", booked.UserPhoneNumber)
	assert.Equal(t, slots[1].Start, booked.Start)
	assert.Equal(t, slots[1].End, booked.End)

	// Flow state is discarded once the viewing is booked.
	saved, err := conversations.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Zero(t, saved.BookingStep)
}

func TestBookingFlowAsksForContactWhenProfileIncomplete(t *testing.T) {
	slots := offeredSlots(t)
	router := &fakeRouter{turn: &RoutedTurn{Intent: "book", SlotChoice: "1"}}
	viewings := &fakeViewings{}
	svc, conversations, _ := newTestSupervisor(router, viewings, &fakeProperties{})

	require.NoError(t, conversations.Set(context.Background(), "u1", &models.ConversationContext{
		BookingStep:  1,
		OfferedSlots: slots,
	}))

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "9 AM works"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "name and phone number")
	assert.Empty(t, viewings.booked, "no booking without contact details")

	saved, err := conversations.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, saved.BookingStep)
	require.NotNil(t, saved.PendingSlot)
	assert.Equal(t, slots[0].Label, saved.PendingSlot.Label)
}

func TestBookingFlowCompletesOnceContactProvided(t *testing.T) {
	slots := offeredSlots(t)
	router := &fakeRouter{turn: &RoutedTurn{
		Intent:  "book",
		Profile: models.UserProfile{Name: "Omar Hassan", PhoneNumber: "+20 100 555 0199"},
	}}
	viewings := &fakeViewings{}
	svc, conversations, _ := newTestSupervisor(router, viewings, &fakeProperties{})

	pending := slots[0]
	require.NoError(t, conversations.Set(context.Background(), "u1", &models.ConversationContext{
		BookingStep:   2,
		PropertyTitle: "Seaside Villa",
		PendingSlot:   &pending,
	}))

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "Omar Hassan, +20 100 555 0199"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "confirmed")
	require.Len(t, viewings.booked, 1)
	assert.Equal(t, "Omar Hassan", viewings.booked[0].UserName)
}

func TestBookingFlowRejectsUnknownSlotChoice(t *testing.T) {
	slots := offeredSlots(t)
	router := &fakeRouter{turn: &RoutedTurn{Intent: "book", SlotChoice: "7"}}
	viewings := &fakeViewings{}
	svc, conversations, _ := newTestSupervisor(router, viewings, &fakeProperties{})

	require.NoError(t, conversations.Set(context.Background(), "u1", &models.ConversationContext{
		BookingStep:  1,
		OfferedSlots: slots,
	}))

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "slot 7"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "didn't catch")
	assert.Empty(t, viewings.booked)
}

func TestBookingFlowRelaysWriteFailure(t *testing.T) {
	slots := offeredSlots(t)
	router := &fakeRouter{turn: &RoutedTurn{Intent: "book", SlotChoice: "1"}}
	viewings := &fakeViewings{confirmErr: &calendar.Error{
		Code:    calendar.CodeCalendarWriteFailed,
		Message: "An error occurred while creating the event: backend exploded",
	}}
	svc, conversations, profiles := newTestSupervisor(router, viewings, &fakeProperties{})

	_, err := profiles.Update(context.Background(), "u1", models.UserProfile{
		Name:        "Omar Hassan",
		PhoneNumber: "+20 100 555 0199",
	})
	require.NoError(t, err)
	require.NoError(t, conversations.Set(context.Background(), "u1", &models.ConversationContext{
		BookingStep:  1,
		OfferedSlots: slots,
	}))

	resp, err := svc.ProcessUserInput(context.Background(), models.AssistantRequest{UserID: "u1", Text: "first slot"})
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "error occurred while creating the event")
}

func TestResolveSlotChoice(t *testing.T) {
	slots := offeredSlots(t)

	tests := []struct {
		name      string
		choice    string
		wantLabel string
	}{
		{name: "by number", choice: "2", wantLabel: "11:00 AM - 12:00 PM"},
		{name: "by exact label", choice: "9:00 AM - 10:00 AM", wantLabel: "9:00 AM - 10:00 AM"},
		{name: "by label fragment", choice: "11:00 am", wantLabel: "11:00 AM - 12:00 PM"},
		{name: "number out of range", choice: "3", wantLabel: ""},
		{name: "empty", choice: "", wantLabel: ""},
		{name: "unrelated text", choice: "next tuesday maybe", wantLabel: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveSlotChoice(slots, tc.choice)
			if tc.wantLabel == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.wantLabel, got.Label)
		})
	}
}

func TestFormatSlotListingNumbersEverySlot(t *testing.T) {
	listing := &models.SlotListing{
		Date:     "2025-03-15",
		Timezone: "Africa/Cairo",
		Slots:    offeredSlots(t),
	}

	out := formatSlotListing(listing)
	assert.Contains(t, out, "March 15, 2025")
	assert.Contains(t, out, "**1.** 9:00 AM - 10:00 AM")
	assert.Contains(t, out, "**2.** 11:00 AM - 12:00 PM")
	assert.Contains(t, out, "phone number")
}
