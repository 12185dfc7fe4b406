// File: services/intelligence/supervisor.go
package ai

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"realtor/models"
	"realtor/services/calendar"
	"realtor/services/property"
)

// DefaultAssistantService supervises a conversation turn: it routes the
// message to the property or viewing specialist, keeps the user profile and
// the booking flow state in Redis, and assembles the reply.
type DefaultAssistantService struct {
	Router        TurnRouter
	Conversations ConversationMemory
	Profiles      ProfileMemory
	Properties    property.SearchService
	Viewings      calendar.ViewingService
}

func NewDefaultAssistantService(
	router TurnRouter,
	conversations ConversationMemory,
	profiles ProfileMemory,
	properties property.SearchService,
	viewings calendar.ViewingService,
) *DefaultAssistantService {
	return &DefaultAssistantService{
		Router:        router,
		Conversations: conversations,
		Profiles:      profiles,
		Properties:    properties,
		Viewings:      viewings,
	}
}

func (s *DefaultAssistantService) ProcessUserInput(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error) {
	profile, err := s.Profiles.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	convCtx, err := s.Conversations.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	turn, err := s.Router.RouteTurn(ctx, req.Text, today, *profile, *convCtx)
	if err != nil {
		return nil, fmt.Errorf("route turn: %w", err)
	}

	// Capture any personal details the user just shared.
	if turn.Profile != (models.UserProfile{}) {
		if profile, err = s.Profiles.Update(ctx, req.UserID, turn.Profile); err != nil {
			return nil, fmt.Errorf("save profile: %w", err)
		}
	}

	// A pending booking flow takes precedence unless the user switched topic.
	if convCtx.BookingStep > 0 && turn.Intent != "search" && turn.Intent != "slots" {
		return s.continueBookingFlow(ctx, req.UserID, turn, profile, convCtx)
	}

	switch turn.Intent {
	case "search":
		return s.handleSearch(ctx, req)
	case "slots":
		return s.handleSlots(ctx, req.UserID, turn, convCtx)
	case "book":
		return s.continueBookingFlow(ctx, req.UserID, turn, profile, convCtx)
	default:
		reply := turn.Reply
		if reply == "" {
			reply = "I'm your real estate assistant. I can search for properties and schedule viewings. What are you looking for?"
		}
		return &models.AssistantResponse{Intent: "chat", ResponseText: reply}, nil
	}
}

func (s *DefaultAssistantService) handleSearch(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error) {
	filters, err := s.Router.ParsePropertyQuery(ctx, req.Text)
	if err != nil {
		return nil, fmt.Errorf("parse property query: %w", err)
	}

	properties, err := s.Properties.Search(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}

	ui, text := BuildPropertyCarousel(properties, filters)
	return &models.AssistantResponse{
		Intent:       "search",
		ResponseText: text,
		UI:           ui,
	}, nil
}

func (s *DefaultAssistantService) handleSlots(ctx context.Context, userID string, turn *RoutedTurn, convCtx *models.ConversationContext) (*models.AssistantResponse, error) {
	if turn.Date == "" {
		return &models.AssistantResponse{
			Intent:       "slots",
			ResponseText: "Which date would you like for the viewing? Please give me a date like 2025-09-15, or say something like 'tomorrow'.",
		}, nil
	}

	listing, err := s.Viewings.FindAvailableSlots(ctx, turn.Date, "")
	if err != nil {
		return s.relayCalendarError("slots", err)
	}

	if turn.PropertyTitle != "" {
		convCtx.PropertyTitle = turn.PropertyTitle
	}
	convCtx.ViewingDate = turn.Date

	if listing.Message != "" {
		convCtx.BookingStep = 0
		convCtx.OfferedSlots = nil
		if err := s.Conversations.Set(ctx, userID, convCtx); err != nil {
			return nil, fmt.Errorf("save context: %w", err)
		}
		return &models.AssistantResponse{Intent: "slots", ResponseText: "❌ " + listing.Message}, nil
	}

	convCtx.OfferedSlots = listing.Slots
	convCtx.BookingStep = 1
	if err := s.Conversations.Set(ctx, userID, convCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	var actions []models.AssistantAction
	for i := range listing.Slots {
		slot := listing.Slots[i]
		actions = append(actions, models.AssistantAction{
			Label: slot.Label,
			Type:  "select_slot",
			Slot:  &slot,
		})
	}
	return &models.AssistantResponse{
		Intent:       "slots",
		ResponseText: formatSlotListing(listing),
		Actions:      actions,
	}, nil
}

func (s *DefaultAssistantService) continueBookingFlow(ctx context.Context, userID string, turn *RoutedTurn, profile *models.UserProfile, convCtx *models.ConversationContext) (*models.AssistantResponse, error) {
	switch convCtx.BookingStep {
	case 1:
		slot := resolveSlotChoice(convCtx.OfferedSlots, turn.SlotChoice)
		if slot == nil {
			return &models.AssistantResponse{
				Intent:       "book",
				ResponseText: "I didn't catch which time you'd like. Please pick one of the offered slots by number or time.",
			}, nil
		}
		convCtx.PendingSlot = slot
		if strings.TrimSpace(profile.PhoneNumber) == "" || profile.Name == "" {
			convCtx.BookingStep = 2
			if err := s.Conversations.Set(ctx, userID, convCtx); err != nil {
				return nil, fmt.Errorf("save context: %w", err)
			}
			return &models.AssistantResponse{
				Intent:       "book",
				ResponseText: "Great choice! To confirm the viewing I need your full name and phone number.",
			}, nil
		}
		return s.book(ctx, userID, profile, convCtx)

	case 2:
		if strings.TrimSpace(profile.PhoneNumber) == "" || profile.Name == "" {
			return &models.AssistantResponse{
				Intent:       "book",
				ResponseText: "I still need your full name and phone number to book the viewing.",
			}, nil
		}
		return s.book(ctx, userID, profile, convCtx)

	default:
		// Booking intent with no offered slots yet: fall back to slot discovery.
		return s.handleSlots(ctx, userID, turn, convCtx)
	}
}

func (s *DefaultAssistantService) book(ctx context.Context, userID string, profile *models.UserProfile, convCtx *models.ConversationContext) (*models.AssistantResponse, error) {
	slot := convCtx.PendingSlot
	if slot == nil {
		return &models.AssistantResponse{
			Intent:       "book",
			ResponseText: "I lost track of the chosen slot. Please pick a viewing time again.",
		}, nil
	}

	title := convCtx.PropertyTitle
	if title == "" {
		title = "Selected property"
	}

	confirmation, err := s.Viewings.ScheduleViewing(ctx, models.ViewingRequest{
		PropertyTitle:   title,
		UserName:        profile.Name,
		UserPhoneNumber: profile.PhoneNumber,
		Start:           slot.Start,
		End:             slot.End,
		Timezone:        slot.Timezone,
	})
	if err != nil {
		if calendar.CodeOf(err) == calendar.CodeMissingContactInfo {
			convCtx.BookingStep = 2
			if serr := s.Conversations.Set(ctx, userID, convCtx); serr != nil {
				return nil, fmt.Errorf("save context: %w", serr)
			}
		}
		return s.relayCalendarError("book", err)
	}

	if err := s.Conversations.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("clear context: %w", err)
	}
	return &models.AssistantResponse{
		Intent:       "book",
		ResponseText: "✅ " + confirmation.Message,
	}, nil
}

// relayCalendarError surfaces calendar failures conversationally: the error
// text is written for the end user, so it becomes the reply rather than a
// transport-level failure.
func (s *DefaultAssistantService) relayCalendarError(intent string, err error) (*models.AssistantResponse, error) {
	var cerr *calendar.Error
	if errors.As(err, &cerr) {
		return &models.AssistantResponse{Intent: intent, ResponseText: cerr.Message}, nil
	}
	return nil, err
}

// resolveSlotChoice matches the user's pick against the offered slots, by
// 1-based number or by time label.
func resolveSlotChoice(offered []models.CandidateSlot, choice string) *models.CandidateSlot {
	choice = strings.TrimSpace(choice)
	if choice == "" {
		return nil
	}
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(offered) {
			return &offered[n-1]
		}
		return nil
	}
	lowered := strings.ToLower(choice)
	for i := range offered {
		label := strings.ToLower(offered[i].Label)
		if label == lowered || strings.Contains(label, lowered) || strings.Contains(lowered, label) {
			return &offered[i]
		}
	}
	return nil
}

func formatSlotListing(listing *models.SlotListing) string {
	var b strings.Builder
	if day, err := time.Parse("2006-01-02", listing.Date); err == nil {
		fmt.Fprintf(&b, "📅 **Available viewing slots for %s:**\n", day.Format("January 2, 2006"))
	}
	for i, slot := range listing.Slots {
		fmt.Fprintf(&b, "🕐 **%d.** %s\n", i+1, slot.Label)
	}
	b.WriteString("\n💡 **Please choose your preferred time and provide your name and phone number to book.**")
	return b.String()
}
