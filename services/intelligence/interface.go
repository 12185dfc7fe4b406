// File: services/intelligence/interface.go
package ai

import (
	"context"

	"realtor/models"
)

// AssistantService is the conversational entry point of the realtor backend.
type AssistantService interface {
	ProcessUserInput(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error)
}

// RoutedTurn is the language model's reading of a single user turn: which
// specialist should handle it, plus whatever fields it extracted along the way.
type RoutedTurn struct {
	Intent        string             `json:"intent"` // "chat", "search", "slots", or "book"
	Reply         string             `json:"reply,omitempty"`
	Date          string             `json:"date,omitempty"` // YYYY-MM-DD, resolved from relative phrasing
	PropertyTitle string             `json:"property_title,omitempty"`
	SlotChoice    string             `json:"slot_choice,omitempty"` // label or number of the chosen slot
	Profile       models.UserProfile `json:"profile"`
}

// TurnRouter abstracts the language model behind the supervisor so the
// conversation flow can be tested without network calls.
type TurnRouter interface {
	RouteTurn(ctx context.Context, text, today string, profile models.UserProfile, convCtx models.ConversationContext) (*RoutedTurn, error)
	ParsePropertyQuery(ctx context.Context, text string) (models.PropertySearchFilters, error)
}

// ConversationMemory is the supervisor's view of conversation state storage.
type ConversationMemory interface {
	Get(ctx context.Context, userID string) (*models.ConversationContext, error)
	Set(ctx context.Context, userID string, convCtx *models.ConversationContext) error
	Clear(ctx context.Context, userID string) error
}

// ProfileMemory is the supervisor's view of user profile storage.
type ProfileMemory interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Update(ctx context.Context, userID string, learned models.UserProfile) (*models.UserProfile, error)
}
