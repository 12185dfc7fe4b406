package models

// AssistantRequest is the payload coming from the frontend into /api/assistant/chat.
type AssistantRequest struct {
	UserID string `json:"user_id"` // unique user identifier
	Text   string `json:"text"`    // user's message
}

// AssistantAction is a single button/card action returned during booking steps.
type AssistantAction struct {
	Label       string         `json:"label"`                 // text on the button
	Type        string         `json:"type"`                  // e.g. "select_slot", "view_property"
	PropertyID  string         `json:"property_id,omitempty"` // when referencing a listing
	Slot        *CandidateSlot `json:"slot,omitempty"`        // when selecting a viewing slot
	Description string         `json:"description,omitempty"` // extra info
}

// UIMessage is a renderable UI payload pushed alongside an assistant reply,
// e.g. the property carousel.
type UIMessage struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"` // "property_carousel"
	Props map[string]any `json:"props"`
}

// AssistantResponse is what the chat handler returns to the frontend.
type AssistantResponse struct {
	Intent       string            `json:"intent"` // "chat", "search", "slots", or "book"
	ResponseText string            `json:"response"`
	Actions      []AssistantAction `json:"actions,omitempty"`
	UI           *UIMessage        `json:"ui,omitempty"`
}

// ConversationContext tracks the in-flight booking flow for a user.
type ConversationContext struct {
	BookingStep   int             `json:"bookingStep"` // 0 idle, 1 awaiting slot choice, 2 awaiting contact info
	PropertyTitle string          `json:"propertyTitle,omitempty"`
	ViewingDate   string          `json:"viewingDate,omitempty"` // YYYY-MM-DD
	OfferedSlots  []CandidateSlot `json:"offeredSlots,omitempty"`
	PendingSlot   *CandidateSlot  `json:"pendingSlot,omitempty"`
}
