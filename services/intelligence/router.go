// File: services/intelligence/router.go
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"realtor/models"
)

const routeTurnPrompt = `You are a helpful and friendly real estate agent supervisor.
You manage the conversation with the user and delegate tasks to specialized workers.

The current date is %s.

Classify the user's message into exactly one intent:
- "search": the user is looking for properties (describe what they want).
- "slots": the user wants to see available viewing times for a date.
- "book": the user is choosing one of the previously offered viewing slots, or supplying the contact details needed to finish a booking.
- "chat": anything else; write a short friendly reply in "reply".

Rules:
- When the user gives a relative date ("tomorrow", "next Friday"), resolve it to YYYY-MM-DD in "date" using the current date above.
- All times are handled in the Egyptian timezone (Africa/Cairo); never convert to UTC.
- Be proactive about memory: whenever the user mentions personal information (name, job, number of children, city of residence, phone number, property preferences), capture it in "profile".
- If the user references a specific property for the viewing, set "property_title".
- If the user picks a slot by number or by time, put their choice verbatim in "slot_choice".

Known user profile: %s
Conversation state: %s

Answer with a single JSON object with keys: intent, reply, date, property_title, slot_choice, profile
(profile keys: name, job, num_of_children, city_of_residence, property_preferences, phone_number).

User message: %q`

// RouteTurn asks the model to classify one user turn and extract the fields
// the supervisor needs for delegation.
func (g *GeminiClient) RouteTurn(ctx context.Context, text, today string, profile models.UserProfile, convCtx models.ConversationContext) (*RoutedTurn, error) {
	profileJSON, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	stateJSON, err := json.Marshal(convCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to encode conversation state: %w", err)
	}

	raw, err := g.GenerateJSON(ctx, fmt.Sprintf(routeTurnPrompt, today, profileJSON, stateJSON, text))
	if err != nil {
		return nil, fmt.Errorf("turn routing failed: %w", err)
	}

	var turn RoutedTurn
	if err := decodeModelJSON(raw, &turn); err != nil {
		return nil, fmt.Errorf("failed to decode routed turn: %w", err)
	}
	return &turn, nil
}
