package models

// ViewingRequest is the validated input needed to book a property viewing.
// Start and End are the exact timestamps of a previously advertised slot.
type ViewingRequest struct {
	PropertyTitle   string `json:"property_title"`
	UserName        string `json:"user_name"`
	UserPhoneNumber string `json:"user_phone_number"`
	Start           string `json:"start"` // ISO 8601 (YYYY-MM-DDTHH:MM:SS)
	End             string `json:"end"`   // ISO 8601 (YYYY-MM-DDTHH:MM:SS)
	Timezone        string `json:"timezone"`
}

// ViewingConfirmation wraps the created calendar event reference.
type ViewingConfirmation struct {
	EventID   string `json:"event_id"`
	EventLink string `json:"event_link"`
	Message   string `json:"message"`
}
