package models

// UserProfile stores what the assistant has learned about a user across
// conversations: basic facts plus a running summary of property preferences.
type UserProfile struct {
	Name                string `json:"name,omitempty"`
	Job                 string `json:"job,omitempty"`
	NumOfChildren       int    `json:"num_of_children,omitempty"`
	CityOfResidence     string `json:"city_of_residence,omitempty"`
	PropertyPreferences string `json:"property_preferences,omitempty"`
	PhoneNumber         string `json:"phone_number,omitempty"`
}

// Merge overlays non-empty fields of other onto the profile, so updating with
// new details never loses previously captured information.
func (p *UserProfile) Merge(other UserProfile) {
	if other.Name != "" {
		p.Name = other.Name
	}
	if other.Job != "" {
		p.Job = other.Job
	}
	if other.NumOfChildren != 0 {
		p.NumOfChildren = other.NumOfChildren
	}
	if other.CityOfResidence != "" {
		p.CityOfResidence = other.CityOfResidence
	}
	if other.PropertyPreferences != "" {
		p.PropertyPreferences = other.PropertyPreferences
	}
	if other.PhoneNumber != "" {
		p.PhoneNumber = other.PhoneNumber
	}
}
