package domain

// Contact types as stored in the contacts table
const (
	ContactTypeMember = "Member"
	ContactTypeGuest  = "Guest"
)

// Contact represents a club member or guest
type Contact struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	DTM            bool   `json:"dtm"`
	AvatarURL      string `json:"avatar_url,omitempty"` // Relative to the static root
	Credentials    string `json:"credentials,omitempty"`
	CurrentPathway string `json:"current_pathway,omitempty"`
	CompletedLevel int    `json:"completed_level,omitempty"`
	LegacyAwards   string `json:"legacy_awards,omitempty"`
}

// IsGuest reports whether the contact is a guest
func (c *Contact) IsGuest() bool {
	return c.Type == ContactTypeGuest
}
