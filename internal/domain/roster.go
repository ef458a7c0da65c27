package domain

// RosterEntry is one sign-up row for a meeting.
type RosterEntry struct {
	OrderNumber int      `json:"order_number"`
	Contact     *Contact `json:"contact,omitempty"`
	TicketName  string   `json:"ticket_name,omitempty"`
}
