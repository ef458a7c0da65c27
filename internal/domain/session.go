package domain

import "time"

// SessionType describes a kind of agenda item (role, speech, break,
// section divider). Role is the meeting role the type carries, drawn
// from a closed vocabulary ("Prepared Speaker", "Individual Evaluator",
// "Timer", ...), empty when the type has no role.
type SessionType struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Role            string `json:"role,omitempty"`
	IsSection       bool   `json:"is_section"`
	IsHidden        bool   `json:"is_hidden"`
	ValidForProject bool   `json:"valid_for_project"`
}

// SessionLog is one ordered item on the meeting's running order.
type SessionLog struct {
	ID            int64        `json:"id"`
	MeetingNumber int          `json:"meeting_number"`
	MeetingSeq    int          `json:"meeting_seq"`
	SessionType   *SessionType `json:"session_type"`
	Owner         *Contact     `json:"owner,omitempty"`  // Primary owner
	Owners        []*Contact   `json:"owners,omitempty"` // Ordered co-owners; may be empty
	StartTime     *time.Time   `json:"start_time,omitempty"`
	DurationMin   *int         `json:"duration_min,omitempty"`
	DurationMax   *int         `json:"duration_max,omitempty"`
	SessionTitle  string       `json:"session_title,omitempty"`
	Credentials   string       `json:"credentials,omitempty"` // Per-log override
	ProjectID     *int64       `json:"project_id,omitempty"`
	Hidden        *bool        `json:"hidden,omitempty"` // Overrides the type default when set
	MediaURL      string       `json:"media_url,omitempty"`
}

// IsHidden resolves the visibility of the log: its own flag when set,
// otherwise the session type default.
func (l *SessionLog) IsHidden() bool {
	if l.Hidden != nil {
		return *l.Hidden
	}
	return l.SessionType != nil && l.SessionType.IsHidden
}

// AllOwners returns the ordered owner list, falling back to the
// primary owner when no co-owner rows exist.
func (l *SessionLog) AllOwners() []*Contact {
	if len(l.Owners) > 0 {
		return l.Owners
	}
	if l.Owner != nil {
		return []*Contact{l.Owner}
	}
	return nil
}

// Role returns the session type's role name, or empty.
func (l *SessionLog) Role() string {
	if l.SessionType == nil {
		return ""
	}
	return l.SessionType.Role
}

// StartClock formats the wall-clock start time as HH:MM, or empty.
func (l *SessionLog) StartClock() string {
	if l.StartTime == nil {
		return ""
	}
	return l.StartTime.Format("15:04")
}
