package domain

// RoleTaker pairs a functionary role with the name of the member
// holding it at this meeting.
type RoleTaker struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

// Participants is the pre-aggregated participant view of a meeting,
// grouped the way the participants sheet renders it.
type Participants struct {
	PreparedSpeakers     []string    `json:"prepared_speakers"`
	IndividualEvaluators []string    `json:"individual_evaluators"`
	TableTopicsSpeakers  []string    `json:"table_topics_speakers"`
	RoleTakers           []RoleTaker `json:"role_takers"`
}

// BestAwards holds the four best-award winners, resolved to contacts.
// Any of the fields may be nil.
type BestAwards struct {
	Speaker    *Contact `json:"speaker,omitempty"`
	Evaluator  *Contact `json:"evaluator,omitempty"`
	TableTopic *Contact `json:"table_topic,omitempty"`
	RoleTaker  *Contact `json:"role_taker,omitempty"`
}

// MeetingContext is the read-only bundle every export renders from.
// It is built once per export call and discarded after serialization;
// nothing in it is mutated by the renderers.
type MeetingContext struct {
	Meeting       *Meeting                `json:"meeting"`
	Club          *Club                   `json:"club"`
	ExComm        *ExComm                 `json:"excomm,omitempty"`
	Logs          []*SessionLog           `json:"logs"` // Meeting_Seq order
	SpeechDetails map[int64]*SpeechDetail `json:"speech_details"`
	Roster        []*RosterEntry          `json:"roster"`
	Votes         []*Vote                 `json:"votes"`
	VotesByVoter  map[string][]*Vote      `json:"votes_by_voter"`
	RoleMap       map[int64]string        `json:"role_map"` // contact ID -> role title
	Participants  *Participants           `json:"participants"`
	BestAwards    *BestAwards             `json:"best_awards"`
	MeetingID     int64                   `json:"meeting_id"`
}

// VisibleLogs returns the session logs that render on the agenda, in
// meeting order.
func (c *MeetingContext) VisibleLogs() []*SessionLog {
	out := make([]*SessionLog, 0, len(c.Logs))
	for _, l := range c.Logs {
		if !l.IsHidden() {
			out = append(out, l)
		}
	}
	return out
}
