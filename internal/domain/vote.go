package domain

// Best-award vote categories
const (
	AwardSpeaker    = "speaker"
	AwardEvaluator  = "evaluator"
	AwardTableTopic = "table-topic"
	AwardRoleTaker  = "role-taker"
)

// Question strings identifying the two free-form vote kinds. These are
// literals written by the voting UI and must match exactly.
const (
	QuestionNPS      = "How likely are you to recommend this meeting to a friend or colleague?"
	QuestionFeedback = "Any feedback or suggestions for us?"
)

// Vote is one ballot row. A voter submits several rows sharing a
// voter identifier: one per award category plus NPS and feedback.
type Vote struct {
	VoterID       string   `json:"voter_id"`
	AwardCategory string   `json:"award_category,omitempty"`
	Contact       *Contact `json:"contact,omitempty"`
	Question      string   `json:"question,omitempty"`
	Score         string   `json:"score,omitempty"`
	Comments      string   `json:"comments,omitempty"`
}
