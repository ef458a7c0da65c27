package sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
)

func intp(n int) *int    { return &n }
func boolp(b bool) *bool { return &b }

func timeAt(h, m int) *time.Time {
	t := time.Date(2026, 8, 15, h, m, 0, 0, time.UTC)
	return &t
}

var (
	typeSection = &domain.SessionType{ID: 1, Title: "Opening", IsSection: true}
	typeSpeech  = &domain.SessionType{ID: 3, Title: "Prepared Speech", Role: "Prepared Speaker", ValidForProject: true}
	typeEval    = &domain.SessionType{ID: 8, Title: "Evaluation", Role: "Individual Evaluator"}
	typeTimer   = &domain.SessionType{ID: 16, Title: "Timer's Report", Role: "Timer", IsHidden: true}
)

// newTestContext builds the fixture every sheet test renders from:
// a section divider, two project speeches, an evaluation and a hidden
// timer report.
func newTestContext() *domain.MeetingContext {
	john := &domain.Contact{ID: 1, Name: "John Doe", Type: domain.ContactTypeMember}
	jane := &domain.Contact{ID: 2, Name: "Jane Roe", Type: domain.ContactTypeGuest}
	mark := &domain.Contact{ID: 3, Name: "Mark Moe", Type: domain.ContactTypeMember, DTM: true}
	tina := &domain.Contact{ID: 4, Name: "Tina Toe", Type: domain.ContactTypeMember}

	logs := []*domain.SessionLog{
		{
			ID: 101, MeetingNumber: 385, MeetingSeq: 1,
			SessionType: typeSection, StartTime: timeAt(19, 0),
		},
		{
			ID: 102, MeetingNumber: 385, MeetingSeq: 2,
			SessionType: typeSpeech, Owner: john, StartTime: timeAt(19, 10),
			DurationMin: intp(5), DurationMax: intp(7),
			SessionTitle: "placeholder", Credentials: "CC",
			ProjectID: ptrInt64(11), MediaURL: "https://yoodli.example/john",
		},
		{
			ID: 103, MeetingNumber: 385, MeetingSeq: 3,
			SessionType: typeSpeech, Owner: jane, StartTime: timeAt(19, 20),
			DurationMax:  intp(10),
			SessionTitle: "placeholder",
			ProjectID:    ptrInt64(12), MediaURL: "https://yoodli.example/jane",
		},
		{
			ID: 104, MeetingNumber: 385, MeetingSeq: 4,
			SessionType: typeEval, Owner: mark, StartTime: timeAt(19, 35),
			DurationMin: intp(2), DurationMax: intp(3),
			SessionTitle: "John Doe", MediaURL: "https://yoodli.example/mark",
		},
		{
			ID: 105, MeetingNumber: 385, MeetingSeq: 5,
			SessionType: typeTimer, Owner: tina,
			SessionTitle: "Hidden Timer Report",
		},
	}

	details := map[int64]*domain.SpeechDetail{
		102: {
			LogID: 102, ProjectCode: "SR1.2", PathwayName: "Strategic Relationships",
			ProjectName: "Evaluation and Feedback", ProjectType: domain.ProjectTypeRequired,
			ProjectPurpose: "Deliver a speech and apply feedback.",
			SpeechTitle:    `The "Best" Speech Ever`, DurationMin: 5, DurationMax: 7,
		},
		103: {
			LogID: 103, ProjectCode: "PS015", PathwayName: "Presentation Series",
			ProjectName: "Slide Craft", ProjectType: domain.ProjectTypeElective,
			ProjectPurpose: "Use visual aids effectively.",
			SpeechTitle:    "Presentation Speech", DurationMax: 10,
		},
	}

	return &domain.MeetingContext{
		Meeting: &domain.Meeting{
			ID: 50, Number: 385,
			Date:      time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			Title:     "Summer Showdown",
			Type:      "Workshop",
			Status:    "completed",
			MediaURL:  "https://media.example/385",
			WordOfDay: "serendipity",
		},
		Club:   &domain.Club{ID: 1, Name: "SHLTMC"},
		ExComm: &domain.ExComm{ID: 7, ClubID: 1, Term: "2026-2027", Name: "Infinity"},
		Logs:   logs,
		SpeechDetails: details,
		Roster: []*domain.RosterEntry{
			{OrderNumber: 1, Contact: john, TicketName: "Member"},
			{OrderNumber: 2, Contact: jane, TicketName: "Guest"},
		},
		Votes: []*domain.Vote{
			{VoterID: "v1", AwardCategory: domain.AwardSpeaker, Contact: john},
			{VoterID: "v1", AwardCategory: domain.AwardRoleTaker, Contact: tina},
			{VoterID: "v1", Question: domain.QuestionNPS, Score: "9"},
			{VoterID: "v1", Question: domain.QuestionFeedback, Comments: "Great meeting, keep the pace."},
			{VoterID: "v2", AwardCategory: domain.AwardEvaluator, Contact: mark},
		},
		RoleMap: map[int64]string{3: "Individual Evaluator", 4: "Timer"},
		Participants: &domain.Participants{
			PreparedSpeakers:     []string{"John Doe", "Jane Roe"},
			IndividualEvaluators: []string{"Mark Moe"},
			RoleTakers:           []domain.RoleTaker{{Role: "Timer", Name: "Tina Toe"}},
		},
		BestAwards: &domain.BestAwards{Speaker: john, Evaluator: mark},
		MeetingID:  50,
	}
}

func ptrInt64(n int64) *int64 { return &n }

// renderOne renders a single component on a fresh workbook and returns
// the file and the returned next row.
func renderOne(t *testing.T, c Component, mctx *domain.MeetingContext, startRow int) (*excelize.File, int) {
	t.Helper()
	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })
	next, err := c.Render(f, "Sheet1", mctx, startRow)
	require.NoError(t, err)
	return f, next
}
