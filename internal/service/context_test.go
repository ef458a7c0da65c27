package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shltmc-be/internal/domain"
)

// fakeMeetingRepository serves a single canned meeting from memory.
type fakeMeetingRepository struct {
	meeting  *domain.Meeting
	club     *domain.Club
	excomm   *domain.ExComm
	logs     []*domain.SessionLog
	details  map[int64]*domain.SpeechDetail
	roster   []*domain.RosterEntry
	votes    []*domain.Vote
	contacts map[int64]*domain.Contact

	err error // returned from every method when set
}

func (f *fakeMeetingRepository) GetMeetingByNumber(_ context.Context, number int) (*domain.Meeting, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.meeting == nil || f.meeting.Number != number {
		return nil, nil
	}
	return f.meeting, nil
}

func (f *fakeMeetingRepository) GetClub(_ context.Context, _ int64) (*domain.Club, error) {
	return f.club, f.err
}

func (f *fakeMeetingRepository) GetCurrentExComm(_ context.Context, _ int64) (*domain.ExComm, error) {
	return f.excomm, f.err
}

func (f *fakeMeetingRepository) GetSessionLogs(_ context.Context, _ int64) ([]*domain.SessionLog, error) {
	return f.logs, f.err
}

func (f *fakeMeetingRepository) GetSpeechDetails(_ context.Context, _ []int64) (map[int64]*domain.SpeechDetail, error) {
	if f.details == nil {
		return map[int64]*domain.SpeechDetail{}, f.err
	}
	return f.details, f.err
}

func (f *fakeMeetingRepository) GetRoster(_ context.Context, _ int64) ([]*domain.RosterEntry, error) {
	return f.roster, f.err
}

func (f *fakeMeetingRepository) GetVotes(_ context.Context, _ int64) ([]*domain.Vote, error) {
	return f.votes, f.err
}

func (f *fakeMeetingRepository) GetContactsByIDs(_ context.Context, ids []int64) (map[int64]*domain.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make(map[int64]*domain.Contact)
	for _, id := range ids {
		if c, ok := f.contacts[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func serviceLogs() ([]*domain.SessionLog, map[int64]*domain.Contact) {
	john := &domain.Contact{ID: 1, Name: "John Doe", Type: domain.ContactTypeMember}
	jane := &domain.Contact{ID: 2, Name: "Jane Roe", Type: domain.ContactTypeGuest}
	mark := &domain.Contact{ID: 3, Name: "Mark Moe", Type: domain.ContactTypeMember}

	two := 2
	logs := []*domain.SessionLog{
		{
			ID:          1,
			SessionType: &domain.SessionType{ID: 3, Role: "Prepared Speaker"},
			Owner:       john,
		},
		{
			ID:          2,
			SessionType: &domain.SessionType{ID: 8, Role: "Individual Evaluator"},
			Owner:       jane,
		},
		{
			ID:          3,
			SessionType: &domain.SessionType{ID: 40, Role: "Table Topics Speaker"},
			Owners:      []*domain.Contact{john, mark},
		},
		{
			ID:          4,
			SessionType: &domain.SessionType{ID: 16, Role: "Timer"},
			Owner:       mark,
		},
		{
			ID:          5,
			SessionType: &domain.SessionType{ID: 16, Role: "Timer", IsHidden: true},
			Owner:       jane,
			DurationMax: &two,
		},
	}
	contacts := map[int64]*domain.Contact{1: john, 2: jane, 3: mark}
	return logs, contacts
}

func TestBuildRoleMap(t *testing.T) {
	logs, _ := serviceLogs()
	visible := (&domain.MeetingContext{Logs: logs}).VisibleLogs()

	roleMap := buildRoleMap(visible)

	// First role in running order wins; hidden logs contribute nothing.
	assert.Equal(t, map[int64]string{
		1: "Prepared Speaker",
		2: "Individual Evaluator",
		3: "Table Topics Speaker",
	}, roleMap)
}

func TestBuildParticipants(t *testing.T) {
	logs, _ := serviceLogs()
	visible := (&domain.MeetingContext{Logs: logs}).VisibleLogs()

	p := buildParticipants(visible)

	assert.Equal(t, []string{"John Doe"}, p.PreparedSpeakers)
	assert.Equal(t, []string{"Jane Roe"}, p.IndividualEvaluators)
	assert.Equal(t, []string{"John Doe", "Mark Moe"}, p.TableTopicsSpeakers)
	assert.Equal(t, []domain.RoleTaker{{Role: "Timer", Name: "Mark Moe"}}, p.RoleTakers)
}

func TestGroupVotesByVoter(t *testing.T) {
	votes := []*domain.Vote{
		{VoterID: "a", AwardCategory: domain.AwardSpeaker},
		{VoterID: "b", Question: domain.QuestionNPS, Score: "9"},
		{VoterID: "a", Question: domain.QuestionFeedback, Comments: "great"},
	}

	byVoter := groupVotesByVoter(votes)

	require.Len(t, byVoter, 2)
	require.Len(t, byVoter["a"], 2)
	assert.Equal(t, domain.AwardSpeaker, byVoter["a"][0].AwardCategory)
	assert.Equal(t, "great", byVoter["a"][1].Comments)
}

func TestLoadMeetingContext(t *testing.T) {
	logs, contacts := serviceLogs()
	bestID := int64(3)
	repo := &fakeMeetingRepository{
		meeting: &domain.Meeting{
			ID: 10, Number: 385, ClubID: 1,
			Date:          time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
			BestSpeakerID: &bestID,
		},
		club:     &domain.Club{ID: 1, Name: "SHLTMC"},
		logs:     logs,
		contacts: contacts,
		votes: []*domain.Vote{
			{VoterID: "a", AwardCategory: domain.AwardSpeaker, Contact: contacts[1]},
		},
	}

	mctx, err := loadMeetingContext(context.Background(), repo, 385)
	require.NoError(t, err)
	require.NotNil(t, mctx)

	assert.Equal(t, int64(10), mctx.MeetingID)
	assert.Equal(t, "SHLTMC", mctx.Club.Name)
	assert.Len(t, mctx.Logs, 5)
	assert.Len(t, mctx.VisibleLogs(), 4)
	assert.Equal(t, "Prepared Speaker", mctx.RoleMap[1])
	assert.Equal(t, []string{"John Doe"}, mctx.Participants.PreparedSpeakers)
	assert.Len(t, mctx.VotesByVoter["a"], 1)
	require.NotNil(t, mctx.BestAwards.Speaker)
	assert.Equal(t, "Mark Moe", mctx.BestAwards.Speaker.Name)
	assert.Nil(t, mctx.BestAwards.Evaluator)
}

func TestLoadMeetingContext_UnknownMeeting(t *testing.T) {
	repo := &fakeMeetingRepository{}

	mctx, err := loadMeetingContext(context.Background(), repo, 999)
	require.NoError(t, err)
	assert.Nil(t, mctx)
}
