package service

import (
	"context"

	"shltmc-be/internal/domain"
	"shltmc-be/internal/repository"
)

// loadMeetingContext assembles the full read bundle for one meeting.
// Returns (nil, nil) when the meeting number is unknown.
func loadMeetingContext(ctx context.Context, repo repository.MeetingRepository, meetingNumber int) (*domain.MeetingContext, error) {
	meeting, err := repo.GetMeetingByNumber(ctx, meetingNumber)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, nil
	}

	club, err := repo.GetClub(ctx, meeting.ClubID)
	if err != nil {
		return nil, err
	}

	excomm, err := repo.GetCurrentExComm(ctx, meeting.ClubID)
	if err != nil {
		return nil, err
	}

	logs, err := repo.GetSessionLogs(ctx, meeting.ID)
	if err != nil {
		return nil, err
	}

	logIDs := make([]int64, 0, len(logs))
	for _, l := range logs {
		logIDs = append(logIDs, l.ID)
	}
	details, err := repo.GetSpeechDetails(ctx, logIDs)
	if err != nil {
		return nil, err
	}

	roster, err := repo.GetRoster(ctx, meeting.ID)
	if err != nil {
		return nil, err
	}

	votes, err := repo.GetVotes(ctx, meeting.ID)
	if err != nil {
		return nil, err
	}

	awards, err := resolveBestAwards(ctx, repo, meeting)
	if err != nil {
		return nil, err
	}

	mctx := &domain.MeetingContext{
		Meeting:       meeting,
		Club:          club,
		ExComm:        excomm,
		Logs:          logs,
		SpeechDetails: details,
		Roster:        roster,
		Votes:         votes,
		VotesByVoter:  groupVotesByVoter(votes),
		BestAwards:    awards,
		MeetingID:     meeting.ID,
	}
	mctx.RoleMap = buildRoleMap(mctx.VisibleLogs())
	mctx.Participants = buildParticipants(mctx.VisibleLogs())

	return mctx, nil
}

// buildRoleMap maps each contact to the first meeting role they hold,
// in running order.
func buildRoleMap(visible []*domain.SessionLog) map[int64]string {
	roleMap := make(map[int64]string)
	for _, l := range visible {
		role := l.Role()
		if role == "" {
			continue
		}
		for _, owner := range l.AllOwners() {
			if _, ok := roleMap[owner.ID]; !ok {
				roleMap[owner.ID] = role
			}
		}
	}
	return roleMap
}

// buildParticipants groups the visible owners the way the participants
// sheet renders them: three named groups plus the remaining role
// takers, all in running order.
func buildParticipants(visible []*domain.SessionLog) *domain.Participants {
	p := &domain.Participants{}
	seen := make(map[string]bool)

	add := func(group *[]string, name string) {
		for _, existing := range *group {
			if existing == name {
				return
			}
		}
		*group = append(*group, name)
	}

	for _, l := range visible {
		role := l.Role()
		if role == "" {
			continue
		}
		for _, owner := range l.AllOwners() {
			switch role {
			case "Prepared Speaker":
				add(&p.PreparedSpeakers, owner.Name)
			case "Individual Evaluator":
				add(&p.IndividualEvaluators, owner.Name)
			case "Table Topics Speaker":
				add(&p.TableTopicsSpeakers, owner.Name)
			default:
				key := role + ":" + owner.Name
				if !seen[key] {
					seen[key] = true
					p.RoleTakers = append(p.RoleTakers, domain.RoleTaker{Role: role, Name: owner.Name})
				}
			}
		}
	}

	return p
}

// groupVotesByVoter buckets ballot rows per voter, preserving row
// order within each bucket.
func groupVotesByVoter(votes []*domain.Vote) map[string][]*domain.Vote {
	byVoter := make(map[string][]*domain.Vote)
	for _, v := range votes {
		byVoter[v.VoterID] = append(byVoter[v.VoterID], v)
	}
	return byVoter
}

// resolveBestAwards loads the four best-award winners named on the
// meeting row.
func resolveBestAwards(ctx context.Context, repo repository.MeetingRepository, m *domain.Meeting) (*domain.BestAwards, error) {
	var ids []int64
	for _, id := range []*int64{m.BestSpeakerID, m.BestEvaluatorID, m.BestTableTopicID, m.BestRoleTakerID} {
		if id != nil {
			ids = append(ids, *id)
		}
	}

	awards := &domain.BestAwards{}
	if len(ids) == 0 {
		return awards, nil
	}

	contacts, err := repo.GetContactsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if m.BestSpeakerID != nil {
		awards.Speaker = contacts[*m.BestSpeakerID]
	}
	if m.BestEvaluatorID != nil {
		awards.Evaluator = contacts[*m.BestEvaluatorID]
	}
	if m.BestTableTopicID != nil {
		awards.TableTopic = contacts[*m.BestTableTopicID]
	}
	if m.BestRoleTakerID != nil {
		awards.RoleTaker = contacts[*m.BestRoleTakerID]
	}

	return awards, nil
}
