package repository

import (
	"context"

	"shltmc-be/internal/domain"
)

// MeetingRepository defines the read side of the meeting store. Every
// method propagates query errors; lookups that can legitimately miss
// return (nil, nil).
type MeetingRepository interface {
	// GetMeetingByNumber retrieves a meeting by its club-wide number
	GetMeetingByNumber(ctx context.Context, number int) (*domain.Meeting, error)

	// GetClub retrieves a club by ID
	GetClub(ctx context.Context, id int64) (*domain.Club, error)

	// GetCurrentExComm retrieves the club's latest executive committee
	// term with its role holders
	GetCurrentExComm(ctx context.Context, clubID int64) (*domain.ExComm, error)

	// GetSessionLogs retrieves the meeting's running order with types
	// and ordered owners, sorted by sequence
	GetSessionLogs(ctx context.Context, meetingID int64) ([]*domain.SessionLog, error)

	// GetSpeechDetails retrieves the project details for the given
	// session log IDs, keyed by log ID
	GetSpeechDetails(ctx context.Context, logIDs []int64) (map[int64]*domain.SpeechDetail, error)

	// GetRoster retrieves the meeting's sign-up roster in order
	GetRoster(ctx context.Context, meetingID int64) ([]*domain.RosterEntry, error)

	// GetVotes retrieves the meeting's ballot rows with voted contacts
	GetVotes(ctx context.Context, meetingID int64) ([]*domain.Vote, error)

	// GetContactsByIDs retrieves contacts keyed by ID; absent IDs are
	// simply missing from the map
	GetContactsByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Contact, error)
}
