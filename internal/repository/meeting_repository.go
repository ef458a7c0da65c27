package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shltmc-be/internal/domain"
	"shltmc-be/pkg/database"
)

type PostgresMeetingRepository struct {
	db *database.PostgresDB
}

func NewPostgresMeetingRepository(db *database.PostgresDB) *PostgresMeetingRepository {
	return &PostgresMeetingRepository{db: db}
}

const contactColumns = `
	c.id, c.name, c.type, c.dtm,
	COALESCE(c.avatar_url, ''), COALESCE(c.credentials, ''),
	COALESCE(c.current_pathway, ''), COALESCE(c.completed_level, 0),
	COALESCE(c.legacy_awards, '')`

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var c domain.Contact
	err := row.Scan(
		&c.ID, &c.Name, &c.Type, &c.DTM,
		&c.AvatarURL, &c.Credentials,
		&c.CurrentPathway, &c.CompletedLevel,
		&c.LegacyAwards,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetMeetingByNumber retrieves a meeting by its club-wide number.
// Returns (nil, nil) when no such meeting exists.
func (r *PostgresMeetingRepository) GetMeetingByNumber(ctx context.Context, number int) (*domain.Meeting, error) {
	var m domain.Meeting
	query := `
		SELECT id, number, date, COALESCE(title, ''), COALESCE(type, ''),
		       COALESCE(status, ''), club_id, keynote_speaker_id,
		       COALESCE(word_of_day, ''), COALESCE(media_url, ''),
		       best_speaker_id, best_evaluator_id,
		       best_table_topic_id, best_role_taker_id
		FROM meetings
		WHERE number = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, number).Scan(
		&m.ID, &m.Number, &m.Date, &m.Title, &m.Type,
		&m.Status, &m.ClubID, &m.KeynoteSpeakerID,
		&m.WordOfDay, &m.MediaURL,
		&m.BestSpeakerID, &m.BestEvaluatorID,
		&m.BestTableTopicID, &m.BestRoleTakerID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meeting %d: %w", number, err)
	}

	return &m, nil
}

// GetClub retrieves a club by ID. Returns (nil, nil) when absent.
func (r *PostgresMeetingRepository) GetClub(ctx context.Context, id int64) (*domain.Club, error) {
	var c domain.Club
	query := `
		SELECT id, name, current_excomm_id, COALESCE(logo_url, '')
		FROM clubs
		WHERE id = $1
	`

	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.CurrentExCommID, &c.LogoURL,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get club %d: %w", id, err)
	}

	return &c, nil
}

// GetCurrentExComm retrieves the latest executive committee term for
// the club, with its role holders resolved to contacts. Returns
// (nil, nil) when the club has no term on record.
func (r *PostgresMeetingRepository) GetCurrentExComm(ctx context.Context, clubID int64) (*domain.ExComm, error) {
	var e domain.ExComm
	query := `
		SELECT id, club_id, term, name
		FROM excomms
		WHERE club_id = $1
		ORDER BY id DESC
		LIMIT 1
	`

	err := r.db.Pool.QueryRow(ctx, query, clubID).Scan(&e.ID, &e.ClubID, &e.Term, &e.Name)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get excomm for club %d: %w", clubID, err)
	}

	rolesQuery := `
		SELECT er.role, ` + contactColumns + `
		FROM excomm_roles er
		JOIN contacts c ON c.id = er.contact_id
		WHERE er.excomm_id = $1
	`

	rows, err := r.db.Pool.Query(ctx, rolesQuery, e.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get excomm roles: %w", err)
	}
	defer rows.Close()

	e.Roles = make(map[string]*domain.Contact)
	for rows.Next() {
		var role string
		var c domain.Contact
		err := rows.Scan(
			&role,
			&c.ID, &c.Name, &c.Type, &c.DTM,
			&c.AvatarURL, &c.Credentials,
			&c.CurrentPathway, &c.CompletedLevel,
			&c.LegacyAwards,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan excomm role: %w", err)
		}
		e.Roles[role] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read excomm roles: %w", err)
	}

	return &e, nil
}

// GetSessionLogs retrieves the running order for a meeting: each log
// with its session type, primary owner and ordered co-owners, sorted
// by meeting sequence.
func (r *PostgresMeetingRepository) GetSessionLogs(ctx context.Context, meetingID int64) ([]*domain.SessionLog, error) {
	query := `
		SELECT sl.id, m.number, sl.meeting_seq,
		       st.id, st.title, COALESCE(st.role, ''),
		       st.is_section, st.is_hidden, st.valid_for_project,
		       sl.owner_id, sl.start_time, sl.duration_min, sl.duration_max,
		       COALESCE(sl.session_title, ''), COALESCE(sl.credentials, ''),
		       sl.project_id, sl.hidden, COALESCE(sl.media_url, '')
		FROM session_logs sl
		JOIN meetings m ON m.id = sl.meeting_id
		JOIN session_types st ON st.id = sl.session_type_id
		WHERE sl.meeting_id = $1
		ORDER BY sl.meeting_seq
	`

	rows, err := r.db.Pool.Query(ctx, query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session logs: %w", err)
	}
	defer rows.Close()

	var logs []*domain.SessionLog
	ownerIDs := make(map[int64]struct{})
	logOwnerID := make(map[int64]*int64)

	for rows.Next() {
		var l domain.SessionLog
		var st domain.SessionType
		var ownerID *int64
		err := rows.Scan(
			&l.ID, &l.MeetingNumber, &l.MeetingSeq,
			&st.ID, &st.Title, &st.Role,
			&st.IsSection, &st.IsHidden, &st.ValidForProject,
			&ownerID, &l.StartTime, &l.DurationMin, &l.DurationMax,
			&l.SessionTitle, &l.Credentials,
			&l.ProjectID, &l.Hidden, &l.MediaURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session log: %w", err)
		}
		l.SessionType = &st
		if ownerID != nil {
			ownerIDs[*ownerID] = struct{}{}
		}
		logOwnerID[l.ID] = ownerID
		logs = append(logs, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session logs: %w", err)
	}
	if len(logs) == 0 {
		return logs, nil
	}

	coOwners, coOwnerIDs, err := r.getLogOwners(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	for id := range coOwnerIDs {
		ownerIDs[id] = struct{}{}
	}

	ids := make([]int64, 0, len(ownerIDs))
	for id := range ownerIDs {
		ids = append(ids, id)
	}
	contacts, err := r.GetContactsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, l := range logs {
		if id := logOwnerID[l.ID]; id != nil {
			l.Owner = contacts[*id]
		}
		for _, cid := range coOwners[l.ID] {
			if c := contacts[cid]; c != nil {
				l.Owners = append(l.Owners, c)
			}
		}
	}

	return logs, nil
}

// getLogOwners loads the ordered co-owner rows for every log of the
// meeting, keyed by log ID.
func (r *PostgresMeetingRepository) getLogOwners(ctx context.Context, meetingID int64) (map[int64][]int64, map[int64]struct{}, error) {
	query := `
		SELECT slo.session_log_id, slo.contact_id
		FROM session_log_owners slo
		JOIN session_logs sl ON sl.id = slo.session_log_id
		WHERE sl.meeting_id = $1
		ORDER BY slo.session_log_id, slo.position
	`

	rows, err := r.db.Pool.Query(ctx, query, meetingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get log owners: %w", err)
	}
	defer rows.Close()

	byLog := make(map[int64][]int64)
	ids := make(map[int64]struct{})
	for rows.Next() {
		var logID, contactID int64
		if err := rows.Scan(&logID, &contactID); err != nil {
			return nil, nil, fmt.Errorf("failed to scan log owner: %w", err)
		}
		byLog[logID] = append(byLog[logID], contactID)
		ids[contactID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read log owners: %w", err)
	}

	return byLog, ids, nil
}

// GetSpeechDetails retrieves project details for the given log IDs,
// keyed by log ID. Logs without details are simply absent.
func (r *PostgresMeetingRepository) GetSpeechDetails(ctx context.Context, logIDs []int64) (map[int64]*domain.SpeechDetail, error) {
	details := make(map[int64]*domain.SpeechDetail)
	if len(logIDs) == 0 {
		return details, nil
	}

	query := `
		SELECT log_id, COALESCE(project_code, ''), COALESCE(pathway_name, ''),
		       COALESCE(project_name, ''), COALESCE(project_type, ''),
		       COALESCE(project_purpose, ''), COALESCE(speech_title, ''),
		       COALESCE(duration_min, 0), COALESCE(duration_max, 0)
		FROM speech_details
		WHERE log_id = ANY($1)
	`

	rows, err := r.db.Pool.Query(ctx, query, logIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get speech details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.SpeechDetail
		err := rows.Scan(
			&d.LogID, &d.ProjectCode, &d.PathwayName,
			&d.ProjectName, &d.ProjectType,
			&d.ProjectPurpose, &d.SpeechTitle,
			&d.DurationMin, &d.DurationMax,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan speech detail: %w", err)
		}
		details[d.LogID] = &d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read speech details: %w", err)
	}

	return details, nil
}

// GetRoster retrieves the sign-up roster for a meeting in order. The
// contact is nil for walk-in rows that only carry a ticket name.
func (r *PostgresMeetingRepository) GetRoster(ctx context.Context, meetingID int64) ([]*domain.RosterEntry, error) {
	query := `
		SELECT re.order_number, re.contact_id, COALESCE(t.name, ''), ` + contactColumns + `
		FROM roster_entries re
		LEFT JOIN tickets t ON t.id = re.ticket_id
		LEFT JOIN contacts c ON c.id = re.contact_id
		WHERE re.meeting_id = $1
		ORDER BY re.order_number
	`

	rows, err := r.db.Pool.Query(ctx, query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	defer rows.Close()

	var roster []*domain.RosterEntry
	for rows.Next() {
		var e domain.RosterEntry
		var contactID *int64
		var c domain.Contact
		var cid, clevel *int64
		var cname, ctype, cavatar, ccreds, cpathway, clegacy *string
		var cdtm *bool
		err := rows.Scan(
			&e.OrderNumber, &contactID, &e.TicketName,
			&cid, &cname, &ctype, &cdtm,
			&cavatar, &ccreds, &cpathway, &clevel, &clegacy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		if cid != nil {
			c = domain.Contact{ID: *cid, Name: *cname, Type: *ctype, DTM: *cdtm,
				AvatarURL: *cavatar, Credentials: *ccreds,
				CurrentPathway: *cpathway, CompletedLevel: int(*clevel),
				LegacyAwards: *clegacy}
			e.Contact = &c
		}
		roster = append(roster, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	return roster, nil
}

// GetVotes retrieves the meeting's ballot rows with the voted contact
// resolved where present.
func (r *PostgresMeetingRepository) GetVotes(ctx context.Context, meetingID int64) ([]*domain.Vote, error) {
	query := `
		SELECT v.voter_id, COALESCE(v.award_category, ''), v.contact_id,
		       COALESCE(v.question, ''), COALESCE(v.score, ''),
		       COALESCE(v.comments, '')
		FROM votes v
		WHERE v.meeting_id = $1
		ORDER BY v.id
	`

	rows, err := r.db.Pool.Query(ctx, query, meetingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}
	defer rows.Close()

	var votes []*domain.Vote
	contactIDs := make(map[int64]struct{})
	voteContact := make(map[int]*int64)

	for rows.Next() {
		var v domain.Vote
		var contactID *int64
		err := rows.Scan(
			&v.VoterID, &v.AwardCategory, &contactID,
			&v.Question, &v.Score, &v.Comments,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		if contactID != nil {
			contactIDs[*contactID] = struct{}{}
		}
		voteContact[len(votes)] = contactID
		votes = append(votes, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read votes: %w", err)
	}
	if len(contactIDs) == 0 {
		return votes, nil
	}

	ids := make([]int64, 0, len(contactIDs))
	for id := range contactIDs {
		ids = append(ids, id)
	}
	contacts, err := r.GetContactsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i, v := range votes {
		if id := voteContact[i]; id != nil {
			v.Contact = contacts[*id]
		}
	}

	return votes, nil
}

// GetContactsByIDs retrieves contacts keyed by ID.
func (r *PostgresMeetingRepository) GetContactsByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Contact, error) {
	contacts := make(map[int64]*domain.Contact)
	if len(ids) == 0 {
		return contacts, nil
	}

	query := `
		SELECT ` + contactColumns + `
		FROM contacts c
		WHERE c.id = ANY($1)
	`

	rows, err := r.db.Pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read contacts: %w", err)
	}

	return contacts, nil
}
