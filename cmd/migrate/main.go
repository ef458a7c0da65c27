package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("✅ All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("✅ Data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`DROP TABLE IF EXISTS votes CASCADE`,
		`DROP TABLE IF EXISTS roster_entries CASCADE`,
		`DROP TABLE IF EXISTS tickets CASCADE`,
		`DROP TABLE IF EXISTS speech_details CASCADE`,
		`DROP TABLE IF EXISTS session_log_owners CASCADE`,
		`DROP TABLE IF EXISTS session_logs CASCADE`,
		`DROP TABLE IF EXISTS meetings CASCADE`,
		`DROP TABLE IF EXISTS session_types CASCADE`,
		`DROP TABLE IF EXISTS excomm_roles CASCADE`,
		`DROP TABLE IF EXISTS excomms CASCADE`,
		`DROP TABLE IF EXISTS contacts CASCADE`,
		`DROP TABLE IF EXISTS clubs CASCADE`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
		fmt.Printf("  Dropped: %s\n", query)
	}

	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS clubs (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			current_excomm_id BIGINT,
			logo_url TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS contacts (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT 'Member',
			dtm BOOLEAN NOT NULL DEFAULT FALSE,
			avatar_url TEXT,
			credentials TEXT,
			current_pathway TEXT,
			completed_level INTEGER,
			legacy_awards TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS excomms (
			id BIGSERIAL PRIMARY KEY,
			club_id BIGINT NOT NULL REFERENCES clubs(id),
			term TEXT NOT NULL,
			name TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS excomm_roles (
			excomm_id BIGINT NOT NULL REFERENCES excomms(id) ON DELETE CASCADE,
			role TEXT NOT NULL,
			contact_id BIGINT NOT NULL REFERENCES contacts(id),
			PRIMARY KEY (excomm_id, role)
		)`,

		`CREATE TABLE IF NOT EXISTS session_types (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			role TEXT,
			is_section BOOLEAN NOT NULL DEFAULT FALSE,
			is_hidden BOOLEAN NOT NULL DEFAULT FALSE,
			valid_for_project BOOLEAN NOT NULL DEFAULT FALSE
		)`,

		`CREATE TABLE IF NOT EXISTS meetings (
			id BIGSERIAL PRIMARY KEY,
			number INTEGER NOT NULL UNIQUE,
			date DATE NOT NULL,
			title TEXT,
			type TEXT,
			status TEXT,
			club_id BIGINT NOT NULL REFERENCES clubs(id),
			keynote_speaker_id BIGINT REFERENCES contacts(id),
			word_of_day TEXT,
			media_url TEXT,
			best_speaker_id BIGINT REFERENCES contacts(id),
			best_evaluator_id BIGINT REFERENCES contacts(id),
			best_table_topic_id BIGINT REFERENCES contacts(id),
			best_role_taker_id BIGINT REFERENCES contacts(id)
		)`,

		`CREATE TABLE IF NOT EXISTS session_logs (
			id BIGSERIAL PRIMARY KEY,
			meeting_id BIGINT NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
			meeting_seq INTEGER NOT NULL,
			session_type_id BIGINT NOT NULL REFERENCES session_types(id),
			owner_id BIGINT REFERENCES contacts(id),
			start_time TIMESTAMPTZ,
			duration_min INTEGER,
			duration_max INTEGER,
			session_title TEXT,
			credentials TEXT,
			project_id BIGINT,
			hidden BOOLEAN,
			media_url TEXT,
			UNIQUE (meeting_id, meeting_seq)
		)`,

		`CREATE TABLE IF NOT EXISTS session_log_owners (
			session_log_id BIGINT NOT NULL REFERENCES session_logs(id) ON DELETE CASCADE,
			contact_id BIGINT NOT NULL REFERENCES contacts(id),
			position INTEGER NOT NULL,
			PRIMARY KEY (session_log_id, contact_id)
		)`,

		`CREATE TABLE IF NOT EXISTS speech_details (
			log_id BIGINT PRIMARY KEY REFERENCES session_logs(id) ON DELETE CASCADE,
			project_code TEXT,
			pathway_name TEXT,
			project_name TEXT,
			project_type TEXT,
			project_purpose TEXT,
			speech_title TEXT,
			duration_min INTEGER,
			duration_max INTEGER
		)`,

		`CREATE TABLE IF NOT EXISTS tickets (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS roster_entries (
			id BIGSERIAL PRIMARY KEY,
			meeting_id BIGINT NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
			order_number INTEGER NOT NULL,
			contact_id BIGINT REFERENCES contacts(id),
			ticket_id BIGINT REFERENCES tickets(id)
		)`,

		`CREATE TABLE IF NOT EXISTS votes (
			id BIGSERIAL PRIMARY KEY,
			meeting_id BIGINT NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
			voter_id TEXT NOT NULL,
			award_category TEXT,
			contact_id BIGINT REFERENCES contacts(id),
			question TEXT,
			score TEXT,
			comments TEXT
		)`,

		`CREATE INDEX IF NOT EXISTS idx_session_logs_meeting ON session_logs(meeting_id, meeting_seq)`,
		`CREATE INDEX IF NOT EXISTS idx_roster_entries_meeting ON roster_entries(meeting_id, order_number)`,
		`CREATE INDEX IF NOT EXISTS idx_votes_meeting ON votes(meeting_id)`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	queries := []string{
		// Session type IDs are fixed: the evaluation (8, 22) and
		// keynote (14) IDs are recognized by the title formatter.
		`INSERT INTO session_types (id, title, role, is_section, is_hidden, valid_for_project) VALUES
			(1,  'Opening Section', NULL, TRUE, FALSE, FALSE),
			(2,  'President''s Welcome', 'President', FALSE, FALSE, FALSE),
			(3,  'Prepared Speech', 'Prepared Speaker', FALSE, FALSE, TRUE),
			(4,  'Toastmaster of the Evening', 'Toastmaster of the Evening', FALSE, FALSE, FALSE),
			(5,  'Table Topics Session', 'Topicsmaster', FALSE, FALSE, FALSE),
			(6,  'Table Topics Speech', 'Table Topics Speaker', FALSE, FALSE, FALSE),
			(7,  'General Evaluation', 'General Evaluator', FALSE, FALSE, FALSE),
			(8,  'Evaluation', 'Individual Evaluator', FALSE, FALSE, FALSE),
			(9,  'Timer''s Report', 'Timer', FALSE, TRUE, FALSE),
			(10, 'Ah-Counter''s Report', 'Ah-Counter', FALSE, TRUE, FALSE),
			(11, 'Grammarian''s Report', 'Grammarian', FALSE, TRUE, FALSE),
			(12, 'Break', NULL, FALSE, FALSE, FALSE),
			(13, 'Awards Section', NULL, TRUE, FALSE, FALSE),
			(14, 'Keynote Speech', 'Keynote Speaker', FALSE, FALSE, FALSE),
			(22, 'Round Robin Evaluation', 'Individual Evaluator', FALSE, FALSE, FALSE)
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('session_types_id_seq', (SELECT MAX(id) FROM session_types))`,

		`INSERT INTO clubs (id, name) VALUES (1, 'SHLTMC')
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('clubs_id_seq', (SELECT MAX(id) FROM clubs))`,

		`INSERT INTO contacts (id, name, type, dtm, credentials, current_pathway, completed_level) VALUES
			(1, 'John Doe', 'Member', FALSE, 'CC', NULL, NULL),
			(2, 'Jane Roe', 'Member', FALSE, NULL, 'Presentation Mastery', 2),
			(3, 'Mark Moe', 'Member', TRUE, NULL, NULL, NULL),
			(4, 'Tina Toe', 'Guest', FALSE, NULL, NULL, NULL)
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('contacts_id_seq', (SELECT MAX(id) FROM contacts))`,

		`INSERT INTO excomms (id, club_id, term, name) VALUES (1, 1, '2026-2027', 'Infinity')
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('excomms_id_seq', (SELECT MAX(id) FROM excomms))`,

		`INSERT INTO excomm_roles (excomm_id, role, contact_id) VALUES
			(1, 'President', 3),
			(1, 'VPE', 2),
			(1, 'VPM', 1)
		ON CONFLICT (excomm_id, role) DO NOTHING`,

		`INSERT INTO meetings (id, number, date, title, type, status, club_id) VALUES
			(1, 385, '2026-09-05', 'Regular Meeting', 'Regular', 'scheduled', 1)
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('meetings_id_seq', (SELECT MAX(id) FROM meetings))`,

		`INSERT INTO session_logs
			(id, meeting_id, meeting_seq, session_type_id, owner_id, start_time, duration_min, duration_max, session_title) VALUES
			(1, 1, 1, 1, NULL, '2026-09-05 19:00:00+08', NULL, NULL, 'Opening'),
			(2, 1, 2, 2, 3, '2026-09-05 19:05:00+08', 2, 3, NULL),
			(3, 1, 3, 3, 1, '2026-09-05 19:10:00+08', 5, 7, 'Pathway Speech'),
			(4, 1, 4, 8, 2, '2026-09-05 19:20:00+08', 2, 3, 'John Doe'),
			(5, 1, 5, 9, 4, NULL, NULL, 2, NULL)
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('session_logs_id_seq', (SELECT MAX(id) FROM session_logs))`,

		`INSERT INTO speech_details
			(log_id, project_code, pathway_name, project_name, project_type, project_purpose, speech_title, duration_min, duration_max) VALUES
			(3, 'SR1.2', 'Strategic Relationships', 'Evaluation and Feedback', 'required',
			 'Learn to accept and apply feedback.', 'My First Feedback', 5, 7)
		ON CONFLICT (log_id) DO NOTHING`,

		`INSERT INTO tickets (id, name) VALUES (1, 'Member'), (2, 'Guest')
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('tickets_id_seq', (SELECT MAX(id) FROM tickets))`,

		`INSERT INTO roster_entries (id, meeting_id, order_number, contact_id, ticket_id) VALUES
			(1, 1, 1, 1, 1),
			(2, 1, 2, 4, 2)
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('roster_entries_id_seq', (SELECT MAX(id) FROM roster_entries))`,

		`INSERT INTO votes (id, meeting_id, voter_id, award_category, contact_id, question, score, comments) VALUES
			(1, 1, 'voter-a', 'speaker', 1, NULL, NULL, NULL),
			(2, 1, 'voter-a', NULL, NULL, 'How likely are you to recommend this meeting to a friend or colleague?', '9', NULL),
			(3, 1, 'voter-a', NULL, NULL, 'Any feedback or suggestions for us?', NULL, 'Great meeting!')
		ON CONFLICT (id) DO NOTHING`,
		`SELECT setval('votes_id_seq', (SELECT MAX(id) FROM votes))`,
	}

	for _, query := range queries {
		if _, err := conn.Exec(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}

	return nil
}
