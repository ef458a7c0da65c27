package domain

import "time"

// Meeting represents a single scheduled meeting of the club, identified
// by a globally unique number.
type Meeting struct {
	ID                int64     `json:"id"`
	Number            int       `json:"number"`
	Date              time.Time `json:"date"`
	Title             string    `json:"title"`
	Type              string    `json:"type,omitempty"`
	Status            string    `json:"status"`
	ClubID            int64     `json:"club_id"`
	KeynoteSpeakerID  *int64    `json:"keynote_speaker_id,omitempty"`
	WordOfDay         string    `json:"word_of_day,omitempty"`
	MediaURL          string    `json:"media_url,omitempty"`
	BestSpeakerID     *int64    `json:"best_speaker_id,omitempty"`
	BestEvaluatorID   *int64    `json:"best_evaluator_id,omitempty"`
	BestTableTopicID  *int64    `json:"best_table_topic_id,omitempty"`
	BestRoleTakerID   *int64    `json:"best_role_taker_id,omitempty"`
}
