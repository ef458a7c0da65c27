package domain

// Speech project types
const (
	ProjectTypeRequired = "required"
	ProjectTypeElective = "elective"
)

// SpeechDetail is the enriched projection of a session log's project,
// pathway and objectives. Keyed by SessionLog.ID; absence is legal and
// project-aware rules silently fall back.
type SpeechDetail struct {
	LogID          int64  `json:"log_id"`
	ProjectCode    string `json:"project_code"`
	PathwayName    string `json:"pathway_name"`
	ProjectName    string `json:"project_name"`
	ProjectType    string `json:"project_type"`
	ProjectPurpose string `json:"project_purpose"`
	SpeechTitle    string `json:"speech_title"`
	DurationMin    int    `json:"duration_min"`
	DurationMax    int    `json:"duration_max"`
}

// ProjectTypeLabel returns the capitalized label used on the
// objectives block.
func (d *SpeechDetail) ProjectTypeLabel() string {
	if d.ProjectType == ProjectTypeElective {
		return "Elective"
	}
	return "Required"
}
