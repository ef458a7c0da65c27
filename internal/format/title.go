package format

import (
	"strings"

	"shltmc-be/internal/domain"
)

// Session type IDs that identify evaluations and keynotes even when
// the type title has been renamed. Mirrors the rows seeded by the
// migration command.
var (
	evaluationTypeIDs = map[int64]struct{}{8: {}, 22: {}}
	keynoteTypeIDs    = map[int64]struct{}{14: {}}
)

// IsEvaluationType reports whether the session type is an evaluation,
// by title or by seeded ID.
func IsEvaluationType(st *domain.SessionType) bool {
	if st == nil {
		return false
	}
	if _, ok := evaluationTypeIDs[st.ID]; ok {
		return true
	}
	return st.Title == "Evaluation"
}

// IsKeynoteType reports whether the session type is a keynote slot.
func IsKeynoteType(st *domain.SessionType) bool {
	if st == nil {
		return false
	}
	if _, ok := keynoteTypeIDs[st.ID]; ok {
		return true
	}
	return st.Title == "Keynote Speech"
}

// Title produces the display title for a session log. First matching
// rule wins:
//  1. evaluation with a subject -> "Evaluation for <subject>"
//  2. keynote with a title -> title with quotes stripped
//  3. project speech with details -> `<code> "<speech title>"`
//  4. session title, else session type title
func Title(log *domain.SessionLog, details map[int64]*domain.SpeechDetail) string {
	st := log.SessionType

	if st != nil && log.SessionTitle != "" {
		if IsEvaluationType(st) {
			return "Evaluation for " + log.SessionTitle
		}
		if IsKeynoteType(st) {
			return StripQuotes(log.SessionTitle)
		}
		if st.ValidForProject {
			if d, ok := details[log.ID]; ok && d != nil && d.ProjectCode != "" {
				return d.ProjectCode + ` "` + StripQuotes(d.SpeechTitle) + `"`
			}
		}
	}

	if log.SessionTitle != "" {
		return log.SessionTitle
	}
	if st != nil {
		return st.Title
	}
	return ""
}

// StripQuotes removes both double and single quotes from a title so it
// can be safely re-quoted.
func StripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", `'`, "").Replace(s)
}
