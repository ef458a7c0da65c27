package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"shltmc-be/internal/domain"
)

// VotesSheet renders one row per voter: the four best-award picks,
// the NPS score and the free-text feedback.
type VotesSheet struct{}

func (VotesSheet) Render(f *excelize.File, sheet string, mctx *domain.MeetingContext, startRow int) (int, error) {
	header, err := headerStyle(f)
	if err != nil {
		return 0, err
	}
	wrap, err := wrapStyle(f)
	if err != nil {
		return 0, err
	}

	row := startRow
	headers := []interface{}{
		"Best Speaker", "Best Evaluator", "Best Table Topic", "Best Role Taker",
		"NPS", "Feedback",
	}
	if err := setRow(f, sheet, row, headers); err != nil {
		return 0, err
	}
	if err := f.SetCellStyle(sheet, cell(1, row), cell(6, row), header); err != nil {
		return 0, err
	}
	row++

	// Voters render in first-appearance order so the sheet is stable
	// across exports.
	var voters []string
	seen := make(map[string]bool)
	for _, v := range mctx.Votes {
		if !seen[v.VoterID] {
			seen[v.VoterID] = true
			voters = append(voters, v.VoterID)
		}
	}

	for _, voter := range voters {
		cols := make(map[string]string)
		nps := ""
		feedback := ""
		for _, v := range mctx.VotesByVoter[voter] {
			if v.AwardCategory != "" && v.Contact != nil {
				cols[v.AwardCategory] = awardCell(mctx, v)
				continue
			}
			switch v.Question {
			case domain.QuestionNPS:
				nps = v.Score
			case domain.QuestionFeedback:
				feedback = v.Comments
			}
		}

		values := []interface{}{
			cols[domain.AwardSpeaker],
			cols[domain.AwardEvaluator],
			cols[domain.AwardTableTopic],
			cols[domain.AwardRoleTaker],
			nps,
			feedback,
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return 0, err
		}
		if feedback != "" {
			if err := f.SetCellStyle(sheet, cell(6, row), cell(6, row), wrap); err != nil {
				return 0, err
			}
		}
		row++
	}

	// Feedback column width is pinned, never auto-fit.
	if err := f.SetColWidth(sheet, "F", "F", 40); err != nil {
		return 0, err
	}

	return row + 1, nil
}

// awardCell renders a best-award pick; role takers show as
// "<role>: <name>" when the contact held a role at this meeting.
func awardCell(mctx *domain.MeetingContext, v *domain.Vote) string {
	if v.AwardCategory == domain.AwardRoleTaker {
		if role, ok := mctx.RoleMap[v.Contact.ID]; ok {
			return fmt.Sprintf("%s: %s", role, v.Contact.Name)
		}
	}
	return v.Contact.Name
}
