package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shltmc-be/internal/domain"
)

func TestSpeechObjectives_Layout(t *testing.T) {
	mctx := newTestContext()
	f, _ := renderOne(t, SpeechObjectives{}, mctx, 10)

	// Leading blank at 10, title at 11, blank at 12, first entry at 13.
	title, err := f.GetCellValue("Sheet1", "A11")
	require.NoError(t, err)
	assert.Equal(t, "PROJECT OBJECTIVES", title)

	first, err := f.GetCellValue("Sheet1", "A13")
	require.NoError(t, err)
	assert.Equal(t, "Strategic Relationships (SR1.2) Evaluation and Feedback (Required) [5'-7']", first)

	purpose, err := f.GetCellValue("Sheet1", "A14")
	require.NoError(t, err)
	assert.Equal(t, "Deliver a speech and apply feedback.", purpose)

	sep, err := f.GetCellValue("Sheet1", "A15")
	require.NoError(t, err)
	assert.Empty(t, sep)

	second, err := f.GetCellValue("Sheet1", "A16")
	require.NoError(t, err)
	assert.Equal(t, "Presentation Series (PS015) Slide Craft (Elective) [10']", second)
}

func TestSpeechObjectives_SortsAcrossFamilies(t *testing.T) {
	speech := func(id int64, code string) (*domain.SessionLog, *domain.SpeechDetail) {
		return &domain.SessionLog{
				ID: id, SessionType: typeSpeech, ProjectID: ptrInt64(id),
				SessionTitle: "s",
			}, &domain.SpeechDetail{
				LogID: id, ProjectCode: code, PathwayName: "P", ProjectName: "N",
				ProjectType: domain.ProjectTypeRequired, ProjectPurpose: "purpose " + code,
			}
	}

	// Logs arrive in the order PS001, EH2.3, SR1.2.
	l1, d1 := speech(1, "PS001")
	l2, d2 := speech(2, "EH2.3")
	l3, d3 := speech(3, "SR1.2")

	mctx := &domain.MeetingContext{
		Meeting:       &domain.Meeting{Number: 1},
		Logs:          []*domain.SessionLog{l1, l2, l3},
		SpeechDetails: map[int64]*domain.SpeechDetail{1: d1, 2: d2, 3: d3},
	}

	f, _ := renderOne(t, SpeechObjectives{}, mctx, 1)

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)

	var purposes []string
	for _, row := range rows {
		if len(row) > 0 && len(row[0]) > 8 && row[0][:8] == "purpose " {
			purposes = append(purposes, row[0])
		}
	}
	assert.Equal(t, []string{"purpose SR1.2", "purpose EH2.3", "purpose PS001"}, purposes)
}

func TestSpeechObjectives_SkipsIncompleteDetails(t *testing.T) {
	mctx := newTestContext()
	// Remove the purpose from one entry: it must not render.
	mctx.SpeechDetails[103].ProjectPurpose = ""

	f, _ := renderOne(t, SpeechObjectives{}, mctx, 1)

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	for _, row := range rows {
		for _, v := range row {
			assert.NotContains(t, v, "PS015")
		}
	}
}
