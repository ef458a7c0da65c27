package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeetingMaster(t *testing.T) {
	mctx := newTestContext()
	f, next := renderOne(t, MeetingMaster{}, mctx, 1)

	head, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "1. MEETING MASTER", head)

	get := func(ref string) string {
		v, err := f.GetCellValue("Sheet1", ref)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, `2026-2027 "Infinity"`, get("A3"))
	assert.Equal(t, "2026/08/15", get("B3"))
	assert.Equal(t, "385", get("C3"))
	assert.Equal(t, "Summer Showdown", get("D3"))
	assert.Equal(t, "https://media.example/385", get("F3"))
	assert.Equal(t, "serendipity", get("G3"))
	assert.Equal(t, "John Doe", get("H3"))
	assert.Equal(t, "Mark Moe", get("I3"))
	assert.Equal(t, "", get("J3"))

	assert.Equal(t, 5, next)
}

func TestMeetingMaster_NilExcomm(t *testing.T) {
	mctx := newTestContext()
	mctx.ExComm = nil

	f, _ := renderOne(t, MeetingMaster{}, mctx, 1)

	v, err := f.GetCellValue("Sheet1", "A3")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestPowerBIAgenda(t *testing.T) {
	mctx := newTestContext()
	f, _ := renderOne(t, PowerBIAgenda{}, mctx, 1)

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)

	// Head + header + three dense rows: sections and hidden logs are
	// skipped without leaving separator rows.
	require.Len(t, rows, 5)
	assert.Equal(t, "2. MEETING AGENDA", rows[0][0])
	assert.Equal(t, []string{"385", "19:10", `SR1.2 "The Best Speech Ever"`, "[5'-7']", "John Doe - CC"}, rows[2])
	assert.Equal(t, "Jane Roe - Guest", rows[3][4])
	assert.Equal(t, "[2'-3']", rows[4][3])
}

func TestYoodliLinks(t *testing.T) {
	mctx := newTestContext()
	f, _ := renderOne(t, YoodliLinks{}, mctx, 1)

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)

	require.Len(t, rows, 4) // head, header, two speakers
	assert.Equal(t, "3. YOODLI LINKS", rows[0][0])

	// John Doe's evaluation log is keyed by his name.
	john := rows[2]
	assert.Equal(t, "John Doe", john[1])
	assert.Equal(t, "https://yoodli.example/john", john[5])
	assert.Equal(t, "Mark Moe", john[6])
	assert.Equal(t, "https://yoodli.example/mark", john[7])

	// Jane is a guest with no evaluator.
	jane := rows[3]
	assert.Equal(t, "Jane Roe (Guest)", jane[1])
	assert.Equal(t, "https://yoodli.example/jane", jane[5])
	if len(jane) > 6 {
		assert.Empty(t, jane[6])
	}
}
