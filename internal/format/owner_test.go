package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shltmc-be/internal/domain"
)

func TestOwner(t *testing.T) {
	tests := []struct {
		name     string
		log      *domain.SessionLog
		expected string
	}{
		{
			name: "dtm supersedes guest",
			log: &domain.SessionLog{
				Owner: &domain.Contact{Name: "John Doe", Type: domain.ContactTypeGuest, DTM: true},
			},
			expected: "John Doe" + DTMSuperscript,
		},
		{
			name: "guest tag",
			log: &domain.SessionLog{
				Owner: &domain.Contact{Name: "Jane Roe", Type: domain.ContactTypeGuest},
			},
			expected: "Jane Roe - Guest",
		},
		{
			name: "log credential override wins over derivation",
			log: &domain.SessionLog{
				Owner:       &domain.Contact{Name: "John Doe", Type: domain.ContactTypeMember, Credentials: "DL3"},
				Credentials: "CC",
			},
			expected: "John Doe - CC",
		},
		{
			name: "derived pathway credentials",
			log: &domain.SessionLog{
				Owner: &domain.Contact{
					Name: "John Doe", Type: domain.ContactTypeMember,
					CurrentPathway: "Presentation Mastery", CompletedLevel: 3,
				},
			},
			expected: "John Doe - PM3",
		},
		{
			name: "bare member",
			log: &domain.SessionLog{
				Owner: &domain.Contact{Name: "John Doe", Type: domain.ContactTypeMember},
			},
			expected: "John Doe",
		},
		{
			name: "co-owners joined with ampersand",
			log: &domain.SessionLog{
				Owners: []*domain.Contact{
					{Name: "John Doe", Type: domain.ContactTypeMember},
					{Name: "Jane Roe", Type: domain.ContactTypeGuest},
				},
			},
			expected: "John Doe & Jane Roe - Guest",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Owner(tt.log))
		})
	}
}

func TestOwner_DTMCellNeverCarriesSuffix(t *testing.T) {
	log := &domain.SessionLog{
		Owner:       &domain.Contact{Name: "John Doe", Type: domain.ContactTypeGuest, DTM: true, Credentials: "DL5"},
		Credentials: "CC",
	}

	got := Owner(log)
	assert.True(t, strings.HasSuffix(got, DTMSuperscript))
	assert.NotContains(t, got, " - ")
}

func TestPrimaryOwner(t *testing.T) {
	tests := []struct {
		name     string
		log      *domain.SessionLog
		expected string
	}{
		{
			name:     "no owner",
			log:      &domain.SessionLog{},
			expected: "",
		},
		{
			name: "dtm",
			log: &domain.SessionLog{
				Owner: &domain.Contact{Name: "John Doe", DTM: true},
			},
			expected: "John Doe" + DTMSuperscript,
		},
		{
			name: "guest",
			log: &domain.SessionLog{
				Owner: &domain.Contact{Name: "Jane Roe", Type: domain.ContactTypeGuest},
			},
			expected: "Jane Roe - Guest",
		},
		{
			name: "no derivation fallback without override",
			log: &domain.SessionLog{
				Owner: &domain.Contact{
					Name: "John Doe", Type: domain.ContactTypeMember,
					CurrentPathway: "Presentation Mastery", CompletedLevel: 3,
				},
			},
			expected: "John Doe",
		},
		{
			name: "credential override",
			log: &domain.SessionLog{
				Owner:       &domain.Contact{Name: "John Doe", Type: domain.ContactTypeMember},
				Credentials: "CC",
			},
			expected: "John Doe - CC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PrimaryOwner(tt.log))
		})
	}
}
