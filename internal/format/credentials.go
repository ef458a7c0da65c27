package format

import (
	"fmt"
	"strings"

	"shltmc-be/internal/domain"
)

// Credentials returns the highest-priority credential string the
// contact holds, or empty. Priority: explicit credentials override,
// then current pathway abbreviation with the completed level, then
// legacy award letters. DTM display is handled by the owner formatter
// and never reaches this function.
func Credentials(c *domain.Contact) string {
	if c == nil {
		return ""
	}
	if c.Credentials != "" {
		return c.Credentials
	}
	if c.CurrentPathway != "" && c.CompletedLevel > 0 {
		return fmt.Sprintf("%s%d", pathwayAbbrev(c.CurrentPathway), c.CompletedLevel)
	}
	return c.LegacyAwards
}

// pathwayAbbrev abbreviates a pathway name to the initials of its
// words, e.g. "Presentation Mastery" -> "PM".
func pathwayAbbrev(pathway string) string {
	var b strings.Builder
	for _, word := range strings.Fields(pathway) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}
