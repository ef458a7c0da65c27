package format

import (
	"strings"

	"shltmc-be/internal/domain"
)

// DTMSuperscript is appended after the name of a DTM member. DTM
// supersedes every other suffix, including the guest tag.
const DTMSuperscript = "ᴰᵀᴹ" // ᴰᵀᴹ

// Owner renders the agenda owner cell: every owner of the log joined
// with " & ", each with its own suffix.
func Owner(log *domain.SessionLog) string {
	owners := log.AllOwners()
	parts := make([]string, 0, len(owners))
	for _, c := range owners {
		parts = append(parts, ownerDisplay(c, log.Credentials))
	}
	return strings.Join(parts, " & ")
}

// PrimaryOwner renders the PowerBI agenda variant: primary owner only,
// and no credential derivation fallback.
func PrimaryOwner(log *domain.SessionLog) string {
	c := log.Owner
	if c == nil {
		return ""
	}
	if c.DTM {
		return c.Name + DTMSuperscript
	}
	if c.IsGuest() {
		return c.Name + " - Guest"
	}
	if log.Credentials != "" {
		return c.Name + " - " + log.Credentials
	}
	return c.Name
}

func ownerDisplay(c *domain.Contact, credOverride string) string {
	if c == nil {
		return ""
	}
	if c.DTM {
		return c.Name + DTMSuperscript
	}
	if c.IsGuest() {
		return c.Name + " - Guest"
	}
	if credOverride != "" {
		return c.Name + " - " + credOverride
	}
	if creds := Credentials(c); creds != "" {
		return c.Name + " - " + creds
	}
	return c.Name
}
