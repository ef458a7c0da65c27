package domain

import "fmt"

// ExComm role names as stored in excomm_roles
const (
	RolePresident      = "President"
	RoleVPE            = "VPE"
	RoleVPM            = "VPM"
	RoleVPPR           = "VPPR"
	RoleSecretary      = "Secretary"
	RoleTreasurer      = "Treasurer"
	RoleSAA            = "SAA"
	RoleWelcomeOfficer = "Welcome Officer"
)

// Club represents a speaking club
type Club struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	CurrentExCommID *int64 `json:"current_excomm_id,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
}

// ExComm represents one executive committee term. Roles maps the role
// name to its holder. When a club has several terms the latest by ID
// wins.
type ExComm struct {
	ID     int64               `json:"id"`
	ClubID int64               `json:"club_id"`
	Term   string              `json:"term"`
	Name   string              `json:"name"`
	Roles  map[string]*Contact `json:"roles"`
}

// Display renders the excomm heading used on the PowerBI data sheet,
// e.g. `2025-2026 "Infinity"`.
func (e *ExComm) Display() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %q", e.Term, e.Name)
}

// Holder returns the contact holding the named role, or nil.
func (e *ExComm) Holder(role string) *Contact {
	if e == nil {
		return nil
	}
	return e.Roles[role]
}
