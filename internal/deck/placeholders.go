package deck

import (
	"fmt"
	"regexp"
	"strings"

	"shltmc-be/internal/domain"
	"shltmc-be/internal/format"
)

// Slot counts on the deck template
const (
	speakerSlots   = 6
	evaluatorSlots = 6
)

// roleSpec binds a placeholder prefix to the patterns that identify
// its session log: a role-name pattern matched against the session
// type's role, and a title pattern matched against the log title.
// Both are case-insensitive.
type roleSpec struct {
	prefix       string
	rolePattern  *regexp.Regexp
	titlePattern *regexp.Regexp
}

func spec(prefix, role, title string) roleSpec {
	return roleSpec{
		prefix:       prefix,
		rolePattern:  regexp.MustCompile(`(?i)` + role),
		titlePattern: regexp.MustCompile(`(?i)` + title),
	}
}

// standardRoles lists every fixed role slot on the template. Order is
// irrelevant; each slot independently picks the last matching visible
// log.
var standardRoles = []roleSpec{
	spec("saa", `sergeant[- ]at[- ]arms|^saa$`, `sergeant at arms`),
	spec("welcome-officer", `welcome officer`, `welcome`),
	spec("president", `^president$`, `president'?s? (welcome|address)`),
	spec("vpm", `^vpm$|vice president membership`, `vpm`),
	spec("vpe", `^vpe$|vice president education`, `vpe`),
	spec("vppr", `^vppr$|vice president public relations`, `vppr`),
	spec("treasurer", `^treasurer$`, `treasurer`),
	spec("secretary", `^secretary$`, `secretary`),
	spec("tme", `toastmaster of the (evening|day|meeting)|^tme$`, `^tme\b`),
	spec("timer", `^timer$`, `timer'?s? report`),
	spec("ah-counter", `ah[- ]counter`, `ah[- ]counter`),
	spec("grammarian", `^grammarian$`, `grammarian`),
	spec("topicsmaster", `topicsmaster`, `table topics session`),
	spec("ge", `general evaluator`, `general evaluation`),
	spec("photographer", `photographer`, `photo`),
}

// rolePrefixes is the enumerated prefix set; every one of these gets
// an _info and _duration key even when no log fills it.
var rolePrefixes = []string{
	"saa", "welcome-officer", "president", "vpm", "vpe", "vppr",
	"treasurer", "secretary", "tme", "timer", "ah-counter",
	"grammarian", "topicsmaster", "ge", "photographer",
}

// excommPrefix maps excomm role names to placeholder prefixes for the
// fallback pass.
var excommPrefix = map[string]string{
	domain.RolePresident:      "president",
	domain.RoleVPE:            "vpe",
	domain.RoleVPM:            "vpm",
	domain.RoleVPPR:           "vppr",
	domain.RoleSecretary:      "secretary",
	domain.RoleTreasurer:      "treasurer",
	domain.RoleSAA:            "saa",
	domain.RoleWelcomeOfficer: "welcome-officer",
}

// featuredFallbackRoles is the last-resort role list for the keynote
// slot, in priority order.
var featuredFallbackRoles = []string{"Moderator", "Workshop Presenter", "Moderator-Host"}

// Placeholders is the full substitution set for one deck: flat text
// values for every {{key}} plus the contact whose avatar fills each
// named shape.
type Placeholders struct {
	Text    map[string]string
	Avatars map[string]*domain.Contact
}

// BuildPlaceholders derives the complete placeholder mapping from the
// meeting context. Every enumerated key is present, empty when no data
// backs it, so substitution leaves no token behind.
func BuildPlaceholders(mctx *domain.MeetingContext) *Placeholders {
	p := &Placeholders{
		Text:    make(map[string]string),
		Avatars: make(map[string]*domain.Contact),
	}
	p.seedKeys()

	m := mctx.Meeting
	p.Text["meeting_number"] = fmt.Sprintf("%d", m.Number)
	p.Text["meeting_date"] = m.Date.Format("02-Jan-2006")
	if mctx.Club != nil {
		p.Text["club_name"] = mctx.Club.Name
	}

	visible := mctx.VisibleLogs()

	p.fillStandardRoles(visible)
	p.fillExcommFallback(mctx.ExComm)
	p.fillSpeakers(mctx)
	p.fillEvaluators(mctx)
	p.fillFeatured(mctx)
	p.fillTableTopics(mctx)

	return p
}

// seedKeys initializes the enumerated key set to empty strings.
func (p *Placeholders) seedKeys() {
	for _, key := range []string{"meeting_number", "meeting_date", "club_name",
		"keynote_title", "keynote_duration", "keynote-speaker_info",
		"table-topics_duration"} {
		p.Text[key] = ""
	}
	for _, prefix := range rolePrefixes {
		p.Text[prefix+"_info"] = ""
		p.Text[prefix+"_duration"] = ""
	}
	for i := 1; i <= speakerSlots; i++ {
		p.Text[fmt.Sprintf("ps%d", i)] = ""
		p.Text[fmt.Sprintf("ps%d_title", i)] = ""
		p.Text[fmt.Sprintf("ps%d-project_info", i)] = ""
		p.Text[fmt.Sprintf("ps%d_info", i)] = ""
		p.Text[fmt.Sprintf("ps%d_duration", i)] = ""
	}
	for i := 1; i <= evaluatorSlots; i++ {
		p.Text[fmt.Sprintf("ie%d_info", i)] = ""
		p.Text[fmt.Sprintf("ie%d_duration", i)] = ""
	}
}

func (p *Placeholders) fillStandardRoles(visible []*domain.SessionLog) {
	for _, rs := range standardRoles {
		var match *domain.SessionLog
		for _, log := range visible {
			if rs.rolePattern.MatchString(log.Role()) ||
				(log.SessionTitle != "" && rs.titlePattern.MatchString(log.SessionTitle)) {
				match = log // last match wins
			}
		}
		if match == nil {
			continue
		}
		p.Text[rs.prefix+"_duration"] = format.DeckDuration(match.DurationMin, match.DurationMax)
		if match.Owner != nil {
			p.Text[rs.prefix+"_info"] = contactInfo(match.Owner, match.Credentials)
			p.Avatars[rs.prefix+"_avatar"] = match.Owner
		}
	}
}

// fillExcommFallback fills any still-empty role info from the current
// executive committee term.
func (p *Placeholders) fillExcommFallback(excomm *domain.ExComm) {
	if excomm == nil {
		return
	}
	for role, prefix := range excommPrefix {
		if p.Text[prefix+"_info"] != "" {
			continue
		}
		if holder := excomm.Holder(role); holder != nil {
			p.Text[prefix+"_info"] = contactInfo(holder, "")
			if _, ok := p.Avatars[prefix+"_avatar"]; !ok {
				p.Avatars[prefix+"_avatar"] = holder
			}
		}
	}
}

func (p *Placeholders) fillSpeakers(mctx *domain.MeetingContext) {
	slot := 0
	for _, log := range mctx.Logs {
		if log.Role() != "Prepared Speaker" || log.Owner == nil {
			continue
		}
		slot++
		if slot > speakerSlots {
			break
		}
		i := slot
		p.Text[fmt.Sprintf("ps%d", i)] = log.Owner.Name
		p.Text[fmt.Sprintf("ps%d_info", i)] = contactInfo(log.Owner, log.Credentials)
		p.Avatars[fmt.Sprintf("ps%d_avatar", i)] = log.Owner

		min, max := log.DurationMin, log.DurationMax
		if d := mctx.SpeechDetails[log.ID]; d != nil {
			if d.SpeechTitle != "" {
				p.Text[fmt.Sprintf("ps%d_title", i)] = d.SpeechTitle
			} else {
				p.Text[fmt.Sprintf("ps%d_title", i)] = d.ProjectName
			}
			if d.ProjectCode != "" && d.ProjectName != "" {
				p.Text[fmt.Sprintf("ps%d-project_info", i)] = d.ProjectCode + " - " + d.ProjectName
			} else {
				p.Text[fmt.Sprintf("ps%d-project_info", i)] = d.ProjectName
			}
			if d.DurationMin > 0 || d.DurationMax > 0 {
				dmin, dmax := d.DurationMin, d.DurationMax
				min, max = &dmin, &dmax
			}
		}
		p.Text[fmt.Sprintf("ps%d_duration", i)] = format.DeckDuration(min, max)
	}
}

func (p *Placeholders) fillEvaluators(mctx *domain.MeetingContext) {
	slot := 0
	for _, log := range mctx.Logs {
		if log.Role() != "Individual Evaluator" || log.Owner == nil {
			continue
		}
		slot++
		if slot > evaluatorSlots {
			break
		}
		p.Text[fmt.Sprintf("ie%d_info", slot)] = contactInfo(log.Owner, log.Credentials)
		p.Text[fmt.Sprintf("ie%d_duration", slot)] = format.DeckDuration(log.DurationMin, log.DurationMax)
		p.Avatars[fmt.Sprintf("ie%d_avatar", slot)] = log.Owner
	}
}

// fillFeatured resolves the keynote slot: a log matching the meeting
// type, else the keynote role, else the first moderator-like role.
func (p *Placeholders) fillFeatured(mctx *domain.MeetingContext) {
	featured := findFeatured(mctx)
	if featured == nil {
		p.Text["keynote_title"] = mctx.Meeting.Type
		return
	}

	p.Text["keynote_title"] = format.Title(featured, mctx.SpeechDetails)
	p.Text["keynote_duration"] = format.DeckDuration(featured.DurationMin, featured.DurationMax)
	if featured.Owner != nil {
		p.Text["keynote-speaker_info"] = contactInfo(featured.Owner, featured.Credentials)
		p.Avatars["keynote-speaker_avatar"] = featured.Owner
	}
}

func findFeatured(mctx *domain.MeetingContext) *domain.SessionLog {
	if mt := mctx.Meeting.Type; mt != "" {
		for _, log := range mctx.Logs {
			typeTitle := ""
			if log.SessionType != nil {
				typeTitle = log.SessionType.Title
			}
			if strings.EqualFold(typeTitle, mt) || strings.EqualFold(log.SessionTitle, mt) {
				return log
			}
		}
	}
	for _, log := range mctx.Logs {
		if log.Role() == "Keynote Speaker" {
			return log
		}
	}
	for _, role := range featuredFallbackRoles {
		for _, log := range mctx.Logs {
			if log.Role() == role {
				return log
			}
		}
	}
	return nil
}

func (p *Placeholders) fillTableTopics(mctx *domain.MeetingContext) {
	for _, log := range mctx.Logs {
		typeTitle := ""
		if log.SessionType != nil {
			typeTitle = log.SessionType.Title
		}
		if typeTitle == "Table Topics" || log.Role() == "Topicsmaster" {
			p.Text["table-topics_duration"] = format.DeckDuration(log.DurationMin, log.DurationMax)
			return
		}
	}
}

// contactInfo renders the deck info line: "<Name>, <credentials>" or
// just the name. DTM members show the designation as their credential.
func contactInfo(c *domain.Contact, credOverride string) string {
	creds := credOverride
	if c.DTM {
		creds = "DTM"
	} else if creds == "" {
		creds = format.Credentials(c)
	}
	if creds == "" {
		return c.Name
	}
	return c.Name + ", " + creds
}
