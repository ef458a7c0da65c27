package format

import (
	"regexp"
	"strconv"
)

// pathwayCodeRe matches the numeric part of a pathway project code
// such as "SR1.2" or "EH2.3.1". Presentation codes ("PS001") carry no
// dot and fall into the second family.
var pathwayCodeRe = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// CodeKey is the composite sort key unifying the two project code
// families under one total order. Pathway codes (family 0) precede
// presentation codes (family 1); within a family the numeric tuple
// orders entries and the raw code string breaks ties.
type CodeKey struct {
	Family  int
	Level   int
	Project int
	Sub     int
	Code    string
}

// ParseCode derives the sort key for a project code.
func ParseCode(code string) CodeKey {
	if m := pathwayCodeRe.FindStringSubmatch(code); m != nil {
		level, _ := strconv.Atoi(m[1])
		project, _ := strconv.Atoi(m[2])
		sub := 0
		if m[3] != "" {
			sub, _ = strconv.Atoi(m[3])
		}
		return CodeKey{Family: 0, Level: level, Project: project, Sub: sub, Code: code}
	}
	return CodeKey{Family: 1, Code: code}
}

// Less reports whether k orders strictly before other.
func (k CodeKey) Less(other CodeKey) bool {
	if k.Family != other.Family {
		return k.Family < other.Family
	}
	if k.Level != other.Level {
		return k.Level < other.Level
	}
	if k.Project != other.Project {
		return k.Project < other.Project
	}
	if k.Sub != other.Sub {
		return k.Sub < other.Sub
	}
	return k.Code < other.Code
}

// CodeLess is the convenience form over raw code strings.
func CodeLess(a, b string) bool {
	return ParseCode(a).Less(ParseCode(b))
}
