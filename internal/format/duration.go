package format

import "fmt"

// Duration renders the agenda duration for a (min, max) pair:
// "5'-7'" when both are present, differ and min > 0; "7'" when only
// the max is meaningful; empty when the max is absent or zero.
func Duration(min, max *int) string {
	if min != nil && max != nil && *min > 0 && *min != *max {
		return fmt.Sprintf("%d'-%d'", *min, *max)
	}
	if max != nil && *max > 0 {
		return fmt.Sprintf("%d'", *max)
	}
	return ""
}

// DurationBracket is the machine-consumed variant used on the PowerBI
// agenda and the objectives block: "[5'-7']" / "[7']".
func DurationBracket(min, max *int) string {
	d := Duration(min, max)
	if d == "" {
		return ""
	}
	return "[" + d + "]"
}

// DurationBracketInts is DurationBracket over plain ints where zero
// means absent, as stored on speech details.
func DurationBracketInts(min, max int) string {
	var pmin, pmax *int
	if min > 0 {
		pmin = &min
	}
	if max > 0 {
		pmax = &max
	}
	return DurationBracket(pmin, pmax)
}

// DeckDuration renders the deck duration variant: "5 ~ 7 '" when both
// bounds are meaningful and differ, otherwise the single available
// bound as "7 '".
func DeckDuration(min, max *int) string {
	if min != nil && max != nil && *min > 0 && *max > 0 && *min != *max {
		return fmt.Sprintf("%d ~ %d '", *min, *max)
	}
	if max != nil && *max > 0 {
		return fmt.Sprintf("%d '", *max)
	}
	if min != nil && *min > 0 {
		return fmt.Sprintf("%d '", *min)
	}
	return ""
}
