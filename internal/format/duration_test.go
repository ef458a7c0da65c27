package format

import "testing"

func intp(n int) *int { return &n }

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		expected string
	}{
		{name: "range", min: intp(5), max: intp(7), expected: "5'-7'"},
		{name: "min equals max collapses", min: intp(7), max: intp(7), expected: "7'"},
		{name: "zero min uses max only", min: intp(0), max: intp(10), expected: "10'"},
		{name: "nil min uses max only", min: nil, max: intp(2), expected: "2'"},
		{name: "zero max renders nothing", min: intp(5), max: intp(0), expected: ""},
		{name: "nil max renders nothing", min: intp(5), max: nil, expected: ""},
		{name: "both nil", min: nil, max: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Duration(tt.min, tt.max); got != tt.expected {
				t.Errorf("Duration() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDurationBracket(t *testing.T) {
	if got := DurationBracket(intp(5), intp(7)); got != "[5'-7']" {
		t.Errorf("DurationBracket() = %q, want %q", got, "[5'-7']")
	}
	if got := DurationBracket(nil, nil); got != "" {
		t.Errorf("DurationBracket() = %q, want empty", got)
	}
	if got := DurationBracketInts(0, 3); got != "[3']" {
		t.Errorf("DurationBracketInts() = %q, want %q", got, "[3']")
	}
}

func TestDeckDuration(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		expected string
	}{
		{name: "range", min: intp(5), max: intp(7), expected: "5 ~ 7 '"},
		{name: "equal bounds collapse", min: intp(7), max: intp(7), expected: "7 '"},
		{name: "zero min uses max", min: intp(0), max: intp(10), expected: "10 '"},
		{name: "min only", min: intp(4), max: nil, expected: "4 '"},
		{name: "nothing", min: nil, max: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeckDuration(tt.min, tt.max); got != tt.expected {
				t.Errorf("DeckDuration() = %q, want %q", got, tt.expected)
			}
		})
	}
}
