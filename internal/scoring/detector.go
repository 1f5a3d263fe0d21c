package scoring

import "strings"

// TextSignalDetector reports whether a piece of free text carries a
// given signal. The rule scorer depends only on this interface so the
// substring matcher can later be swapped for something smarter without
// touching the scoring control flow.
type TextSignalDetector interface {
	Detect(text string) bool
}

// SubstringDetector matches when any of its terms appears in the text,
// case-insensitively. It is intentionally crude pattern matching, not
// semantic understanding.
type SubstringDetector struct {
	terms []string
}

// NewSubstringDetector builds a detector over the given terms. Terms are
// lowercased once at construction.
func NewSubstringDetector(terms ...string) *SubstringDetector {
	lowered := make([]string, len(terms))
	for i, t := range terms {
		lowered[i] = strings.ToLower(t)
	}
	return &SubstringDetector{terms: lowered}
}

func (d *SubstringDetector) Detect(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, term := range d.terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// Default keyword sets for the shipped detectors. Goal and impact terms
// reward descriptions that name deliberate work; the denylist catches
// the usual attention sinks.
var (
	goalTerms = []string{
		"goal", "objective", "milestone", "project", "deadline",
		"okr", "deliverable", "launch",
	}
	impactTerms = []string{
		"important", "critical", "key", "strategic", "high impact",
		"revenue", "client", "ship",
	}
	distractionTerms = []string{
		"youtube", "netflix", "instagram", "tiktok", "twitter",
		"facebook", "reddit", "twitch", "scrolling", "doomscroll",
	}
)

// DefaultDetectors returns the three detectors the activity scorer uses.
func DefaultDetectors() (goal, impact, distraction TextSignalDetector) {
	return NewSubstringDetector(goalTerms...),
		NewSubstringDetector(impactTerms...),
		NewSubstringDetector(distractionTerms...)
}
