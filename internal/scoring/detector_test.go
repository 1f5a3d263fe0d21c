package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstringDetector_CaseInsensitive(t *testing.T) {
	d := NewSubstringDetector("YouTube", "netflix")

	assert.True(t, d.Detect("watched youtube all night"))
	assert.True(t, d.Detect("NETFLIX binge"))
	assert.False(t, d.Detect("read a book"))
}

func TestSubstringDetector_EmptyText(t *testing.T) {
	d := NewSubstringDetector("goal")

	assert.False(t, d.Detect(""))
}

func TestSubstringDetector_MatchesInsideWords(t *testing.T) {
	// Substring semantics are intentional: "subgoal" still counts.
	d := NewSubstringDetector("goal")

	assert.True(t, d.Detect("finished a subgoal"))
}
