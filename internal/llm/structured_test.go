package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scorePayload struct {
	Score     *int   `json:"score"`
	Reasoning string `json:"reasoning"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	got, err := ExtractJSON[scorePayload](`{"score": 85, "reasoning": "focused work"}`, nil)

	require.NoError(t, err)
	require.NotNil(t, got.Score)
	assert.Equal(t, 85, *got.Score)
	assert.Equal(t, "focused work", got.Reasoning)
}

func TestExtractJSON_CodeFenced(t *testing.T) {
	raw := "```json\n{\"score\": 42, \"reasoning\": \"mixed\"}\n```"

	got, err := ExtractJSON[scorePayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, 42, *got.Score)
}

func TestExtractJSON_WrappedInProse(t *testing.T) {
	raw := "Sure! Here is my assessment:\n{\"score\": 15, \"reasoning\": \"pure distraction\"}\nHope that helps."

	got, err := ExtractJSON[scorePayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, 15, *got.Score)
}

func TestExtractJSON_NestedBracesInString(t *testing.T) {
	raw := `{"score": 60, "reasoning": "matched pattern {goal} in text"}`

	got, err := ExtractJSON[scorePayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, "matched pattern {goal} in text", got.Reasoning)
}

func TestExtractJSON_TakesFirstBalancedBlock(t *testing.T) {
	raw := `{"score": 70, "reasoning": "first"} {"score": 10, "reasoning": "second"}`

	got, err := ExtractJSON[scorePayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, 70, *got.Score)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[scorePayload]("I cannot help with that.", nil)

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_UnbalancedBraces(t *testing.T) {
	_, err := ExtractJSON[scorePayload](`{"score": 50, "reasoning": "trunc`, nil)

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	validator := func(p scorePayload) error {
		if p.Score == nil {
			return errors.New("missing score")
		}
		return nil
	}

	_, err := ExtractJSON[scorePayload](`{"reasoning": "no score field"}`, validator)

	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_StripsComments(t *testing.T) {
	raw := `{
		"score": 30, // borderline
		"reasoning": "meh"
	}`

	got, err := ExtractJSON[scorePayload](raw, nil)

	require.NoError(t, err)
	assert.Equal(t, 30, *got.Score)
}

func TestExtractJSON_NormalizesLeadingDecimals(t *testing.T) {
	type confPayload struct {
		Confidence float64 `json:"confidence"`
	}

	got, err := ExtractJSON[confPayload](`{"confidence": .85}`, nil)

	require.NoError(t, err)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)
}
