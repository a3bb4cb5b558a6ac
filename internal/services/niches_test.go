package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNichesPreservesOrder(t *testing.T) {
	gen := &stubGenerator{responses: []string{
		"```json\n[\"Backend Developer\", \"API Engineer\", \"Platform Engineer\", \"Site Reliability Engineer\", \"Integration Specialist\"]\n```",
	}}

	niches, err := NewNicheGenerator(gen).Generate(context.Background(), "Software Developer")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Backend Developer",
		"API Engineer",
		"Platform Engineer",
		"Site Reliability Engineer",
		"Integration Specialist",
	}, niches)
}

func TestGenerateNichesEmptyRole(t *testing.T) {
	gen := &stubGenerator{responses: []string{"[]"}}

	_, err := NewNicheGenerator(gen).Generate(context.Background(), "  ")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, gen.prompts)
}

func TestGenerateStrictUsesDifferentPrompt(t *testing.T) {
	response := `["A Role", "B Role", "C Role", "D Role", "E Role"]`
	gen := &stubGenerator{responses: []string{response, response}}
	niches := NewNicheGenerator(gen)

	_, err := niches.Generate(context.Background(), "Data Scientist")
	require.NoError(t, err)
	_, err = niches.GenerateStrict(context.Background(), "Data Scientist")
	require.NoError(t, err)

	require.Len(t, gen.prompts, 2)
	assert.NotEqual(t, gen.prompts[0], gen.prompts[1])
}

func TestParseNicheListRejectsBadShapes(t *testing.T) {
	cases := map[string]string{
		"too few":            `["a", "b", "c", "d"]`,
		"too many":           `["a", "b", "c", "d", "e", "f"]`,
		"not json":           `here are five roles: a, b, c, d, e`,
		"object not array":   `{"roles": ["a", "b", "c", "d", "e"]}`,
		"non-string element": `["a", "b", 3, "d", "e"]`,
		"empty element":      `["a", "b", "  ", "d", "e"]`,
		"duplicate element":  `["a", "b", "a", "d", "e"]`,
		"duplicate by trim":  `["a", "b", " a ", "d", "e"]`,
	}

	for name, payload := range cases {
		_, err := parseNicheList(payload)
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr, name)
	}
}

func TestParseNicheListTrimsTitles(t *testing.T) {
	niches, err := parseNicheList(`[" a ", "b", "c", "d", "e "]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, niches)
}
