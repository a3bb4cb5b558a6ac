package services

import (
	"context"
	"encoding/json"
	"strings"
)

// NicheCount is the exact number of niche titles the generator must return.
const NicheCount = 5

const nicheTemperature = 0.7

// NicheGenerator asks the text service for exactly five distinct nicher
// variants of a predicted role. It performs no internal retry: a malformed
// response fails with FormatError and the orchestrator decides whether to
// call GenerateStrict once or surface the error.
type NicheGenerator interface {
	Generate(ctx context.Context, role string) ([]string, error)
	GenerateStrict(ctx context.Context, role string) ([]string, error)
}

type nicheGenerator struct {
	generator TextGenerator
	prompts   *PromptBuilder
}

func NewNicheGenerator(generator TextGenerator) NicheGenerator {
	return &nicheGenerator{
		generator: generator,
		prompts:   NewPromptBuilder(),
	}
}

// Generate implements NicheGenerator.
func (n *nicheGenerator) Generate(ctx context.Context, role string) ([]string, error) {
	return n.generate(ctx, role, n.prompts.BuildNichePrompt(role))
}

// GenerateStrict implements NicheGenerator. It repeats the request with the
// stricter follow-up instruction.
func (n *nicheGenerator) GenerateStrict(ctx context.Context, role string) ([]string, error) {
	return n.generate(ctx, role, n.prompts.BuildNicheRetryPrompt(role))
}

func (n *nicheGenerator) generate(ctx context.Context, role, prompt string) ([]string, error) {
	if strings.TrimSpace(role) == "" {
		return nil, NewValidationError("predicted role must not be empty")
	}

	response, err := n.generator.GenerateText(ctx, prompt, nicheTemperature)
	if err != nil {
		return nil, &UpstreamError{Service: "text generation", StatusCode: 0, Message: err.Error()}
	}

	return parseNicheList(response)
}

func parseNicheList(response string) ([]string, error) {
	var raw []interface{}
	if err := json.Unmarshal([]byte(extractJSON(response)), &raw); err != nil {
		return nil, NewFormatError("niche list is not a JSON array: %v", err)
	}

	if len(raw) != NicheCount {
		return nil, NewFormatError("niche list must contain exactly %d titles, got %d", NicheCount, len(raw))
	}

	// Generation order is preserved; the list is never sorted.
	niches := make([]string, 0, NicheCount)
	seen := make(map[string]struct{}, NicheCount)
	for i, v := range raw {
		title, ok := v.(string)
		if !ok {
			return nil, NewFormatError("niche list element %d is not a string", i)
		}
		title = strings.TrimSpace(title)
		if title == "" {
			return nil, NewFormatError("niche list element %d is empty", i)
		}
		if _, dup := seen[title]; dup {
			return nil, NewFormatError("niche list element %d duplicates %q", i, title)
		}
		seen[title] = struct{}{}
		niches = append(niches, title)
	}

	return niches, nil
}
