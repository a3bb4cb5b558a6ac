package services

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"strings"
)

const (
	SkillScoreMin = 0
	SkillScoreMax = 6

	skillExtractionTemperature = 0.3
)

// SkillExtractor derives the 17 technical skill scores from résumé text via
// the generative text service. The response is untrusted: it is validated
// strictly (all keys present, integers in range) and the call is retried at
// most once with a stricter instruction before failing with FormatError.
type SkillExtractor interface {
	ExtractSkills(ctx context.Context, resumeText string) (map[string]int, error)
}

type skillExtractor struct {
	generator TextGenerator
	prompts   *PromptBuilder
}

func NewSkillExtractor(generator TextGenerator) SkillExtractor {
	return &skillExtractor{
		generator: generator,
		prompts:   NewPromptBuilder(),
	}
}

// ExtractSkills implements SkillExtractor.
func (s *skillExtractor) ExtractSkills(ctx context.Context, resumeText string) (map[string]int, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, NewValidationError("resume text must not be empty")
	}

	response, err := s.generator.GenerateText(ctx, s.prompts.BuildSkillExtractionPrompt(resumeText), skillExtractionTemperature)
	if err != nil {
		return nil, &UpstreamError{Service: "text generation", StatusCode: 0, Message: err.Error()}
	}

	scores, err := parseSkillScores(response)
	if err == nil {
		return scores, nil
	}

	// One bounded retry with a stricter instruction; a second malformed
	// response propagates as FormatError.
	log.Printf("⚠️  Skill extraction response malformed, retrying once: %v", err)

	response, retryErr := s.generator.GenerateText(ctx, s.prompts.BuildSkillExtractionRetryPrompt(resumeText), skillExtractionTemperature)
	if retryErr != nil {
		return nil, &UpstreamError{Service: "text generation", StatusCode: 0, Message: retryErr.Error()}
	}

	return parseSkillScores(response)
}

func parseSkillScores(response string) (map[string]int, error) {
	var raw map[string]float64
	if err := json.Unmarshal([]byte(extractJSON(response)), &raw); err != nil {
		return nil, NewFormatError("skill scores are not a JSON object: %v", err)
	}

	scores := make(map[string]int, len(SkillKeys))
	for _, key := range SkillKeys {
		v, ok := raw[key]
		if !ok {
			return nil, NewFormatError("skill scores missing subject %q", key)
		}
		if v != math.Trunc(v) {
			return nil, NewFormatError("score for %q is not an integer: %v", key, v)
		}
		score := int(v)
		if score < SkillScoreMin || score > SkillScoreMax {
			return nil, NewFormatError("score for %q out of range [%d,%d]: %d", key, SkillScoreMin, SkillScoreMax, score)
		}
		scores[key] = score
	}

	return scores, nil
}
