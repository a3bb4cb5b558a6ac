package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSkillExtractionPrompt creates the prompt that scores a résumé against
// the 17 canonical skills. The subject list is rendered from SkillKeys so
// the prompt can never drift from the feature-vector order.
func (pb *PromptBuilder) BuildSkillExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an HR manager who is an expert at determining an applicant's proficiency for a certain skill by looking at their CV/resume.
You can gain an idea of their level of expertise by looking at how long they have been doing a relevant job, if they have any relevant skills,
the number of relevant projects they've worked on, so on and so forth.
Given the text in a CV/Resume, I want you to score the applicant's expertise on the following subjects on an integer scale of 0-6
(0 being a complete novice and 6 being a master):
%s

Here is the cv/resume that you have to work with:
-----
%s
-----

ONLY return a JSON object that has ALL the subjects as keys and the respective scores as integer values. Example:
{
  "Database Fundamentals": 3,
  "Computer Architecture": 1,
  "Distributed Computing Systems": 4
}`, formatSubjectList(), resumeText)
}

// BuildSkillExtractionRetryPrompt is the stricter follow-up used after a
// malformed first response.
func (pb *PromptBuilder) BuildSkillExtractionRetryPrompt(resumeText string) string {
	return pb.BuildSkillExtractionPrompt(resumeText) + fmt.Sprintf(`

IMPORTANT: Your previous answer was not valid. Respond with raw JSON only:
no markdown fences, no commentary, exactly the %d subject keys listed above,
every value an integer between 0 and 6.`, len(SkillKeys))
}

// BuildNichePrompt creates the prompt that generates five nicher variants of
// a predicted role.
func (pb *PromptBuilder) BuildNichePrompt(role string) string {
	return fmt.Sprintf(`You are a tech expert that is familiar with the roles in the industry.
Given a job title, your task is to generate 5 jobs that are nicher versions of the given job title.
The job title is %s
Output your response as a JSON array of 5 strings. Example:
["Job 1", "Job 2", "Job 3", "Job 4", "Job 5"]`, role)
}

// BuildNicheRetryPrompt is the stricter follow-up used after a malformed
// first response.
func (pb *PromptBuilder) BuildNicheRetryPrompt(role string) string {
	return pb.BuildNichePrompt(role) + `

IMPORTANT: Your previous answer was not valid. Respond with a raw JSON array
only: no markdown fences, no commentary, exactly 5 string elements.`
}

func formatSubjectList() string {
	var b strings.Builder
	for _, key := range SkillKeys {
		b.WriteString("- ")
		b.WriteString(key)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// extractJSON strips markdown fences and surrounding prose from an LLM
// response, keeping the outermost JSON object or array.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj && (startArr == -1 || startObj < startArr) {
		return text[startObj : endObj+1]
	}
	if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return strings.TrimSpace(text)
}
