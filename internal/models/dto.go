package models

type AnalyzeResumeRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	ResumeText string `json:"resume_text" validate:"required"`
}

type AnalyzeResumeResponse struct {
	TechnicalScores map[string]int `json:"technical_scores"`
	NextStep        string         `json:"next_step"`
}

type SubmitQuizRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Ratings []int  `json:"ratings" validate:"required"`
}

type SubmitQuizResponse struct {
	PredictedRole string   `json:"predicted_role"`
	NicheRoles    []string `json:"niche_roles"`
}

type CheckProgressResponse struct {
	NextStep      string  `json:"next_step"`
	PredictedRole *string `json:"predicted_role,omitempty"`
}

type JobSearchResponse struct {
	Jobs []JobListing `json:"jobs"`
}
