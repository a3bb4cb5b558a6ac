package models

import "time"

// Onboarding steps the frontend routes on, in pipeline order.
const (
	StepResume = "resume"
	StepQuiz   = "quiz"
	StepResult = "result"
)

// User holds per-user onboarding progress. The ID comes from the external
// identity provider, so it is a plain string primary key rather than a
// generated UUID. ResumeDone and QuizDone are only ever flipped to true.
type User struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	ResumeDone    bool      `gorm:"not null;default:false" json:"resume_done"`
	QuizDone      bool      `gorm:"not null;default:false" json:"quiz_done"`
	PredictedRole *string   `gorm:"type:text" json:"predicted_role,omitempty"`
	NicheRoles    []string  `gorm:"serializer:json" json:"niche_roles,omitempty"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// NextStep derives the onboarding step to show. A nil user (record not yet
// created) starts at the resume step.
func (u *User) NextStep() string {
	switch {
	case u == nil || !u.ResumeDone:
		return StepResume
	case !u.QuizDone:
		return StepQuiz
	default:
		return StepResult
	}
}
