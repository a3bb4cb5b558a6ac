package models

import "time"

// TechnicalScore is the per-user document holding the 17 skill scores (0-6)
// extracted from the résumé. Written once per résumé analysis.
type TechnicalScore struct {
	UserID    string         `gorm:"type:text;primaryKey" json:"user_id"`
	Scores    map[string]int `gorm:"serializer:json;not null" json:"scores"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (TechnicalScore) TableName() string {
	return "technical_scores"
}

// NonTechnicalScore is the per-user document holding the 10 normalized
// personality/values trait scores derived from the quiz.
type NonTechnicalScore struct {
	UserID    string             `gorm:"type:text;primaryKey" json:"user_id"`
	Scores    map[string]float64 `gorm:"serializer:json;not null" json:"scores"`
	CreatedAt time.Time          `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time          `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (NonTechnicalScore) TableName() string {
	return "non_technical_scores"
}
