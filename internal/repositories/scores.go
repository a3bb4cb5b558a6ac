package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"career-compass/internal/models"
)

// ScoreRepository stores the per-user TechnicalScore and NonTechnicalScore
// documents. Saves are upserts: a quiz or résumé resubmission overwrites the
// previous document, last writer wins.
type ScoreRepository interface {
	SaveTechnical(score *models.TechnicalScore) error
	FindTechnicalByUserID(userID string) (*models.TechnicalScore, error)
	SaveNonTechnical(score *models.NonTechnicalScore) error
	FindNonTechnicalByUserID(userID string) (*models.NonTechnicalScore, error)
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) SaveTechnical(score *models.TechnicalScore) error {
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(score).Error; err != nil {
		return fmt.Errorf("failed to save technical scores: %w", err)
	}
	return nil
}

func (r *scoreRepository) FindTechnicalByUserID(userID string) (*models.TechnicalScore, error) {
	var score models.TechnicalScore
	if err := r.db.Where("user_id = ?", userID).First(&score).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("technical scores not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find technical scores: %w", err)
	}
	return &score, nil
}

func (r *scoreRepository) SaveNonTechnical(score *models.NonTechnicalScore) error {
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(score).Error; err != nil {
		return fmt.Errorf("failed to save non-technical scores: %w", err)
	}
	return nil
}

func (r *scoreRepository) FindNonTechnicalByUserID(userID string) (*models.NonTechnicalScore, error) {
	var score models.NonTechnicalScore
	if err := r.db.Where("user_id = ?", userID).First(&score).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("non-technical scores not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find non-technical scores: %w", err)
	}
	return &score, nil
}
