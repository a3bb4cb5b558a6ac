package repositories

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"career-compass/internal/models"
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	Create(user *models.User) error
	MarkResumeDone(id string) error
	CompleteQuiz(id string, predictedRole string, nicheRoles []string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Create(user *models.User) error {
	// Upsert keeps account recreation idempotent.
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) MarkResumeDone(id string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"resume_done": true,
			"updated_at":  time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to mark resume done: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found: %w", gorm.ErrRecordNotFound)
	}

	return nil
}

// CompleteQuiz writes the quiz-done flag, predicted role and niche list as a
// single update so the user record never carries a role without the flag or
// the other way around.
func (r *userRepository) CompleteQuiz(id string, predictedRole string, nicheRoles []string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quiz_done":      true,
			"predicted_role": predictedRole,
			"niche_roles":    nicheRoles,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to complete quiz: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found: %w", gorm.ErrRecordNotFound)
	}

	return nil
}
