package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"career-compass/internal/models"
	"career-compass/internal/repositories"
)

// PipelineService orchestrates the profile scoring and prediction pipeline:
// résumé analysis, quiz scoring, role prediction and niche generation. Each
// run is a single sequence of dependent steps; no step starts before its
// predecessor's result is durably stored.
type PipelineService interface {
	AnalyzeResume(ctx context.Context, userID, resumeText string) (map[string]int, error)
	SubmitQuiz(ctx context.Context, userID string, ratings []int) (*models.SubmitQuizResponse, error)
	CheckProgress(ctx context.Context, userID string) (*models.CheckProgressResponse, error)
}

type pipelineService struct {
	userRepo       repositories.UserRepository
	scoreRepo      repositories.ScoreRepository
	skillExtractor SkillExtractor
	scoring        ScoringService
	classifier     RoleClassifier
	nicheGen       NicheGenerator

	// Collapses concurrent quiz submissions per user: a double-click
	// resubmission joins the in-flight run instead of racing its writes.
	quizFlight singleflight.Group
}

func NewPipelineService(
	userRepo repositories.UserRepository,
	scoreRepo repositories.ScoreRepository,
	skillExtractor SkillExtractor,
	scoring ScoringService,
	classifier RoleClassifier,
	nicheGen NicheGenerator,
) PipelineService {
	return &pipelineService{
		userRepo:       userRepo,
		scoreRepo:      scoreRepo,
		skillExtractor: skillExtractor,
		scoring:        scoring,
		classifier:     classifier,
		nicheGen:       nicheGen,
	}
}

// AnalyzeResume implements PipelineService. It extracts the 17 skill scores
// from the résumé text, persists them, and advances onboarding to the quiz
// step.
func (p *pipelineService) AnalyzeResume(ctx context.Context, userID, resumeText string) (map[string]int, error) {
	if userID == "" {
		return nil, NewValidationError("user id is required")
	}

	scores, err := p.skillExtractor.ExtractSkills(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	if err := p.scoreRepo.SaveTechnical(&models.TechnicalScore{
		UserID: userID,
		Scores: scores,
	}); err != nil {
		return nil, err
	}

	user, err := p.userRepo.FindByID(userID)
	switch {
	case repositories.IsNotFound(err):
		if err := p.userRepo.Create(&models.User{ID: userID, ResumeDone: true}); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	case !user.ResumeDone:
		if err := p.userRepo.MarkResumeDone(userID); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ Resume analyzed for user %s", userID)
	return scores, nil
}

// SubmitQuiz implements PipelineService. Concurrent submissions for the same
// user are collapsed into one run through a single-flight group keyed by
// user id.
func (p *pipelineService) SubmitQuiz(ctx context.Context, userID string, ratings []int) (*models.SubmitQuizResponse, error) {
	if userID == "" {
		return nil, NewValidationError("user id is required")
	}

	v, err, _ := p.quizFlight.Do(userID, func() (interface{}, error) {
		return p.submitQuiz(ctx, userID, ratings)
	})
	if err != nil {
		return nil, err
	}

	return v.(*models.SubmitQuizResponse), nil
}

func (p *pipelineService) submitQuiz(ctx context.Context, userID string, ratings []int) (*models.SubmitQuizResponse, error) {
	traits, err := p.scoring.Score(ratings)
	if err != nil {
		return nil, err
	}

	technical, err := p.scoreRepo.FindTechnicalByUserID(userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, NewValidationError("resume analysis must be completed before the quiz")
		}
		return nil, err
	}

	if err := p.scoreRepo.SaveNonTechnical(&models.NonTechnicalScore{
		UserID: userID,
		Scores: traits,
	}); err != nil {
		return nil, err
	}

	features, err := AssembleFeatureVector(technical.Scores, traits)
	if err != nil {
		return nil, err
	}

	// From here on a failure leaves the persisted scores in place and the
	// quiz step still open; the user retries prediction by resubmitting.
	role, err := p.classifier.PredictRole(ctx, features)
	if err != nil {
		return nil, err
	}

	niches, err := p.nicheGen.Generate(ctx, role)
	if err != nil {
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			return nil, err
		}
		// One bounded retry with the stricter instruction keeps generation
		// cost predictable.
		log.Printf("⚠️  Niche generation returned a malformed list, retrying once: %v", err)
		if niches, err = p.nicheGen.GenerateStrict(ctx, role); err != nil {
			return nil, err
		}
	}

	if err := p.userRepo.CompleteQuiz(userID, role, niches); err != nil {
		return nil, fmt.Errorf("failed to record quiz completion: %w", err)
	}

	log.Printf("✅ Quiz scored for user %s, predicted role: %s", userID, role)

	return &models.SubmitQuizResponse{
		PredictedRole: role,
		NicheRoles:    niches,
	}, nil
}

// CheckProgress implements PipelineService. An unknown user is treated as
// new rather than an error.
func (p *pipelineService) CheckProgress(ctx context.Context, userID string) (*models.CheckProgressResponse, error) {
	if userID == "" {
		return nil, NewValidationError("user id is required")
	}

	user, err := p.userRepo.FindByID(userID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return &models.CheckProgressResponse{NextStep: models.StepResume}, nil
		}
		return nil, err
	}

	resp := &models.CheckProgressResponse{NextStep: user.NextStep()}
	if resp.NextStep == models.StepResult {
		resp.PredictedRole = user.PredictedRole
	}

	return resp, nil
}
