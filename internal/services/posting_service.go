package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rolecall/rolecall-backend/internal/dtos"
	"github.com/rolecall/rolecall-backend/internal/models"
)

type JobPostingService struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

func NewJobPostingService(db *gorm.DB, logger *zap.SugaredLogger) *JobPostingService {
	return &JobPostingService{
		DB:     db,
		Logger: logger,
	}
}

func (s *JobPostingService) Create(ctx context.Context, req *dtos.JobPostingCreateRequest) (*models.JobPosting, error) {
	posting := &models.JobPosting{
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.DB.WithContext(ctx).Create(posting).Error; err != nil {
		return nil, err
	}
	s.Logger.Infow("job posting created", "job_id", posting.ID, "title", posting.Title)
	return posting, nil
}

// List returns all postings. No ordering is guaranteed.
func (s *JobPostingService) List(ctx context.Context) ([]models.JobPosting, error) {
	postings := make([]models.JobPosting, 0)
	if err := s.DB.WithContext(ctx).Find(&postings).Error; err != nil {
		return nil, err
	}
	return postings, nil
}

func (s *JobPostingService) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	var posting models.JobPosting
	err := s.DB.WithContext(ctx).First(&posting, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &posting, nil
}

// Update replaces title and description in place. Both fields are required;
// partial updates are not supported.
func (s *JobPostingService) Update(ctx context.Context, id string, req *dtos.JobPostingUpdateRequest) (*models.JobPosting, error) {
	var posting models.JobPosting
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&posting, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return err
		}
		posting.Title = req.Title
		posting.Description = req.Description
		return tx.Save(&posting).Error
	})
	if err != nil {
		return nil, err
	}
	return &posting, nil
}

// Delete removes the posting and its applications in one transaction.
// The explicit delete of applications mirrors the ON DELETE CASCADE
// constraint, so the policy holds even where the store has foreign-key
// enforcement switched off.
func (s *JobPostingService) Delete(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_posting_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.JobPosting{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrJobNotFound
		}
		s.Logger.Infow("job posting deleted", "job_id", id)
		return nil
	})
}
