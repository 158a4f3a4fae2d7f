package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rolecall/rolecall-backend/internal/dtos"
	"github.com/rolecall/rolecall-backend/internal/models"
)

// ApplicationService owns the user-to-posting relation: the applied flag on
// job listings and the at-most-one-application-per-pair rule.
type ApplicationService struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

func NewApplicationService(db *gorm.DB, logger *zap.SugaredLogger) *ApplicationService {
	return &ApplicationService{
		DB:     db,
		Logger: logger,
	}
}

// requireUser fails with ErrUserNotFound when the id does not resolve.
// Users are owned by the identity subsystem; this service never creates one.
func requireUser(tx *gorm.DB, userID string) error {
	var count int64
	if err := tx.Model(&models.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

func requireJob(tx *gorm.DB, jobID string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := tx.First(&job, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobsForUser returns every posting annotated with whether the user has
// applied to it. The applied set is loaded in a single query and checked via
// map membership, so the cost stays linear in postings plus applications.
func (s *ApplicationService) ListJobsForUser(ctx context.Context, userID string) ([]dtos.JobWithStatus, error) {
	jobs := make([]dtos.JobWithStatus, 0)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}

		var postings []models.JobPosting
		if err := tx.Find(&postings).Error; err != nil {
			return err
		}

		var appliedIDs []string
		err := tx.Model(&models.Application{}).
			Where("user_id = ?", userID).
			Pluck("job_posting_id", &appliedIDs).Error
		if err != nil {
			return err
		}
		applied := make(map[string]struct{}, len(appliedIDs))
		for _, id := range appliedIDs {
			applied[id] = struct{}{}
		}

		for _, p := range postings {
			_, hasApplied := applied[p.ID]
			jobs = append(jobs, dtos.JobWithStatus{
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				HasApplied:  hasApplied,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetJobDetail returns one posting with the user's applied flag.
func (s *ApplicationService) GetJobDetail(ctx context.Context, jobID, userID string) (*dtos.JobWithStatus, error) {
	var detail dtos.JobWithStatus
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		job, err := requireJob(tx, jobID)
		if err != nil {
			return err
		}

		var count int64
		err = tx.Model(&models.Application{}).
			Where("user_id = ? AND job_posting_id = ?", userID, jobID).
			Count(&count).Error
		if err != nil {
			return err
		}

		detail = dtos.JobWithStatus{
			ID:          job.ID,
			Title:       job.Title,
			Description: job.Description,
			HasApplied:  count > 0,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// Apply creates the application for (user, job). The pre-check exists to
// produce a friendly error; the unique index on (user_id, job_posting_id)
// is the authoritative duplicate signal when two applies for the same pair
// race past the pre-check.
func (s *ApplicationService) Apply(ctx context.Context, jobID, userID string) (*models.Application, *models.JobPosting, error) {
	var (
		app models.Application
		job *models.JobPosting
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}

		var err error
		job, err = requireJob(tx, jobID)
		if err != nil {
			return err
		}

		var count int64
		err = tx.Model(&models.Application{}).
			Where("user_id = ? AND job_posting_id = ?", userID, jobID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyApplied
		}

		app = models.Application{
			UserID:       userID,
			JobPostingID: jobID,
			Status:       models.StatusApplied,
		}
		if err := tx.Create(&app).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyApplied
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	s.Logger.Infow("application created", "application_id", app.ID, "job_id", jobID, "user_id", userID)
	return &app, job, nil
}

// ListApplicationsForUser joins the user's applications with their postings.
func (s *ApplicationService) ListApplicationsForUser(ctx context.Context, userID string) ([]dtos.UserApplicationRow, error) {
	rows := make([]dtos.UserApplicationRow, 0)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		return tx.Model(&models.Application{}).
			Select("applications.id AS application_id, " +
				"job_postings.id AS job_id, " +
				"job_postings.title AS job_title, " +
				"job_postings.description AS job_description, " +
				"applications.status AS status").
			Joins("INNER JOIN job_postings ON job_postings.id = applications.job_posting_id").
			Where("applications.user_id = ?", userID).
			Scan(&rows).Error
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAllApplications is the administrative view across every user and
// posting. Failures propagate; an empty result means there are genuinely no
// applications.
func (s *ApplicationService) ListAllApplications(ctx context.Context) ([]dtos.AdminApplicationRow, error) {
	rows := make([]dtos.AdminApplicationRow, 0)
	err := s.DB.WithContext(ctx).Model(&models.Application{}).
		Select("applications.id AS application_id, " +
			"job_postings.id AS job_id, " +
			"job_postings.title AS job_title, " +
			"users.full_name AS user_name, " +
			"users.email AS user_email, " +
			"applications.status AS status").
		Joins("INNER JOIN job_postings ON job_postings.id = applications.job_posting_id").
		Joins("INNER JOIN users ON users.id = applications.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
