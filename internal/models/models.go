package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusApplied is the only application status in the current flow.
// New statuses must be added here together with their allowed transitions.
const StatusApplied = "applied"

type JobPosting struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	// 'omitempty' prevents infinite loops when fetching a JobPosting -> Applications -> JobPosting -> ...
	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

func (p *JobPosting) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// User is owned by the external identity subsystem. This service only reads
// it: existence checks before applying, and name/email in admin views.
type User struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	FullName       string `json:"full_name"`
	HashedPassword string `gorm:"not null" json:"-"`
	IsActive       bool   `gorm:"default:true" json:"is_active"`
	IsSuperuser    bool   `gorm:"default:false" json:"is_superuser"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Application links a user to a job posting. The composite unique index is
// the authoritative duplicate-application guard: two concurrent applies for
// the same pair can both pass the service-level pre-check, but only one
// insert survives.
type Application struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"user_id"`
	User   User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	JobPostingID string     `gorm:"type:uuid;not null;uniqueIndex:idx_applications_user_job" json:"job_posting_id"`
	JobPosting   JobPosting `json:"-"`

	Status string `gorm:"not null;default:'applied'" json:"status"`
}

func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
