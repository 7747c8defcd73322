package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Job is a posting on the job board. Deactivated via IsActive, never deleted.
type Job struct {
	ID             string         `json:"id" gorm:"primaryKey"`
	Title          string         `json:"title" gorm:"not null"`
	Company        string         `json:"company" gorm:"not null"`
	Description    string         `json:"description"`
	Category       string         `json:"category" gorm:"not null"`
	Location       string         `json:"location" gorm:"default:'Remote'"`
	SalaryMin      int            `json:"salaryMin"`
	SalaryMax      int            `json:"salaryMax"`
	RequiredSkills datatypes.JSON `json:"requiredSkills" gorm:"default:'[]'"`
	ApplyURL       string         `json:"applyUrl"`
	IsSponsored    bool           `json:"isSponsored" gorm:"default:false"`
	IsActive       bool           `json:"isActive" gorm:"default:true"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}

// SkillList decodes the required-skills column
func (j *Job) SkillList() []string {
	return decodeStringSet(j.RequiredSkills)
}

// JobApplication is one row per apply action. Duplicates are allowed:
// there is no uniqueness constraint on (user, job).
type JobApplication struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index;not null"`
	JobID     string    `json:"jobId" gorm:"index;not null"`
	AppliedAt time.Time `json:"appliedAt"`
	Status    string    `json:"status" gorm:"default:'pending'"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now()
	}
	return nil
}

// SavedJob is keyed by (user, job); the first save wins and later saves are ignored
type SavedJob struct {
	ID      string    `json:"id" gorm:"primaryKey"`
	UserID  string    `json:"userId" gorm:"uniqueIndex:idx_user_job;not null"`
	JobID   string    `json:"jobId" gorm:"uniqueIndex:idx_user_job;not null"`
	SavedAt time.Time `json:"savedAt"`
}

func (s *SavedJob) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.SavedAt.IsZero() {
		s.SavedAt = time.Now()
	}
	return nil
}
