package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProgress tracks one user's progress through one track.
// The (user, track) pair is unique; duplicate enrollment attempts reuse the existing row.
type UserProgress struct {
	ID               string         `json:"id" gorm:"primaryKey"`
	UserID           string         `json:"userId" gorm:"uniqueIndex:idx_user_track;not null"`
	TrackID          string         `json:"trackId" gorm:"uniqueIndex:idx_user_track;not null"`
	EnrolledAt       time.Time      `json:"enrolledAt"`
	CompletedLessons datatypes.JSON `json:"completedLessons" gorm:"default:'[]'"`
	CompletedQuizzes datatypes.JSON `json:"completedQuizzes" gorm:"default:'[]'"`
	TotalXP          int            `json:"totalXP" gorm:"default:0"`
	IsCompleted      bool           `json:"isCompleted" gorm:"default:false"`
	CompletionDate   *time.Time     `json:"completionDate"`
}

func (p *UserProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.EnrolledAt.IsZero() {
		p.EnrolledAt = time.Now()
	}
	return nil
}

// LessonIDs decodes the completed-lesson set
func (p *UserProgress) LessonIDs() []string {
	return decodeStringSet(p.CompletedLessons)
}

// QuizIDs decodes the completed-quiz set
func (p *UserProgress) QuizIDs() []string {
	return decodeStringSet(p.CompletedQuizzes)
}

// HasLesson reports whether the lesson is already marked complete
func (p *UserProgress) HasLesson(lessonID string) bool {
	return containsString(p.LessonIDs(), lessonID)
}

// HasQuiz reports whether the quiz is already marked complete
func (p *UserProgress) HasQuiz(quizID string) bool {
	return containsString(p.QuizIDs(), quizID)
}

// AddLesson records a lesson completion; the set only grows
func (p *UserProgress) AddLesson(lessonID string) {
	p.CompletedLessons = encodeStringSet(append(p.LessonIDs(), lessonID))
}

// AddQuiz records a quiz completion; the set only grows
func (p *UserProgress) AddQuiz(quizID string) {
	p.CompletedQuizzes = encodeStringSet(append(p.QuizIDs(), quizID))
}

// Certificate is an issued completion certificate. Append-only, no
// uniqueness constraint: a user may hold several for the same track.
type Certificate struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"userId" gorm:"index;not null"`
	TrackID        string    `json:"trackId" gorm:"index;not null"`
	CertificateURL string    `json:"certificateUrl"`
	NFTTokenID     string    `json:"nftTokenId"`
	IssuedAt       time.Time `json:"issuedAt"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.IssuedAt.IsZero() {
		c.IssuedAt = time.Now()
	}
	return nil
}
