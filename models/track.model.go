package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Track represents a structured learning path composed of ordered lessons
type Track struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Category     string    `json:"category" gorm:"not null"`
	Difficulty   string    `json:"difficulty" gorm:"default:'beginner'"` // beginner, intermediate, advanced
	Icon         string    `json:"icon"`
	Image        string    `json:"image"`
	TotalLessons int       `json:"totalLessons" gorm:"default:0"`
	IsPaid       bool      `json:"isPaid" gorm:"default:false"`
	Price        float64   `json:"price" gorm:"default:0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (t *Track) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// Lesson belongs to exactly one track; OrderIndex defines the display sequence
type Lesson struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	TrackID     string    `json:"trackId" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Content     string    `json:"content" gorm:"type:text"`
	VideoURL    string    `json:"videoUrl"`
	Duration    int       `json:"duration"`
	OrderIndex  int       `json:"orderIndex"`
	Level       string    `json:"level"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// Quiz holds a question set for a lesson; zero-or-one per lesson
type Quiz struct {
	ID           string         `json:"id" gorm:"primaryKey"`
	LessonID     string         `json:"lessonId" gorm:"index;not null"`
	Title        string         `json:"title" gorm:"not null"`
	Questions    datatypes.JSON `json:"questions" gorm:"not null"`
	PassingScore int            `json:"passingScore" gorm:"default:70"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (q *Quiz) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
