package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser grants access to the admin endpoints by wallet address
type AdminUser struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	WalletAddress string    `json:"walletAddress" gorm:"uniqueIndex;not null"`
	Role          string    `json:"role" gorm:"default:'moderator'"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (a *AdminUser) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
