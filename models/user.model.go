package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID            string         `json:"id" gorm:"primaryKey"`
	WalletAddress string         `json:"walletAddress" gorm:"uniqueIndex;not null"`
	Username      string         `json:"username" gorm:"default:''"`
	Email         string         `json:"email" gorm:"default:''"`
	ProfileImage  string         `json:"profileImage" gorm:"default:''"`
	XP            int            `json:"xp" gorm:"default:0"`
	Badges        datatypes.JSON `json:"badges" gorm:"default:'[]'"`
	IsPro         bool           `json:"isPro" gorm:"default:false"`
	ProExpiresAt  *time.Time     `json:"proExpiresAt"`
	CreatedAt     time.Time      `json:"createdAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// BadgeList decodes the badges column into a string slice
func (u *User) BadgeList() []string {
	return decodeStringSet(u.Badges)
}

// decodeStringSet parses a JSON-array column; a broken or empty value reads as an empty set
func decodeStringSet(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// encodeStringSet serializes a string slice back into a JSON-array column
func encodeStringSet(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

// containsString reports membership in a decoded set
func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
