package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenModel stores the HMAC hash of an issued refresh token.
// Rotation deletes the old row and inserts the new hash.
type RefreshTokenModel struct {
	RefreshTokenID uuid.UUID `json:"refresh_token_id" gorm:"column:refresh_token_id;type:uuid;primaryKey"`
	UserID         uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;not null;index"`
	Token          string    `json:"-" gorm:"column:token;not null;uniqueIndex"`
	ExpiresAt      time.Time `json:"expires_at" gorm:"column:expires_at;not null"`
	UserAgent      *string   `json:"user_agent,omitempty" gorm:"column:user_agent"`
	IP             *string   `json:"ip,omitempty" gorm:"column:ip"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

func (m *RefreshTokenModel) BeforeCreate(_ *gorm.DB) error {
	if m.RefreshTokenID == uuid.Nil {
		m.RefreshTokenID = uuid.New()
	}
	return nil
}
