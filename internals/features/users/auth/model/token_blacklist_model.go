package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel holds access tokens invalidated by logout until they
// expire; a daily job purges stale rows.
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;primaryKey"`
	Token            string    `json:"-" gorm:"column:token;not null;index"`
	ExpiredAt        time.Time `json:"expired_at" gorm:"column:expired_at;not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}

func (m *TokenBlacklistModel) BeforeCreate(_ *gorm.DB) error {
	if m.TokenBlacklistID == uuid.Nil {
		m.TokenBlacklistID = uuid.New()
	}
	return nil
}
