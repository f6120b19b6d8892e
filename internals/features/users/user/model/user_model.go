package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is one member profile. Account deletion flips user_status to
// "deleted"; rows are never removed.
type UserModel struct {
	UserID        uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey"`
	UserEmail     string     `json:"user_email" gorm:"column:user_email;uniqueIndex;not null"`
	UserPassword  *string    `json:"-" gorm:"column:user_password"` // null for Google-only accounts
	UserName      string     `json:"user_name" gorm:"column:user_name;not null"`
	UserPhone     *string    `json:"user_phone,omitempty" gorm:"column:user_phone"`
	UserBirthDate *time.Time `json:"user_birth_date,omitempty" gorm:"column:user_birth_date;type:date"`
	UserAddress   *string    `json:"user_address,omitempty" gorm:"column:user_address"`
	UserRole      string     `json:"user_role" gorm:"column:user_role;not null;default:user"`
	UserStatus    string     `json:"user_status" gorm:"column:user_status;not null;default:active"`
	UserGoogleSub *string    `json:"-" gorm:"column:user_google_sub;uniqueIndex"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
