package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminModel is a back-office account. Login also accepts the env bootstrap
// credential pair, which maps to a fixed super_admin identity outside this
// table.
type AdminModel struct {
	AdminID       uuid.UUID `json:"admin_id" gorm:"column:admin_id;type:uuid;primaryKey"`
	AdminEmail    string    `json:"admin_email" gorm:"column:admin_email;uniqueIndex;not null"`
	AdminPassword string    `json:"-" gorm:"column:admin_password;not null"`
	AdminName     string    `json:"admin_name" gorm:"column:admin_name;not null"`
	AdminRole     string    `json:"admin_role" gorm:"column:admin_role;not null;default:admin"`
	AdminIsActive bool      `json:"admin_is_active" gorm:"column:admin_is_active;not null;default:true"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}

func (m *AdminModel) BeforeCreate(_ *gorm.DB) error {
	if m.AdminID == uuid.Nil {
		m.AdminID = uuid.New()
	}
	return nil
}
