package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResourceModel is one downloadable file (forms, guides, past exam papers).
// The file itself lives on the object store.
type ResourceModel struct {
	ResourceID            uuid.UUID `json:"resource_id" gorm:"column:resource_id;type:uuid;primaryKey"`
	ResourceTitle         string    `json:"resource_title" gorm:"column:resource_title;not null"`
	ResourceDescription   *string   `json:"resource_description,omitempty" gorm:"column:resource_description;type:text"`
	ResourceCategory      *string   `json:"resource_category,omitempty" gorm:"column:resource_category"`
	ResourceFileURL       string    `json:"resource_file_url" gorm:"column:resource_file_url;not null"`
	ResourceFileName      string    `json:"resource_file_name" gorm:"column:resource_file_name;not null"`
	ResourceFileSize      int64     `json:"resource_file_size" gorm:"column:resource_file_size;not null;default:0"`
	ResourceDownloadCount int       `json:"resource_download_count" gorm:"column:resource_download_count;not null;default:0"`
	CreatedAt             time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt             time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (ResourceModel) TableName() string {
	return "resources"
}

func (m *ResourceModel) BeforeCreate(_ *gorm.DB) error {
	if m.ResourceID == uuid.Nil {
		m.ResourceID = uuid.New()
	}
	return nil
}
