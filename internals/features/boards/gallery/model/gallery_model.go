package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GalleryModel is one photo post. The display copy and thumbnail live on the
// object store; only their public URLs are kept here.
type GalleryModel struct {
	GalleryID           uuid.UUID `json:"gallery_id" gorm:"column:gallery_id;type:uuid;primaryKey"`
	GalleryTitle        string    `json:"gallery_title" gorm:"column:gallery_title;not null"`
	GalleryDescription  *string   `json:"gallery_description,omitempty" gorm:"column:gallery_description;type:text"`
	GalleryFileURL      string    `json:"gallery_file_url" gorm:"column:gallery_file_url;not null"`
	GalleryThumbnailURL string    `json:"gallery_thumbnail_url" gorm:"column:gallery_thumbnail_url;not null"`
	CreatedAt           time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt           time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (GalleryModel) TableName() string {
	return "galleries"
}

func (m *GalleryModel) BeforeCreate(_ *gorm.DB) error {
	if m.GalleryID == uuid.Nil {
		m.GalleryID = uuid.New()
	}
	return nil
}
