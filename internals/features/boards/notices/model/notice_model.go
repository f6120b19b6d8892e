package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notice categories
const (
	CategoryGeneral = "general"
	CategoryEvent   = "event"
	CategoryRecruit = "recruit"
	CategoryExam    = "exam"
)

func IsValidCategory(s string) bool {
	switch s {
	case CategoryGeneral, CategoryEvent, CategoryRecruit, CategoryExam:
		return true
	}
	return false
}

// NoticeModel is one announcement post. Pinned notices sort above the rest on
// the public list; unpublished rows are only visible to admins.
type NoticeModel struct {
	NoticeID          uuid.UUID `json:"notice_id" gorm:"column:notice_id;type:uuid;primaryKey"`
	NoticeTitle       string    `json:"notice_title" gorm:"column:notice_title;not null"`
	NoticeContent     string    `json:"notice_content" gorm:"column:notice_content;type:text;not null"`
	NoticeCategory    string    `json:"notice_category" gorm:"column:notice_category;not null;default:general;index"`
	NoticeAuthor      *string   `json:"notice_author,omitempty" gorm:"column:notice_author"`
	NoticeIsPublished bool      `json:"notice_is_published" gorm:"column:notice_is_published;not null;default:false"`
	NoticeIsPinned    bool      `json:"notice_is_pinned" gorm:"column:notice_is_pinned;not null;default:false"`
	NoticeViewCount   int       `json:"notice_view_count" gorm:"column:notice_view_count;not null;default:0"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (NoticeModel) TableName() string {
	return "notices"
}

func (m *NoticeModel) BeforeCreate(_ *gorm.DB) error {
	if m.NoticeID == uuid.Nil {
		m.NoticeID = uuid.New()
	}
	return nil
}
