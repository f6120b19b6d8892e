package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "certassoc_backend/internals/features/boards/notices/model"
)

/* =========================
   REQUEST
   ========================= */

type NoticeCreateRequest struct {
	NoticeTitle       string  `json:"notice_title" validate:"required,min=1,max=300"`
	NoticeContent     string  `json:"notice_content" validate:"required"`
	NoticeCategory    string  `json:"notice_category" validate:"omitempty,oneof=general event recruit exam"`
	NoticeAuthor      *string `json:"notice_author" validate:"omitempty,max=100"`
	NoticeIsPublished *bool   `json:"notice_is_published"`
	NoticeIsPinned    *bool   `json:"notice_is_pinned"`
}

func (r *NoticeCreateRequest) Normalize() {
	r.NoticeTitle = strings.TrimSpace(r.NoticeTitle)
	if r.NoticeCategory == "" {
		r.NoticeCategory = model.CategoryGeneral
	}
	if r.NoticeAuthor != nil {
		a := strings.TrimSpace(*r.NoticeAuthor)
		if a == "" {
			r.NoticeAuthor = nil
		} else {
			r.NoticeAuthor = &a
		}
	}
}

func (r *NoticeCreateRequest) ToModel() *model.NoticeModel {
	m := &model.NoticeModel{
		NoticeTitle:    r.NoticeTitle,
		NoticeContent:  r.NoticeContent,
		NoticeCategory: r.NoticeCategory,
		NoticeAuthor:   r.NoticeAuthor,
	}
	if r.NoticeIsPublished != nil {
		m.NoticeIsPublished = *r.NoticeIsPublished
	}
	if r.NoticeIsPinned != nil {
		m.NoticeIsPinned = *r.NoticeIsPinned
	}
	return m
}

type NoticeUpdateRequest struct {
	NoticeTitle       *string `json:"notice_title" validate:"omitempty,min=1,max=300"`
	NoticeContent     *string `json:"notice_content"`
	NoticeCategory    *string `json:"notice_category" validate:"omitempty,oneof=general event recruit exam"`
	NoticeAuthor      *string `json:"notice_author" validate:"omitempty,max=100"`
	NoticeIsPublished *bool   `json:"notice_is_published"`
	NoticeIsPinned    *bool   `json:"notice_is_pinned"`
}

func (r *NoticeUpdateRequest) ApplyToModel(m *model.NoticeModel) {
	if r.NoticeTitle != nil && strings.TrimSpace(*r.NoticeTitle) != "" {
		t := strings.TrimSpace(*r.NoticeTitle)
		m.NoticeTitle = t
	}
	if r.NoticeContent != nil {
		m.NoticeContent = *r.NoticeContent
	}
	if r.NoticeCategory != nil {
		m.NoticeCategory = *r.NoticeCategory
	}
	if r.NoticeAuthor != nil {
		m.NoticeAuthor = r.NoticeAuthor
	}
	if r.NoticeIsPublished != nil {
		m.NoticeIsPublished = *r.NoticeIsPublished
	}
	if r.NoticeIsPinned != nil {
		m.NoticeIsPinned = *r.NoticeIsPinned
	}
}

/* =========================
   RESPONSE
   ========================= */

type NoticeResponse struct {
	NoticeID          uuid.UUID `json:"notice_id"`
	NoticeTitle       string    `json:"notice_title"`
	NoticeContent     string    `json:"notice_content,omitempty"`
	NoticeCategory    string    `json:"notice_category"`
	NoticeAuthor      *string   `json:"notice_author,omitempty"`
	NoticeIsPublished bool      `json:"notice_is_published"`
	NoticeIsPinned    bool      `json:"notice_is_pinned"`
	NoticeViewCount   int       `json:"notice_view_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ToNoticeResponse renders a notice; list views pass withContent=false to
// keep payloads small.
func ToNoticeResponse(m *model.NoticeModel, withContent bool) NoticeResponse {
	resp := NoticeResponse{
		NoticeID:          m.NoticeID,
		NoticeTitle:       m.NoticeTitle,
		NoticeCategory:    m.NoticeCategory,
		NoticeAuthor:      m.NoticeAuthor,
		NoticeIsPublished: m.NoticeIsPublished,
		NoticeIsPinned:    m.NoticeIsPinned,
		NoticeViewCount:   m.NoticeViewCount,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if withContent {
		resp.NoticeContent = m.NoticeContent
	}
	return resp
}
