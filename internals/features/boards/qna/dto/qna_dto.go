package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "certassoc_backend/internals/features/boards/qna/model"
)

/* =========================
   REQUEST
   ========================= */

type QnaQuestionCreateRequest struct {
	QnaQuestionTitle    string  `json:"qna_question_title" validate:"required,min=1,max=300"`
	QnaQuestionContent  string  `json:"qna_question_content" validate:"required"`
	QnaQuestionCategory *string `json:"qna_question_category" validate:"omitempty,max=100"`
	QnaQuestionIsSecret bool    `json:"qna_question_is_secret"`
}

func (r *QnaQuestionCreateRequest) Normalize() {
	r.QnaQuestionTitle = strings.TrimSpace(r.QnaQuestionTitle)
	if r.QnaQuestionCategory != nil {
		cat := strings.TrimSpace(*r.QnaQuestionCategory)
		if cat == "" {
			r.QnaQuestionCategory = nil
		} else {
			r.QnaQuestionCategory = &cat
		}
	}
}

type QnaAnswerCreateRequest struct {
	QnaAnswerContent string `json:"qna_answer_content" validate:"required"`
}

/* =========================
   RESPONSE
   ========================= */

type QnaAnswerResponse struct {
	QnaAnswerID      uuid.UUID `json:"qna_answer_id"`
	QnaQuestionID    uuid.UUID `json:"qna_question_id"`
	QnaAnswerAuthor  string    `json:"qna_answer_author"`
	QnaAnswerContent string    `json:"qna_answer_content"`
	CreatedAt        time.Time `json:"created_at"`
}

func ToQnaAnswerResponse(m *model.QnaAnswerModel) QnaAnswerResponse {
	return QnaAnswerResponse{
		QnaAnswerID:      m.QnaAnswerID,
		QnaQuestionID:    m.QnaQuestionID,
		QnaAnswerAuthor:  m.QnaAnswerAuthor,
		QnaAnswerContent: m.QnaAnswerContent,
		CreatedAt:        m.CreatedAt,
	}
}

type QnaQuestionResponse struct {
	QnaQuestionID         uuid.UUID           `json:"qna_question_id"`
	UserID                uuid.UUID           `json:"user_id"`
	QnaQuestionAuthor     string              `json:"qna_question_author"`
	QnaQuestionTitle      string              `json:"qna_question_title"`
	QnaQuestionContent    string              `json:"qna_question_content,omitempty"`
	QnaQuestionCategory   *string             `json:"qna_question_category,omitempty"`
	QnaQuestionIsSecret   bool                `json:"qna_question_is_secret"`
	QnaQuestionIsAnswered bool                `json:"qna_question_is_answered"`
	QnaQuestionAnsweredAt *time.Time          `json:"qna_question_answered_at,omitempty"`
	QnaQuestionViewCount  int                 `json:"qna_question_view_count"`
	Answers               []QnaAnswerResponse `json:"answers,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// ToQnaQuestionResponse renders a question. withContent=false keeps list
// payloads small and is also how secret bodies are withheld from strangers.
func ToQnaQuestionResponse(m *model.QnaQuestionModel, withContent bool) QnaQuestionResponse {
	resp := QnaQuestionResponse{
		QnaQuestionID:         m.QnaQuestionID,
		UserID:                m.UserID,
		QnaQuestionAuthor:     m.QnaQuestionAuthor,
		QnaQuestionTitle:      m.QnaQuestionTitle,
		QnaQuestionCategory:   m.QnaQuestionCategory,
		QnaQuestionIsSecret:   m.QnaQuestionIsSecret,
		QnaQuestionIsAnswered: m.QnaQuestionIsAnswered,
		QnaQuestionAnsweredAt: m.QnaQuestionAnsweredAt,
		QnaQuestionViewCount:  m.QnaQuestionViewCount,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
	if withContent {
		resp.QnaQuestionContent = m.QnaQuestionContent
	}
	return resp
}
