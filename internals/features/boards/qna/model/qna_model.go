package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QnaQuestionModel is a member question. Secret questions hide their body
// from everyone but the author and admins. is_answered/answered_at are
// maintained by the answer endpoints, never set directly.
type QnaQuestionModel struct {
	QnaQuestionID         uuid.UUID  `json:"qna_question_id" gorm:"column:qna_question_id;type:uuid;primaryKey"`
	UserID                uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;not null;index"`
	QnaQuestionAuthor     string     `json:"qna_question_author" gorm:"column:qna_question_author;not null"`
	QnaQuestionTitle      string     `json:"qna_question_title" gorm:"column:qna_question_title;not null"`
	QnaQuestionContent    string     `json:"qna_question_content" gorm:"column:qna_question_content;type:text;not null"`
	QnaQuestionCategory   *string    `json:"qna_question_category,omitempty" gorm:"column:qna_question_category"`
	QnaQuestionIsSecret   bool       `json:"qna_question_is_secret" gorm:"column:qna_question_is_secret;not null;default:false"`
	QnaQuestionIsAnswered bool       `json:"qna_question_is_answered" gorm:"column:qna_question_is_answered;not null;default:false"`
	QnaQuestionAnsweredAt *time.Time `json:"qna_question_answered_at,omitempty" gorm:"column:qna_question_answered_at"`
	QnaQuestionViewCount  int        `json:"qna_question_view_count" gorm:"column:qna_question_view_count;not null;default:0"`
	CreatedAt             time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt             time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (QnaQuestionModel) TableName() string {
	return "qna_questions"
}

func (m *QnaQuestionModel) BeforeCreate(_ *gorm.DB) error {
	if m.QnaQuestionID == uuid.Nil {
		m.QnaQuestionID = uuid.New()
	}
	return nil
}

// QnaAnswerModel is an admin reply to a question.
type QnaAnswerModel struct {
	QnaAnswerID      uuid.UUID `json:"qna_answer_id" gorm:"column:qna_answer_id;type:uuid;primaryKey"`
	QnaQuestionID    uuid.UUID `json:"qna_question_id" gorm:"column:qna_question_id;type:uuid;not null;index"`
	QnaAnswerAuthor  string    `json:"qna_answer_author" gorm:"column:qna_answer_author;not null"`
	QnaAnswerContent string    `json:"qna_answer_content" gorm:"column:qna_answer_content;type:text;not null"`
	CreatedAt        time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (QnaAnswerModel) TableName() string {
	return "qna_answers"
}

func (m *QnaAnswerModel) BeforeCreate(_ *gorm.DB) error {
	if m.QnaAnswerID == uuid.Nil {
		m.QnaAnswerID = uuid.New()
	}
	return nil
}
