package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"certassoc_backend/internals/constants"
	dto "certassoc_backend/internals/features/boards/qna/dto"
	model "certassoc_backend/internals/features/boards/qna/model"
	helper "certassoc_backend/internals/helpers"
)

type QnaController struct {
	DB *gorm.DB
}

var validate = validator.New()

func isAdminRole(role string) bool {
	return role == constants.RoleAdmin || role == constants.RoleSuperAdmin
}

// =========================================================
// LIST - GET /qna?category=&answered=&search=
// Everyone sees titles; secret bodies stay hidden until GetByID checks
// ownership.
// =========================================================
func (ctrl *QnaController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.QnaQuestionModel{})
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		q = q.Where("qna_question_category = ?", category)
	}
	if answered := strings.TrimSpace(c.Query("answered")); answered != "" {
		q = q.Where("qna_question_is_answered = ?", answered == "true")
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("qna_question_title ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var rows []model.QnaQuestionModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load questions")
	}

	resp := make([]dto.QnaQuestionResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, dto.ToQnaQuestionResponse(&rows[i], false))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =========================================================
// GET - GET /qna/:id - bumps the view counter
// Secret questions are readable only by their author and admins.
// =========================================================
func (ctrl *QnaController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.QnaQuestionModel
	if err := ctrl.DB.First(&row, "qna_question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}

	if row.QnaQuestionIsSecret && !isAdminRole(helper.GetUserRole(c)) {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil || userID != row.UserID {
			return helper.JsonError(c, fiber.StatusForbidden, "This question is private")
		}
	}

	if err := ctrl.DB.Model(&model.QnaQuestionModel{}).
		Where("qna_question_id = ?", id).
		UpdateColumn("qna_question_view_count", gorm.Expr("qna_question_view_count + 1")).Error; err == nil {
		row.QnaQuestionViewCount++
	}

	resp := dto.ToQnaQuestionResponse(&row, true)
	var answers []model.QnaAnswerModel
	if err := ctrl.DB.Where("qna_question_id = ?", id).
		Order("created_at ASC").Find(&answers).Error; err == nil {
		for i := range answers {
			resp.Answers = append(resp.Answers, dto.ToQnaAnswerResponse(&answers[i]))
		}
	}
	return helper.JsonOK(c, "", resp)
}

// =========================================================
// CREATE - POST /qna (member)
// =========================================================
func (ctrl *QnaController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.QnaQuestionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	author := helper.GetUserName(c)
	if author == "" {
		author = "회원"
	}
	m := &model.QnaQuestionModel{
		UserID:              userID,
		QnaQuestionAuthor:   author,
		QnaQuestionTitle:    req.QnaQuestionTitle,
		QnaQuestionContent:  req.QnaQuestionContent,
		QnaQuestionCategory: req.QnaQuestionCategory,
		QnaQuestionIsSecret: req.QnaQuestionIsSecret,
	}
	if err := ctrl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.JsonCreated(c, "Question created", dto.ToQnaQuestionResponse(m, true))
}

// =========================================================
// DELETE - DELETE /qna/:id (author or admin)
// Answers are removed with the question.
// =========================================================
func (ctrl *QnaController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var row model.QnaQuestionModel
	if err := ctrl.DB.First(&row, "qna_question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}

	if !isAdminRole(helper.GetUserRole(c)) {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil || userID != row.UserID {
			return helper.JsonError(c, fiber.StatusForbidden, "Only the author can delete this question")
		}
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.QnaAnswerModel{}, "qna_question_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QnaQuestionModel{}, "qna_question_id = ?", id).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"deleted_id": id})
}

// =========================================================
// ANSWER CREATE - POST /qna/:id/answers (admin)
// Marks the parent answered.
// =========================================================
func (ctrl *QnaController) CreateAnswer(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.QnaAnswerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var question model.QnaQuestionModel
	if err := ctrl.DB.First(&question, "qna_question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load question")
	}

	author := helper.GetUserName(c)
	if author == "" {
		author = "관리자"
	}
	answer := &model.QnaAnswerModel{
		QnaQuestionID:    id,
		QnaAnswerAuthor:  author,
		QnaAnswerContent: req.QnaAnswerContent,
	}

	now := time.Now()
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(answer).Error; err != nil {
			return err
		}
		return tx.Model(&model.QnaQuestionModel{}).
			Where("qna_question_id = ?", id).
			Updates(map[string]interface{}{
				"qna_question_is_answered": true,
				"qna_question_answered_at": now,
			}).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create answer")
	}
	return helper.JsonCreated(c, "Answer created", dto.ToQnaAnswerResponse(answer))
}

// =========================================================
// ANSWER DELETE - DELETE /qna/answers/:answerId (admin)
// Clears the parent's answered flag when its last answer goes.
// =========================================================
func (ctrl *QnaController) DeleteAnswer(c *fiber.Ctx) error {
	answerID, err := uuid.Parse(strings.TrimSpace(c.Params("answerId")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var answer model.QnaAnswerModel
	if err := ctrl.DB.First(&answer, "qna_answer_id = ?", answerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Answer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load answer")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.QnaAnswerModel{}, "qna_answer_id = ?", answerID).Error; err != nil {
			return err
		}
		var remaining int64
		if err := tx.Model(&model.QnaAnswerModel{}).
			Where("qna_question_id = ?", answer.QnaQuestionID).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Model(&model.QnaQuestionModel{}).
				Where("qna_question_id = ?", answer.QnaQuestionID).
				Updates(map[string]interface{}{
					"qna_question_is_answered": false,
					"qna_question_answered_at": nil,
				}).Error
		}
		return nil
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete answer")
	}
	return helper.JsonDeleted(c, "Answer deleted", fiber.Map{"deleted_id": answerID})
}
