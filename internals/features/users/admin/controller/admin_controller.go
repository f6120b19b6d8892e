package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "certassoc_backend/internals/features/users/admin/dto"
	model "certassoc_backend/internals/features/users/admin/model"
	authService "certassoc_backend/internals/features/users/auth/service"
	helper "certassoc_backend/internals/helpers"
)

// AdminAccountController manages back-office accounts (super_admin only).
type AdminAccountController struct {
	DB *gorm.DB
}

var validate = validator.New()

func (ctrl *AdminAccountController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.AdminModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count accounts")
	}

	var admins []model.AdminModel
	if err := ctrl.DB.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load accounts")
	}

	resp := make([]dto.AdminResponse, 0, len(admins))
	for i := range admins {
		resp = append(resp, dto.ToAdminResponse(&admins[i]))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, paging.Page, paging.PerPage))
}

func (ctrl *AdminAccountController) Create(c *fiber.Ctx) error {
	var req dto.AdminCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	if err := ctrl.DB.Model(&model.AdminModel{}).
		Where("admin_email = ?", req.AdminEmail).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email is already in use")
	}

	hashed, err := authService.HashPassword(req.AdminPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	admin := model.AdminModel{
		AdminEmail:    req.AdminEmail,
		AdminPassword: hashed,
		AdminName:     req.AdminName,
		AdminRole:     req.AdminRole,
		AdminIsActive: true,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}
	return helper.JsonCreated(c, "Admin account created", dto.ToAdminResponse(&admin))
}

func (ctrl *AdminAccountController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.AdminUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load account")
	}

	if req.AdminName != nil && strings.TrimSpace(*req.AdminName) != "" {
		admin.AdminName = strings.TrimSpace(*req.AdminName)
	}
	if req.AdminPassword != nil {
		hashed, err := authService.HashPassword(*req.AdminPassword)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		admin.AdminPassword = hashed
	}
	if req.AdminRole != nil {
		admin.AdminRole = *req.AdminRole
	}
	if req.AdminIsActive != nil {
		admin.AdminIsActive = *req.AdminIsActive
	}

	if err := ctrl.DB.Save(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update account")
	}
	return helper.JsonUpdated(c, "Admin account updated", dto.ToAdminResponse(&admin))
}

func (ctrl *AdminAccountController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	res := ctrl.DB.Delete(&model.AdminModel{}, "admin_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete account")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}
	return helper.JsonDeleted(c, "Admin account deleted", fiber.Map{"deleted_id": id})
}
