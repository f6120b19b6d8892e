package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certassoc_backend/internals/constants"
	controller "certassoc_backend/internals/features/users/admin/controller"
	authMw "certassoc_backend/internals/middlewares/auth"
)

// AdminAccountRoutes: account management, super_admin only.
func AdminAccountRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := &controller.AdminAccountController{DB: db}

	accounts := r.Group("/admins",
		authMw.OnlyRoles("Only a super admin can manage admin accounts", constants.RoleSuperAdmin))
	accounts.Get("/", ctrl.List)
	accounts.Post("/", ctrl.Create)
	accounts.Put("/:id", ctrl.Update)
	accounts.Delete("/:id", ctrl.Delete)
}
