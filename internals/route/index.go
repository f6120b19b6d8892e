package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"certassoc_backend/internals/constants"
	authRoute "certassoc_backend/internals/features/users/auth/route"
	"certassoc_backend/internals/helpers/oss"
	authMw "certassoc_backend/internals/middlewares/auth"
	routeDetails "certassoc_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Shared object-store facade for the upload boards.
	var blob oss.BlobService
	if b, err := oss.NewOSSBlobServiceFromEnv("uploads/"); err != nil {
		log.Printf("[WARN] OSS not configured, uploads disabled: %v", err)
		blob = oss.DisabledBlobService{}
	} else {
		blob = b
	}

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	routeDetails.PublicRoutes(public, db, blob)

	// ===================== PRIVATE (MEMBER) =====================
	log.Println("[INFO] Setting up MEMBER group...")
	member := app.Group("/api/u", authMw.AuthMiddleware(db))
	routeDetails.MemberRoutes(member, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyRoles("Admin access required", constants.AdminAndAbove...),
	)
	routeDetails.AdminRoutes(admin, db, blob)
}
