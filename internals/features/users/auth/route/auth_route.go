package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "campuseval_backend/internals/features/users/auth/controller"
	"campuseval_backend/internals/middlewares"
)

// AuthPublicRoutes mounts under /api/auth
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AuthUserRoutes mounts under /api/u (behind AuthJWT)
func AuthUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	r.Get("/me", ctl.Me)
}
