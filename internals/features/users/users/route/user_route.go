package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "campuseval_backend/internals/features/users/users/controller"
)

// UserAdminRoutes mounts under /api/a
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	users := r.Group("/users")
	users.Post("/", ctl.Create)
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Patch("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
