package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	filiereController "campuseval_backend/internals/features/academics/filieres/controller"
)

// FiliereAdminRoutes mounts under /api/a
func FiliereAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := filiereController.NewFiliereController(db)

	filieres := r.Group("/filieres")
	filieres.Post("/", ctl.Create)
	filieres.Get("/", ctl.List)
	filieres.Get("/:id", ctl.GetByID)
	filieres.Patch("/:id", ctl.Update)
	filieres.Delete("/:id", ctl.Delete)
}
