package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	matiereController "campuseval_backend/internals/features/academics/matieres/controller"
)

// MatiereAdminRoutes mounts under /api/a
func MatiereAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := matiereController.NewMatiereController(db)

	matieres := r.Group("/matieres")
	matieres.Post("/", ctl.Create)
	matieres.Get("/", ctl.List)
	matieres.Get("/:id", ctl.GetByID)
	matieres.Patch("/:id", ctl.Update)
	matieres.Delete("/:id", ctl.Delete)
}
