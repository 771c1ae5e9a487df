package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campuseval_backend/internals/events"
	campagneController "campuseval_backend/internals/features/evaluations/campagnes/controller"
)

// CampagneAdminRoutes mounts under /api/a
func CampagneAdminRoutes(r fiber.Router, db *gorm.DB, bus *events.Bus) {
	ctl := campagneController.NewCampagneController(db, bus)

	campagnes := r.Group("/campagnes")
	campagnes.Post("/", ctl.Create)
	campagnes.Get("/", ctl.List)
	campagnes.Get("/:id", ctl.GetByID)
	campagnes.Patch("/:id", ctl.Update)
	campagnes.Delete("/:id", ctl.Delete)
}

// CampagnePublicRoutes mounts under /api/public
func CampagnePublicRoutes(r fiber.Router, db *gorm.DB, bus *events.Bus) {
	ctl := campagneController.NewCampagneController(db, bus)

	campagnes := r.Group("/campagnes")
	campagnes.Get("/actives", ctl.ListActives)
}
