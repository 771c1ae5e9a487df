package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campuseval_backend/internals/events"
	reponseController "campuseval_backend/internals/features/evaluations/reponses/controller"
	"campuseval_backend/internals/middlewares"
)

// ReponsePublicRoutes mounts the anonymous submission endpoint under
// /api/public. It is rate limited by IP since it carries no auth.
func ReponsePublicRoutes(r fiber.Router, db *gorm.DB, bus *events.Bus) {
	ctl := reponseController.NewReponseController(db, bus)

	reponses := r.Group("/reponses")
	reponses.Post("/submit", middlewares.SubmitRateLimiter(), ctl.Submit)
}

// ReponseAdminRoutes mounts the report view under /api/a
func ReponseAdminRoutes(r fiber.Router, db *gorm.DB, bus *events.Bus) {
	ctl := reponseController.NewReponseController(db, bus)

	reponses := r.Group("/reponses")
	reponses.Get("/", ctl.List)
}
