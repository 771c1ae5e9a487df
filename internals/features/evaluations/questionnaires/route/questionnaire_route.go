package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionnaireController "campuseval_backend/internals/features/evaluations/questionnaires/controller"
)

// QuestionnaireAdminRoutes mounts under /api/a
func QuestionnaireAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := questionnaireController.NewQuestionnaireController(db)

	questionnaires := r.Group("/questionnaires")
	questionnaires.Post("/", ctl.Create)
	questionnaires.Get("/", ctl.List)
	questionnaires.Get("/:id", ctl.GetByID)
	questionnaires.Patch("/:id", ctl.Update)
	questionnaires.Delete("/:id", ctl.Delete)
}
