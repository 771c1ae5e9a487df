package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	analyticsController "campuseval_backend/internals/features/evaluations/analytics/controller"
)

// AnalyticsRoutes mounts the report endpoints. Admin and enseignant roles
// may read them; the role gate sits on the parent group.
func AnalyticsRoutes(r fiber.Router, db *gorm.DB) {
	ctl := analyticsController.NewAnalyticsController(db)

	analytics := r.Group("/analytics")
	analytics.Get("/overview", ctl.Overview)
	analytics.Get("/departments/:id", ctl.DepartmentStats)
	analytics.Get("/filieres/:id", ctl.FiliereStats)
	analytics.Get("/trends", ctl.Trends)
	analytics.Get("/campagnes/:id/distribution", ctl.Distribution)
}
