// file: internals/route/details/admin_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campuseval_backend/internals/events"
	departmentRoute "campuseval_backend/internals/features/academics/departments/route"
	filiereRoute "campuseval_backend/internals/features/academics/filieres/route"
	matiereRoute "campuseval_backend/internals/features/academics/matieres/route"
	analyticsRoute "campuseval_backend/internals/features/evaluations/analytics/route"
	campagneRoute "campuseval_backend/internals/features/evaluations/campagnes/route"
	questionnaireRoute "campuseval_backend/internals/features/evaluations/questionnaires/route"
	reponseRoute "campuseval_backend/internals/features/evaluations/reponses/route"
	userRoute "campuseval_backend/internals/features/users/users/route"
)

// AdminRoutes: admin role only (role gate sits on the group in SetupRoutes).
func AdminRoutes(a fiber.Router, db *gorm.DB, bus *events.Bus) {
	departmentRoute.DepartmentAdminRoutes(a, db)
	filiereRoute.FiliereAdminRoutes(a, db)
	matiereRoute.MatiereAdminRoutes(a, db)
	userRoute.UserAdminRoutes(a, db)
	questionnaireRoute.QuestionnaireAdminRoutes(a, db)
	campagneRoute.CampagneAdminRoutes(a, db, bus)
	reponseRoute.ReponseAdminRoutes(a, db, bus)
}

// ReportRoutes: analytics, readable by admin and enseignant.
func ReportRoutes(r fiber.Router, db *gorm.DB) {
	analyticsRoute.AnalyticsRoutes(r, db)
}
