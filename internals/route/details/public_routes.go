// file: internals/route/details/public_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campuseval_backend/internals/events"
	campagneRoute "campuseval_backend/internals/features/evaluations/campagnes/route"
	reponseRoute "campuseval_backend/internals/features/evaluations/reponses/route"
	authRoute "campuseval_backend/internals/features/users/auth/route"
)

// PublicRoutes: no auth. Login, the active-campaign feed, and the
// anonymous submission endpoint.
func PublicRoutes(api fiber.Router, db *gorm.DB, bus *events.Bus) {
	authRoute.AuthPublicRoutes(api, db)
	campagneRoute.CampagnePublicRoutes(api, db, bus)
	reponseRoute.ReponsePublicRoutes(api, db, bus)
}
