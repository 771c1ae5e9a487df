// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campuseval_backend/internals/configs"
	"campuseval_backend/internals/constants"
	"campuseval_backend/internals/events"
	"campuseval_backend/internals/middlewares/auth"
	"campuseval_backend/internals/route/details"
)

// SetupRoutes mounts the whole HTTP surface:
//
//	/api            public (login, active campaigns, anonymous submit)
//	/api/u          any authenticated user
//	/api/analytics  admin and enseignant reports
//	/api/a          admin only
func SetupRoutes(app *fiber.App, db *gorm.DB, bus *events.Bus) {
	api := app.Group("/api")

	details.PublicRoutes(api, db, bus)

	authed := api.Group("", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	u := authed.Group("/u")
	details.UserRoutes(u, db)

	a := authed.Group("/a", auth.IsAdmin())
	details.AdminRoutes(a, db, bus)

	// analytics is shared with enseignants, so it lives outside /a
	reports := authed.Group("",
		auth.RequireRoles(constants.RoleAdmin, constants.RoleEnseignant))
	details.ReportRoutes(reports, db)
}
