// file: internals/route/details/user_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationRoute "campuseval_backend/internals/features/notifications/route"
	authRoute "campuseval_backend/internals/features/users/auth/route"
)

// UserRoutes: any authenticated user.
func UserRoutes(u fiber.Router, db *gorm.DB) {
	authRoute.AuthUserRoutes(u, db)
	notificationRoute.NotificationUserRoutes(u, db)
}
