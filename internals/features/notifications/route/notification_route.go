package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "campuseval_backend/internals/features/notifications/controller"
)

// NotificationUserRoutes mounts under /api/u (behind AuthJWT)
func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notificationController.NewNotificationController(db)

	notifications := r.Group("/notifications")
	notifications.Get("/", ctl.List)
	notifications.Patch("/read-all", ctl.MarkAllRead)
	notifications.Patch("/:id/read", ctl.MarkRead)
}
