// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "campuseval_backend/internals/features/notifications/service"
	helper "campuseval_backend/internals/helpers"
	"campuseval_backend/internals/middlewares/auth"
)

type NotificationController struct {
	Service *service.NotificationService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{Service: service.NewNotificationService(db)}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(auth.LocUserID).(string)
	return uuid.Parse(raw)
}

// GET /api/u/notifications?unread=true
func (ctl *NotificationController) List(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	paging := helper.ResolvePaging(c, 20, 100)
	unreadOnly := c.QueryBool("unread", false)

	rows, total, err := ctl.Service.ListForUser(c.UserContext(), userID, unreadOnly, paging)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", rows, &pagination)
}

// PATCH /api/u/notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	if err := ctl.Service.MarkRead(c.UserContext(), userID, id); err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Notification marked as read", fiber.Map{"notification_id": id})
}

// PATCH /api/u/notifications/read-all
func (ctl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	n, err := ctl.Service.MarkAllRead(c.UserContext(), userID)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "Notifications marked as read", fiber.Map{"updated": n})
}
