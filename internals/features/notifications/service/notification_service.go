// file: internals/features/notifications/service/notification_service.go
package service

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campuseval_backend/internals/features/notifications/model"
	helper "campuseval_backend/internals/helpers"
)

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// NotifyUsers fans one notification out to every given user.
func (s *NotificationService) NotifyUsers(ctx context.Context, userIDs []uuid.UUID, eventName, title, message string, data any) error {
	if len(userIDs) == 0 {
		return nil
	}

	var payload datatypes.JSON
	if data != nil {
		raw, err := sonic.Marshal(data)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(raw)
	}

	rows := make([]model.NotificationModel, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, model.NotificationModel{
			NotificationUserID:  userID,
			NotificationType:    eventName,
			NotificationTitle:   title,
			NotificationMessage: message,
			NotificationData:    payload,
		})
	}
	return s.DB.WithContext(ctx).Create(&rows).Error
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, paging helper.Paging) ([]model.NotificationModel, int64, error) {
	db := s.DB.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID)
	if unreadOnly {
		db = db.Where("notification_read = FALSE")
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.NotificationModel
	err := db.Order("notification_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// MarkRead flips one notification owned by the user.
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	res := s.DB.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notificationID, userID).
		Update("notification_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return helper.ErrNotFound("notification not found")
	}
	return nil
}

// MarkAllRead flips every unread notification of the user.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = FALSE", userID).
		Update("notification_read", true)
	return res.RowsAffected, res.Error
}
