// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type NotificationModel struct {
	NotificationID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:notification_id" json:"notification_id"`
	NotificationUserID uuid.UUID `gorm:"type:uuid;not null;index;column:notification_user_id" json:"notification_user_id"`

	// event name that produced it (events package constants)
	NotificationType    string `gorm:"type:varchar(64);not null;column:notification_type" json:"notification_type"`
	NotificationTitle   string `gorm:"type:varchar(255);not null;column:notification_title" json:"notification_title"`
	NotificationMessage string `gorm:"type:text;not null;column:notification_message" json:"notification_message"`

	NotificationData datatypes.JSON `gorm:"type:jsonb;column:notification_data" json:"notification_data,omitempty"`

	NotificationRead      bool      `gorm:"not null;default:false;column:notification_read" json:"notification_read"`
	NotificationCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:notification_created_at" json:"notification_created_at"`
}

func (NotificationModel) TableName() string { return "notifications" }
