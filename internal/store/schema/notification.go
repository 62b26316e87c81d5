package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/henrymaxel/platform-mvp-sub000/internal/domain"
)

// Notification represents the notifications table
type Notification struct {
	ID        uint64                  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID               `gorm:"column:user_id;not null;type:uuid;index:idx_notifications_user_id" json:"user_id"`
	Type      domain.NotificationType `gorm:"column:type;not null;type:text" json:"type"`
	Message   string                  `gorm:"column:message;not null;type:text" json:"message"`
	IsRead    bool                    `gorm:"column:is_read;not null;default:false" json:"is_read"`
	CreatedAt time.Time               `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
