package model

import (
	"encoding/json"
	"time"
)

// Notification is a broadcast record fanned out to per-user rows.
type Notification struct {
	BaseModel
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Metadata    json.RawMessage `gorm:"type:json" json:"metadata,omitempty"`
}

func (Notification) TableName() string {
	return "notifications"
}

type NotificationUser struct {
	BaseModel
	NotificationID uint          `gorm:"uniqueIndex:idx_notification_user;not null" json:"notificationId"`
	Notification   *Notification `gorm:"foreignKey:NotificationID;constraint:OnDelete:CASCADE" json:"notification,omitempty"`
	UserID         uint          `gorm:"uniqueIndex:idx_notification_user;not null" json:"userId"`
	IsRead         bool          `gorm:"default:false" json:"isRead"`
	ReadAt         *time.Time    `json:"readAt,omitempty"`
}

func (NotificationUser) TableName() string {
	return "notification_users"
}

func (n *NotificationUser) MarkAsRead(now time.Time) {
	if n.IsRead {
		return
	}
	n.IsRead = true
	n.ReadAt = &now
}
