package models

import "time"

// NotificationType 通知タイプ
type NotificationType string

const (
	NotifyComment      NotificationType = "comment"       // コメント通知
	NotifyStatusChange NotificationType = "status_change" // ステータス変更通知
	NotifyPoint        NotificationType = "point"         // ポイント関連通知
	NotifySystem       NotificationType = "system"        // システム通知
)

// Notification 通知
type Notification struct {
	ID               uint64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID           uint64           `gorm:"column:user_id;not null;index:idx_notifications_user_id" json:"user_id"`
	Title            string           `gorm:"column:title;size:200;not null" json:"title"`
	Message          string           `gorm:"column:message;type:text;not null" json:"message"`
	Link             string           `gorm:"column:link;size:500" json:"link"`
	IsRead           bool             `gorm:"column:is_read;default:false" json:"is_read"`
	NotificationType NotificationType `gorm:"column:notification_type;size:50" json:"notification_type"`
	ReferenceID      uint64           `gorm:"column:reference_id" json:"reference_id"`
	CreatedAt        time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
