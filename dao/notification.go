package dao

import (
	"context"

	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type Notification struct {
	Repo[models.Notification]
}

func NewNotification(db *gorm.DB) *Notification {
	return &Notification{
		Repo: NewRepo[models.Notification](db),
	}
}

// CreateTx 業務更新と同一トランザクションでの通知作成
func (n *Notification) CreateTx(tx *gorm.DB, record *models.Notification) error {
	return tx.Create(record).Error
}

// List 通知一覧（新しい順）
func (n *Notification) List(ctx context.Context, userID uint64, unreadOnly bool, offset, limit int) ([]models.Notification, error) {
	query := n.Db.WithContext(ctx).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var records []models.Notification
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&records).Error
	return records, err
}

// MarkRead 既読化。所有者でなければ RowsAffected = 0。
func (n *Notification) MarkRead(ctx context.Context, id, userID uint64) (int64, error) {
	result := n.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return result.RowsAffected, result.Error
}

// MarkAllRead 未読の一括既読化
func (n *Notification) MarkAllRead(ctx context.Context, userID uint64) error {
	return n.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

// CountUnread 未読数
func (n *Notification) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	return n.FindCount(ctx, "user_id = ? AND is_read = ?", userID, false)
}
