package service

import (
	"context"

	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao/cache"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 100
)

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	List(ctx context.Context, userID uint64, unreadOnly bool, offset, limit int) ([]types.NotificationItem, error)
	MarkRead(ctx context.Context, userID, notificationID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) error
	CountUnread(ctx context.Context, userID uint64) (int64, error)
}

type NotificationService struct {
	NotificationDAO *dao.Notification
	Unread          *cache.UnreadStorage
}

// List 通知一覧（新しい順）
func (s *NotificationService) List(ctx context.Context, userID uint64, unreadOnly bool, offset, limit int) ([]types.NotificationItem, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	records, err := s.NotificationDAO.List(ctx, userID, unreadOnly, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]types.NotificationItem, 0, len(records))
	for _, r := range records {
		items = append(items, types.NotificationItem{
			ID:               r.ID,
			Title:            r.Title,
			Message:          r.Message,
			Link:             r.Link,
			IsRead:           r.IsRead,
			NotificationType: string(r.NotificationType),
			CreatedAt:        r.CreatedAt.Format(timeLayout),
		})
	}
	return items, nil
}

// MarkRead 既読化。他人の通知は存在しないものとして扱う。
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID uint64) error {
	rows, err := s.NotificationDAO.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.NewNotFound("通知", notificationID)
	}
	s.Unread.Reset(ctx, userID)
	return nil
}

// MarkAllRead 未読の一括既読化
func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) error {
	if err := s.NotificationDAO.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	if err := s.Unread.Set(ctx, userID, 0); err != nil {
		s.Unread.Reset(ctx, userID)
	}
	return nil
}

// CountUnread 未読数。キャッシュミス時はDBから復元する。
func (s *NotificationService) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	count := s.Unread.Get(ctx, userID)
	if count != cache.CountMiss {
		return count, nil
	}

	count, err := s.NotificationDAO.CountUnread(ctx, userID)
	if err != nil {
		return 0, err
	}
	_ = s.Unread.Set(ctx, userID, count)
	return count, nil
}
