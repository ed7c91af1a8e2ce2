package service

import (
	"context"
	"testing"

	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{
		NotificationDAO: dao.NewNotification(db),
		Unread:          newTestUnread(),
	}
}

func seedNotifications(t *testing.T, db *gorm.DB, userID uint64, n int) []models.Notification {
	t.Helper()

	records := make([]models.Notification, 0, n)
	for i := 0; i < n; i++ {
		record := models.Notification{
			UserID:           userID,
			Title:            "お知らせ",
			Message:          "テスト通知",
			NotificationType: models.NotifySystem,
		}
		require.NoError(t, db.Create(&record).Error)
		records = append(records, record)
	}
	return records
}

func TestNotification_ListAndUnreadFilter(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := createTestUser(t, db, "s1@example.com", models.RoleSupplier)

	records := seedNotifications(t, db, user.ID, 3)
	require.NoError(t, svc.MarkRead(context.Background(), user.ID, records[0].ID))

	all, err := svc.List(context.Background(), user.ID, false, 0, 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	unread, err := svc.List(context.Background(), user.ID, true, 0, 10)
	require.NoError(t, err)
	assert.Len(t, unread, 2)

	count, err := svc.CountUnread(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestNotification_MarkReadOwnershipGuard(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	owner := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	other := createTestUser(t, db, "s2@example.com", models.RoleSupplier)

	records := seedNotifications(t, db, owner.ID, 1)

	// 他人の通知は存在しないものとして扱う
	err := svc.MarkRead(context.Background(), other.ID, records[0].ID)
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)

	var stored models.Notification
	require.NoError(t, db.First(&stored, records[0].ID).Error)
	assert.False(t, stored.IsRead)
}

func TestNotification_MarkAllRead(t *testing.T) {
	db := newTestDB(t)
	svc := newNotificationService(db)
	user := createTestUser(t, db, "s1@example.com", models.RoleSupplier)

	seedNotifications(t, db, user.ID, 5)
	require.NoError(t, svc.MarkAllRead(context.Background(), user.ID))

	count, err := svc.CountUnread(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
