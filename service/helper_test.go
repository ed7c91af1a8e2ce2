package service

import (
	"context"
	"testing"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao/cache"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB テスト用のインメモリDB。
// 接続を1本に制限し、:memory: が接続ごとに別DBになるのを防ぐ。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		App:    &config.App{Env: "test", Debug: true},
		Jwt:    &config.Jwt{Secret: "test-secret", ExpireMinutes: 60},
		Points: &config.Points{ProposalCost: 300},
	}
}

// newTestUnread 接続先のない Redis クライアント。
// キャッシュ層はミス時に DB へフォールバックするため、テストでは常時ミスで十分。
func newTestUnread() *cache.UnreadStorage {
	return cache.NewUnreadStorage(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))
}

func newPointService(cfg *config.Config, db *gorm.DB) *PointService {
	return &PointService{
		Config:     cfg,
		DB:         db,
		PointDAO:   dao.NewPoint(db),
		PackageDAO: dao.NewPointPackage(db),
	}
}

func newProposalService(cfg *config.Config, db *gorm.DB) *ProposalService {
	return &ProposalService{
		Config:          cfg,
		DB:              db,
		ProposalDAO:     dao.NewProposal(db),
		ProgressDAO:     dao.NewProgress(db),
		CommentDAO:      dao.NewComment(db),
		NotificationDAO: dao.NewNotification(db),
		UsersDAO:        dao.NewUsers(db),
		PointDAO:        dao.NewPoint(db),
		Unread:          newTestUnread(),
		PointService:    newPointService(cfg, db),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role models.UserRole) *models.User {
	t.Helper()

	user := &models.User{
		Email:          email,
		HashedPassword: "x",
		Name:           "テストユーザー",
		Role:           role,
		IsActive:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// fundUser 残高口座を作って指定ポイントを積む
func fundUser(t *testing.T, svc *PointService, userID uint64, amount int64) {
	t.Helper()

	_, err := svc.PointDAO.GetOrCreateBalance(context.Background(), userID)
	require.NoError(t, err)

	if amount <= 0 {
		return
	}
	err = svc.DB.Transaction(func(tx *gorm.DB) error {
		_, err := svc.CreditTx(tx, userID, amount, models.TxPurchase, "テスト付与", 0, "")
		return err
	})
	require.NoError(t, err)
}
