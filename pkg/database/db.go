package database

import (
	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB データベース接続を初期化する
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// Migrate 開発用のテーブル作成と初期データ投入
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Organization{},
		&models.Proposal{},
		&models.ProposalProgress{},
		&models.Comment{},
		&models.Notification{},
		&models.Evaluation{},
		&models.PointBalance{},
		&models.PointTransaction{},
		&models.PointPackage{},
	); err != nil {
		return err
	}
	return seedPackages(db)
}

// seedPackages ポイントパッケージの初期カタログ。既にあれば何もしない。
func seedPackages(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PointPackage{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	packages := []models.PointPackage{
		{Name: "スタータープラン", Points: 300, Price: 3000, BonusPoints: 0, IsActive: true, SortOrder: 1},
		{Name: "スタンダードプラン", Points: 1000, Price: 9000, BonusPoints: 100, IsActive: true, SortOrder: 2},
		{Name: "プレミアムプラン", Points: 3000, Price: 24000, BonusPoints: 500, IsActive: true, SortOrder: 3},
	}
	return db.Create(&packages).Error
}
