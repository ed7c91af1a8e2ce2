package dao

import (
	"context"

	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type PointPackage struct {
	Repo[models.PointPackage]
}

func NewPointPackage(db *gorm.DB) *PointPackage {
	return &PointPackage{
		Repo: NewRepo[models.PointPackage](db),
	}
}

// ListActive 販売中パッケージを表示順で返す
func (p *PointPackage) ListActive(ctx context.Context) ([]models.PointPackage, error) {
	var packages []models.PointPackage
	err := p.Db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&packages).Error
	return packages, err
}

// FindActive 販売中パッケージを ID で取得
func (p *PointPackage) FindActive(ctx context.Context, id uint64) (*models.PointPackage, error) {
	return p.FindByWhere(ctx, "id = ? AND is_active = ?", id, true)
}
