package dao

import (
	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type Organization struct {
	Repo[models.Organization]
}

func NewOrganization(db *gorm.DB) *Organization {
	return &Organization{
		Repo: NewRepo[models.Organization](db),
	}
}

// CreateTx ユーザー登録と同一トランザクションでの組織作成
func (o *Organization) CreateTx(tx *gorm.DB, record *models.Organization) error {
	return tx.Create(record).Error
}
