package dao

import (
	"context"

	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByEmail メールアドレス検索
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.FindByWhere(ctx, "email = ?", email)
}

// IsEmailExist メールアドレスの重複判定
func (u *Users) IsEmailExist(ctx context.Context, email string) bool {
	exist, _ := u.IsExist(ctx, "email = ?", email)
	return exist
}
