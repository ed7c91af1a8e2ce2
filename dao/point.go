package dao

import (
	"context"
	"errors"

	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type Point struct {
	Repo[models.PointBalance]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.PointBalance](db),
	}
}

// GetBalance ユーザーの残高レコードを取得
func (p *Point) GetBalance(ctx context.Context, userID uint64) (*models.PointBalance, error) {
	return p.FindByWhere(ctx, "user_id = ?", userID)
}

// GetOrCreateBalance 残高レコードの遅延作成。
// user_id の一意制約を前提に、同時初回アクセスでも1行しか作られない。
func (p *Point) GetOrCreateBalance(ctx context.Context, userID uint64) (*models.PointBalance, error) {
	balance, err := p.GetBalance(ctx, userID)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	balance = &models.PointBalance{UserID: userID}
	err = p.Db.WithContext(ctx).Create(balance).Error
	if err == nil {
		return balance, nil
	}

	// 同時作成で負けた側は既存行を引き直す
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return p.GetBalance(ctx, userID)
	}
	return nil, err
}

// CreditBalance 残高と累計購入を加算する。
// gorm.Expr による単文の原子加算なので、並行実行でも更新が失われない。
func (p *Point) CreditBalance(tx *gorm.DB, userID uint64, amount int64) (int64, error) {
	result := tx.Model(&models.PointBalance{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"balance":         gorm.Expr("balance + ?", amount),
			"total_purchased": gorm.Expr("total_purchased + ?", amount),
		})
	return result.RowsAffected, result.Error
}

// DebitBalance 残高を減算し累計使用を加算する。
// WHERE balance >= ? を条件に含めることで、残高不足の並行デビットは
// RowsAffected = 0 で弾かれる（口座単位の直列化ポイント）。
func (p *Point) DebitBalance(tx *gorm.DB, userID uint64, amount int64) (int64, error) {
	result := tx.Model(&models.PointBalance{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance - ?", amount),
			"total_used": gorm.Expr("total_used + ?", amount),
		})
	return result.RowsAffected, result.Error
}

// GetBalanceTx トランザクション内での残高スナップショット取得
func (p *Point) GetBalanceTx(tx *gorm.DB, userID uint64) (*models.PointBalance, error) {
	var balance models.PointBalance
	err := tx.Where("user_id = ?", userID).First(&balance).Error
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// CreateTransaction 取引履歴の追記。残高変更と同一トランザクションで呼ぶこと。
func (p *Point) CreateTransaction(tx *gorm.DB, record *models.PointTransaction) error {
	return tx.Create(record).Error
}

// ListTransactions 取引履歴を新しい順（同時刻は挿入順の逆）で返す
func (p *Point) ListTransactions(ctx context.Context, balanceID uint64, offset, limit int) ([]models.PointTransaction, error) {
	var records []models.PointTransaction
	err := p.Db.WithContext(ctx).
		Where("point_balance_id = ?", balanceID).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	return records, err
}
