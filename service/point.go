package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/snowflake"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"gorm.io/gorm"
)

const (
	defaultTransactionLimit = 50
	maxTransactionLimit     = 100
)

var _ IPointService = (*PointService)(nil)

type IPointService interface {
	GetBalance(ctx context.Context, userID uint64) (*types.PointBalanceResp, error)
	ListTransactions(ctx context.Context, userID uint64, offset, limit int) ([]types.PointTransactionItem, error)
	ListPackages(ctx context.Context) ([]types.PointPackageResp, error)
	Purchase(ctx context.Context, userID, packageID uint64) (*types.PurchaseResp, error)

	// CreditTx / DebitTx は呼び出し側のトランザクション内で実行する。
	// 残高更新と取引履歴の追記が分離されると台帳が壊れるため、単体では公開しない。
	CreditTx(tx *gorm.DB, userID uint64, amount int64, txType models.TransactionType, description string, referenceID uint64, paymentID string) (*models.PointBalance, error)
	DebitTx(tx *gorm.DB, userID uint64, amount int64, txType models.TransactionType, description string, referenceID uint64) (*models.PointBalance, error)
}

type PointService struct {
	Config     *config.Config
	DB         *gorm.DB
	PointDAO   *dao.Point
	PackageDAO *dao.PointPackage
}

// GetBalance 残高スナップショット取得。レコードが無ければ残高0で遅延作成する。
func (p *PointService) GetBalance(ctx context.Context, userID uint64) (*types.PointBalanceResp, error) {
	balance, err := p.PointDAO.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.PointBalanceResp{
		Balance:        balance.Balance,
		TotalPurchased: balance.TotalPurchased,
		TotalUsed:      balance.TotalUsed,
	}, nil
}

// ListTransactions 取引履歴を新しい順で返す
func (p *PointService) ListTransactions(ctx context.Context, userID uint64, offset, limit int) ([]types.PointTransactionItem, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}

	balance, err := p.PointDAO.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := p.PointDAO.ListTransactions(ctx, balance.ID, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]types.PointTransactionItem, 0, len(records))
	for _, r := range records {
		items = append(items, types.PointTransactionItem{
			ID:              r.ID,
			TransactionType: string(r.TransactionType),
			Amount:          r.Amount,
			BalanceAfter:    r.BalanceAfter,
			Description:     r.Description,
			CreatedAt:       r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return items, nil
}

// ListPackages 販売中のポイントパッケージ一覧（表示順）
func (p *PointService) ListPackages(ctx context.Context) ([]types.PointPackageResp, error) {
	packages, err := p.PackageDAO.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]types.PointPackageResp, 0, len(packages))
	for _, pkg := range packages {
		items = append(items, types.PointPackageResp{
			ID:          pkg.ID,
			Name:        pkg.Name,
			Points:      pkg.Points,
			Price:       pkg.Price,
			BonusPoints: pkg.BonusPoints,
		})
	}
	return items, nil
}

// Purchase ポイント購入（決済連携はダミーで、参照番号のみ採番する）
func (p *PointService) Purchase(ctx context.Context, userID, packageID uint64) (*types.PurchaseResp, error) {
	pkg, err := p.PackageDAO.FindActive(ctx, packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("ポイントパッケージ", packageID)
		}
		return nil, err
	}

	if _, err := p.PointDAO.GetOrCreateBalance(ctx, userID); err != nil {
		return nil, err
	}

	totalPoints := pkg.Points + pkg.BonusPoints
	paymentID := snowflake.GenPaymentID()
	description := fmt.Sprintf("%s (%dpt + ボーナス%dpt)", pkg.Name, pkg.Points, pkg.BonusPoints)

	var newBalance int64
	err = p.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		balance, err := p.CreditTx(tx, userID, totalPoints, models.TxPurchase, description, 0, paymentID)
		if err != nil {
			return err
		}
		newBalance = balance.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.PurchaseResp{
		Success:     true,
		PointsAdded: totalPoints,
		NewBalance:  newBalance,
		PaymentID:   paymentID,
	}, nil
}

// CreditTx 残高加算と取引履歴の追記を1トランザクションの中で行う。
func (p *PointService) CreditTx(tx *gorm.DB, userID uint64, amount int64, txType models.TransactionType, description string, referenceID uint64, paymentID string) (*models.PointBalance, error) {
	if amount <= 0 {
		return nil, apperr.NewValidation("付与ポイントは正の値で指定してください")
	}
	if !txType.Valid() {
		return nil, apperr.NewValidation("不正な取引タイプです")
	}

	rows, err := p.PointDAO.CreditBalance(tx, userID, amount)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.NewNotFound("ポイント残高", 0)
	}

	balance, err := p.PointDAO.GetBalanceTx(tx, userID)
	if err != nil {
		return nil, err
	}

	record := &models.PointTransaction{
		PointBalanceID:  balance.ID,
		TransactionType: txType,
		Amount:          amount,
		BalanceAfter:    balance.Balance,
		Description:     description,
		ReferenceID:     referenceID,
		PaymentID:       paymentID,
	}
	if err := p.PointDAO.CreateTransaction(tx, record); err != nil {
		return nil, err
	}
	return balance, nil
}

// DebitTx 残高減算と取引履歴の追記を1トランザクションの中で行う。
// 金額は正で受け取り、履歴には負値で記録する。
func (p *PointService) DebitTx(tx *gorm.DB, userID uint64, amount int64, txType models.TransactionType, description string, referenceID uint64) (*models.PointBalance, error) {
	if amount <= 0 {
		return nil, apperr.NewValidation("消費ポイントは正の値で指定してください")
	}
	if !txType.Valid() {
		return nil, apperr.NewValidation("不正な取引タイプです")
	}

	// balance >= amount を条件に含む原子更新。
	// RowsAffected = 0 なら残高不足（または口座未作成）。
	rows, err := p.PointDAO.DebitBalance(tx, userID, amount)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		balance, err := p.PointDAO.GetBalanceTx(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NewInsufficientPoints(amount, 0)
			}
			return nil, err
		}
		return nil, apperr.NewInsufficientPoints(amount, balance.Balance)
	}

	balance, err := p.PointDAO.GetBalanceTx(tx, userID)
	if err != nil {
		return nil, err
	}

	record := &models.PointTransaction{
		PointBalanceID:  balance.ID,
		TransactionType: txType,
		Amount:          -amount,
		BalanceAfter:    balance.Balance,
		Description:     description,
		ReferenceID:     referenceID,
	}
	if err := p.PointDAO.CreateTransaction(tx, record); err != nil {
		return nil, err
	}
	return balance, nil
}
