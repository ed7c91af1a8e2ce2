package models

import "time"

// TransactionType ポイント取引タイプ
type TransactionType string

const (
	TxPurchase       TransactionType = "purchase"        // ポイント購入
	TxProposalSubmit TransactionType = "proposal_submit" // 提案提出（消費）
	TxRefund         TransactionType = "refund"          // 返金
	TxBonus          TransactionType = "bonus"           // ボーナス付与
	TxAdjustment     TransactionType = "adjustment"      // 調整
	TxExpired        TransactionType = "expired"         // 期限切れ
)

func (t TransactionType) Valid() bool {
	switch t {
	case TxPurchase, TxProposalSubmit, TxRefund, TxBonus, TxAdjustment, TxExpired:
		return true
	}
	return false
}

// PointBalance ポイント残高（ユーザーと1対1）
// 不変条件: Balance == TotalPurchased - TotalUsed、かつ Balance >= 0。
type PointBalance struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	UserID         uint64    `gorm:"column:user_id;uniqueIndex:idx_balances_user_id;not null" json:"user_id"`
	Balance        int64     `gorm:"column:balance;not null;default:0" json:"balance"`
	TotalPurchased int64     `gorm:"column:total_purchased;not null;default:0" json:"total_purchased"`
	TotalUsed      int64     `gorm:"column:total_used;not null;default:0" json:"total_used"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PointBalance) TableName() string {
	return "point_balances"
}

// PointTransaction ポイント取引履歴（追記専用、作成後は不変）
type PointTransaction struct {
	ID              uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PointBalanceID  uint64          `gorm:"column:point_balance_id;not null;index:idx_point_balance_id" json:"point_balance_id"`
	TransactionType TransactionType `gorm:"column:transaction_type;size:20;not null" json:"transaction_type"`
	Amount          int64           `gorm:"column:amount;not null" json:"amount"`               // 正=付与, 負=消費
	BalanceAfter    int64           `gorm:"column:balance_after;not null" json:"balance_after"` // 取引後の残高スナップショット
	Description     string          `gorm:"column:description;size:255" json:"description"`
	ReferenceID     uint64          `gorm:"column:reference_id" json:"reference_id"`        // 関連する提案IDなど
	PaymentID       string          `gorm:"column:payment_id;size:100" json:"payment_id"`   // 決済ID（購入時）
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PointTransaction) TableName() string {
	return "point_transactions"
}

// PointPackage ポイントパッケージ（購入プラン、参照専用データ）
type PointPackage struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string    `gorm:"column:name;size:100;not null" json:"name"`
	Points      int64     `gorm:"column:points;not null" json:"points"`
	Price       int64     `gorm:"column:price;not null" json:"price"` // 単位: 円
	BonusPoints int64     `gorm:"column:bonus_points;not null;default:0" json:"bonus_points"`
	IsActive    bool      `gorm:"column:is_active;default:true;index:idx_is_active" json:"is_active"`
	SortOrder   int       `gorm:"column:sort_order;default:0" json:"sort_order"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PointPackage) TableName() string {
	return "point_packages"
}
