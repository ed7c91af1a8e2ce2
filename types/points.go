package types

// PointBalanceResp 残高スナップショット
type PointBalanceResp struct {
	Balance        int64 `json:"balance"`
	TotalPurchased int64 `json:"total_purchased"`
	TotalUsed      int64 `json:"total_used"`
}

// PointTransactionItem 取引履歴1件
type PointTransactionItem struct {
	ID              uint64 `json:"id"`
	TransactionType string `json:"transaction_type"`
	Amount          int64  `json:"amount"`        // 正=付与, 負=消費
	BalanceAfter    int64  `json:"balance_after"` // 取引後の残高
	Description     string `json:"description"`
	CreatedAt       string `json:"created_at"`
}

// ListTransactionsReq 取引履歴の取得条件
type ListTransactionsReq struct {
	Offset int `form:"offset"`
	Limit  int `form:"limit,default=50"`
}

// PointPackageResp 購入可能パッケージ
type PointPackageResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Points      int64  `json:"points"`
	Price       int64  `json:"price"`
	BonusPoints int64  `json:"bonus_points"`
}

// PurchaseReq ポイント購入リクエスト
type PurchaseReq struct {
	PackageID uint64 `json:"package_id" binding:"required"`
}

// PurchaseResp 購入結果
type PurchaseResp struct {
	Success     bool   `json:"success"`
	PointsAdded int64  `json:"points_added"`
	NewBalance  int64  `json:"new_balance"`
	PaymentID   string `json:"payment_id"`
}
