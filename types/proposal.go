package types

import "encoding/json"

// ProposalCreateReq 提案作成（下書き）
type ProposalCreateReq struct {
	Title         string `json:"title" binding:"required,max=200"`
	Description   string `json:"description"`
	BuyerConfigID uint64 `json:"buyer_config_id"`
}

// ListProposalsReq 提案一覧の取得条件
type ListProposalsReq struct {
	Status string `form:"status"`
	Search string `form:"search"`
	Offset int    `form:"offset"`
	Limit  int    `form:"limit,default=20"`
}

// ProposalItem 提案一覧1件
type ProposalItem struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	PointsUsed   int64  `json:"points_used"`
	CommentCount int64  `json:"comment_count"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ListProposalsResp 提案一覧
type ListProposalsResp struct {
	Items []ProposalItem `json:"items"`
	Total int64          `json:"total"`
}

// ProposalDetailResp 提案詳細
type ProposalDetailResp struct {
	ID            uint64           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Status        string           `json:"status"`
	PointsUsed    int64            `json:"points_used"`
	ExtractedInfo json.RawMessage  `json:"extracted_info,omitempty"`
	Evaluation    *EvaluationBrief `json:"evaluation,omitempty"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

// SubmitResp 提案提出の結果
type SubmitResp struct {
	Success          bool   `json:"success"`
	PointsUsed       int64  `json:"points_used"`
	RemainingBalance int64  `json:"remaining_balance"`
	Status           string `json:"status"`
}

// ProgressItem 進捗履歴1件
type ProgressItem struct {
	ID            uint64 `json:"id"`
	Status        string `json:"status"`
	Note          string `json:"note"`
	ChangedByName string `json:"changed_by_name"`
	CreatedAt     string `json:"created_at"`
}
