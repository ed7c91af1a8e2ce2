package types

import "encoding/json"

// EvaluationBrief 提案詳細に埋め込む評価サマリ
type EvaluationBrief struct {
	TotalScore float64 `json:"total_score"`
	Summary    string  `json:"summary"`
	TrustRank  string  `json:"trust_rank"`
	Rank       string  `json:"rank"`
}

// ListEvaluationsReq 評価一覧の取得条件
type ListEvaluationsReq struct {
	Rank     string  `form:"rank"`
	MinScore float64 `form:"min_score"`
	Offset   int     `form:"offset"`
	Limit    int     `form:"limit,default=20"`
}

// EvaluationItem 評価1件
type EvaluationItem struct {
	ID             uint64          `json:"id"`
	ProposalID     uint64          `json:"proposal_id"`
	TotalScore     float64         `json:"total_score"`
	CategoryScores json.RawMessage `json:"category_scores,omitempty"`
	TrustScore     float64         `json:"trust_score"`
	TrustRank      string          `json:"trust_rank"`
	Rank           string          `json:"rank"`
	Summary        string          `json:"summary"`
	CreatedAt      string          `json:"created_at"`
}

// ListEvaluationsResp 評価一覧
type ListEvaluationsResp struct {
	Items []EvaluationItem `json:"items"`
	Total int64            `json:"total"`
}

// FactCheckResp ファクトチェック結果
type FactCheckResp struct {
	EvaluationID uint64          `json:"evaluation_id"`
	TrustScore   float64         `json:"trust_score"`
	TrustRank    string          `json:"trust_rank"`
	Items        json.RawMessage `json:"items,omitempty"`
}

// DecisionReq 採用判断
type DecisionReq struct {
	Decision string `json:"decision" binding:"required,oneof=accept reject hold"`
	Note     string `json:"note"`
}

// DecisionResp 採用判断の結果
type DecisionResp struct {
	Success    bool   `json:"success"`
	ProposalID uint64 `json:"proposal_id"`
	Status     string `json:"status"`
}
