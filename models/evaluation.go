package models

import (
	"time"

	"gorm.io/datatypes"
)

// EvaluationRank 評価ランク
type EvaluationRank string

const (
	RankCandidate EvaluationRank = "candidate" // 採用候補
	RankConsider  EvaluationRank = "consider"  // 検討
	RankHold      EvaluationRank = "hold"      // 保留
	RankRejected  EvaluationRank = "rejected"  // 不採用
)

func (r EvaluationRank) Valid() bool {
	switch r {
	case RankCandidate, RankConsider, RankHold, RankRejected:
		return true
	}
	return false
}

// TrustRank 信頼度ランク
type TrustRank string

const (
	TrustA TrustRank = "A" // 高信頼
	TrustB TrustRank = "B" // 中信頼
	TrustC TrustRank = "C" // 低信頼
	TrustD TrustRank = "D" // 要注意
)

// Evaluation 評価結果（AIパイプラインが書き込み、本システムは読み取りと採用判断のみ）
type Evaluation struct {
	ID               uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProposalID       uint64         `gorm:"column:proposal_id;uniqueIndex:idx_evaluations_proposal_id;not null" json:"proposal_id"`
	TotalScore       float64        `gorm:"column:total_score" json:"total_score"`
	CategoryScores   datatypes.JSON `gorm:"column:category_scores" json:"category_scores"` // カテゴリ別スコア
	TrustScore       float64        `gorm:"column:trust_score" json:"trust_score"`
	TrustRank        TrustRank      `gorm:"column:trust_rank;size:2" json:"trust_rank"`
	FactCheckResults datatypes.JSON `gorm:"column:fact_check_results" json:"fact_check_results"`
	Rank             EvaluationRank `gorm:"column:rank;size:20" json:"rank"`
	Summary          string         `gorm:"column:summary;type:text" json:"summary"`
	KeyPoints        datatypes.JSON `gorm:"column:key_points" json:"key_points"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Evaluation) TableName() string {
	return "evaluations"
}
