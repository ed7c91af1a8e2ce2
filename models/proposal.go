package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProposalStatus 提案ステータス
// draft から accepted/rejected までのライフサイクルを閉集合で管理する。
type ProposalStatus string

const (
	StatusDraft       ProposalStatus = "draft"        // 下書き
	StatusSubmitted   ProposalStatus = "submitted"    // 提出済み（AI処理待ち）
	StatusAnalyzing   ProposalStatus = "analyzing"    // AI分析中
	StatusQAPending   ProposalStatus = "qa_pending"   // Q&A待ち
	StatusQACompleted ProposalStatus = "qa_completed" // Q&A完了
	StatusEvaluated   ProposalStatus = "evaluated"    // AI評価完了
	StatusAccepted    ProposalStatus = "accepted"     // 採用
	StatusRejected    ProposalStatus = "rejected"     // 不採用
	StatusOnHold      ProposalStatus = "on_hold"      // 保留
)

// statusTransitions 許可される遷移表。表にない遷移はすべて不正。
var statusTransitions = map[ProposalStatus][]ProposalStatus{
	StatusDraft:       {StatusSubmitted},
	StatusSubmitted:   {StatusAnalyzing, StatusEvaluated},
	StatusAnalyzing:   {StatusQAPending, StatusEvaluated},
	StatusQAPending:   {StatusQACompleted},
	StatusQACompleted: {StatusEvaluated},
	StatusEvaluated:   {StatusAccepted, StatusRejected, StatusOnHold},
	StatusOnHold:      {StatusAccepted, StatusRejected},
}

func (s ProposalStatus) Valid() bool {
	if s == StatusDraft {
		return true
	}
	for _, targets := range statusTransitions {
		for _, t := range targets {
			if t == s {
				return true
			}
		}
	}
	return false
}

// CanTransitionTo 遷移表に基づく検証
func (s ProposalStatus) CanTransitionTo(next ProposalStatus) bool {
	for _, t := range statusTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// IsActive 進行中（提出済みかつ未決着）かどうか
func (s ProposalStatus) IsActive() bool {
	switch s {
	case StatusSubmitted, StatusAnalyzing, StatusQAPending, StatusQACompleted, StatusEvaluated:
		return true
	}
	return false
}

// Proposal 提案
type Proposal struct {
	ID             uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title          string         `gorm:"column:title;size:200;not null" json:"title"`
	Description    string         `gorm:"column:description;type:text" json:"description"`
	Status         ProposalStatus `gorm:"column:status;size:20;not null;default:'draft';index:idx_status" json:"status"`
	SupplierOrgID  uint64         `gorm:"column:supplier_org_id;not null;index:idx_supplier_org_id" json:"supplier_org_id"`
	SupplierUserID uint64         `gorm:"column:supplier_user_id;not null;index:idx_supplier_user_id" json:"supplier_user_id"`
	BuyerConfigID  uint64         `gorm:"column:buyer_config_id" json:"buyer_config_id"`
	ExtractedInfo  datatypes.JSON `gorm:"column:extracted_info" json:"extracted_info"` // AI抽出データ
	PointsUsed     int64          `gorm:"column:points_used;not null;default:300" json:"points_used"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Proposal) TableName() string {
	return "proposals"
}

// ProposalProgress 提案進捗履歴（追記専用）
type ProposalProgress struct {
	ID         uint64         `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProposalID uint64         `gorm:"column:proposal_id;not null;index:idx_progress_proposal_id" json:"proposal_id"`
	Status     ProposalStatus `gorm:"column:status;size:20;not null" json:"status"`
	ChangedBy  uint64         `gorm:"column:changed_by;not null" json:"changed_by"`
	Note       string         `gorm:"column:note;type:text" json:"note"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ProposalProgress) TableName() string {
	return "proposal_progress"
}
