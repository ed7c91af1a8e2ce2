package models

import "time"

// Comment コメント（バイヤー・サプライヤー間のやり取り）
type Comment struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ProposalID uint64    `gorm:"column:proposal_id;not null;index:idx_comments_proposal_id" json:"proposal_id"`
	UserID     uint64    `gorm:"column:user_id;not null" json:"user_id"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	IsInternal bool      `gorm:"column:is_internal;default:false" json:"is_internal"` // 内部コメント（相手に非表示）
	ParentID   uint64    `gorm:"column:parent_id" json:"parent_id"`                   // 返信元
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}
