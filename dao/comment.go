package dao

import (
	"context"

	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// ListTopLevel トップレベルコメントを新しい順で返す。
// includeInternal = false の場合は内部コメントを除外する（サプライヤー向け）。
func (c *Comment) ListTopLevel(ctx context.Context, proposalID uint64, includeInternal bool) ([]models.Comment, error) {
	query := c.Db.WithContext(ctx).
		Where("proposal_id = ? AND parent_id = ?", proposalID, 0)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var comments []models.Comment
	err := query.Order("created_at DESC").Order("id DESC").Find(&comments).Error
	return comments, err
}

// ListReplies 返信一覧（古い順）
func (c *Comment) ListReplies(ctx context.Context, parentID uint64, includeInternal bool) ([]models.Comment, error) {
	query := c.Db.WithContext(ctx).Where("parent_id = ?", parentID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var comments []models.Comment
	err := query.Order("created_at ASC").Order("id ASC").Find(&comments).Error
	return comments, err
}

// CountByProposal 提案別コメント数
func (c *Comment) CountByProposal(ctx context.Context, proposalID uint64) (int64, error) {
	return c.FindCount(ctx, "proposal_id = ?", proposalID)
}
