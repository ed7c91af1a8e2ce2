package dao

import (
	"context"

	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type Proposal struct {
	Repo[models.Proposal]
}

func NewProposal(db *gorm.DB) *Proposal {
	return &Proposal{
		Repo: NewRepo[models.Proposal](db),
	}
}

// FindOwned 所有者チェック付きの取得
func (p *Proposal) FindOwned(ctx context.Context, id, supplierUserID uint64) (*models.Proposal, error) {
	return p.FindByWhere(ctx, "id = ? AND supplier_user_id = ?", id, supplierUserID)
}

// ListBySupplier サプライヤー自身の提案一覧（新しい順）
func (p *Proposal) ListBySupplier(ctx context.Context, supplierUserID uint64, status models.ProposalStatus, offset, limit int) ([]models.Proposal, error) {
	query := p.Db.WithContext(ctx).Where("supplier_user_id = ?", supplierUserID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var proposals []models.Proposal
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&proposals).Error
	return proposals, err
}

// ListForBuyer バイヤー向け一覧。下書きは対象外。
func (p *Proposal) ListForBuyer(ctx context.Context, status models.ProposalStatus, search string, offset, limit int) ([]models.Proposal, int64, error) {
	query := p.Db.WithContext(ctx).Model(&models.Proposal{}).
		Where("status <> ?", models.StatusDraft)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var proposals []models.Proposal
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&proposals).Error
	return proposals, total, err
}

// UpdateStatusFrom 現在ステータスを条件に含めた遷移更新。
// RowsAffected = 0 は並行更新に負けたことを意味する。
func (p *Proposal) UpdateStatusFrom(tx *gorm.DB, id uint64, from, to models.ProposalStatus) (int64, error) {
	result := tx.Model(&models.Proposal{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// DashboardStats サプライヤーの提案件数集計
type DashboardStats struct {
	Total    int64
	Active   int64
	Accepted int64
	Rejected int64
}

func (p *Proposal) CountStats(ctx context.Context, supplierUserID uint64) (*DashboardStats, error) {
	stats := &DashboardStats{}

	base := func() *gorm.DB {
		return p.Db.WithContext(ctx).Model(&models.Proposal{}).
			Where("supplier_user_id = ?", supplierUserID)
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	activeStatuses := []models.ProposalStatus{
		models.StatusSubmitted, models.StatusAnalyzing,
		models.StatusQAPending, models.StatusQACompleted, models.StatusEvaluated,
	}
	if err := base().Where("status IN ?", activeStatuses).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", models.StatusAccepted).Count(&stats.Accepted).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", models.StatusRejected).Count(&stats.Rejected).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
