package dao

import (
	"context"

	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type Evaluation struct {
	Repo[models.Evaluation]
}

func NewEvaluation(db *gorm.DB) *Evaluation {
	return &Evaluation{
		Repo: NewRepo[models.Evaluation](db),
	}
}

// FindByProposal 提案に紐づく評価（1対1）
func (e *Evaluation) FindByProposal(ctx context.Context, proposalID uint64) (*models.Evaluation, error) {
	return e.FindByWhere(ctx, "proposal_id = ?", proposalID)
}

// List 評価一覧。ランクと最低スコアで絞り込み可能。
func (e *Evaluation) List(ctx context.Context, rank models.EvaluationRank, minScore float64, offset, limit int) ([]models.Evaluation, int64, error) {
	query := e.Db.WithContext(ctx).Model(&models.Evaluation{})
	if rank != "" {
		query = query.Where("rank = ?", rank)
	}
	if minScore > 0 {
		query = query.Where("total_score >= ?", minScore)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var evaluations []models.Evaluation
	err := query.Order("total_score DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&evaluations).Error
	return evaluations, total, err
}
