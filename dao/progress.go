package dao

import (
	"context"

	"github.com/edaha-kurose/Buyer-matchingSystem/models"

	"gorm.io/gorm"
)

type Progress struct {
	Repo[models.ProposalProgress]
}

func NewProgress(db *gorm.DB) *Progress {
	return &Progress{
		Repo: NewRepo[models.ProposalProgress](db),
	}
}

// CreateTx ステータス変更と同一トランザクションでの進捗追記
func (p *Progress) CreateTx(tx *gorm.DB, record *models.ProposalProgress) error {
	return tx.Create(record).Error
}

// ListByProposal 進捗履歴を新しい順で返す
func (p *Progress) ListByProposal(ctx context.Context, proposalID uint64) ([]models.ProposalProgress, error) {
	var records []models.ProposalProgress
	err := p.Db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&records).Error
	return records, err
}
