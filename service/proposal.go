package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao/cache"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/log"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultProposalLimit = 20
	maxProposalLimit     = 100
	timeLayout           = "2006-01-02 15:04:05"
)

var _ IProposalService = (*ProposalService)(nil)

type IProposalService interface {
	Create(ctx context.Context, user *models.User, req *types.ProposalCreateReq) (*types.ProposalItem, error)
	ListBySupplier(ctx context.Context, userID uint64, status string, offset, limit int) ([]types.ProposalItem, error)
	GetDetail(ctx context.Context, userID, proposalID uint64) (*types.ProposalDetailResp, error)
	Submit(ctx context.Context, userID, proposalID uint64) (*types.SubmitResp, error)
	ListProgress(ctx context.Context, userID, proposalID uint64) ([]types.ProgressItem, error)
	Dashboard(ctx context.Context, userID uint64) (*types.DashboardResp, error)
}

type ProposalService struct {
	Config          *config.Config
	DB              *gorm.DB
	ProposalDAO     *dao.Proposal
	ProgressDAO     *dao.Progress
	CommentDAO      *dao.Comment
	NotificationDAO *dao.Notification
	UsersDAO        *dao.Users
	PointDAO        *dao.Point
	Unread          *cache.UnreadStorage
	PointService    IPointService
}

// Create 提案の下書き作成。消費ポイントは設定値をこの時点で焼き込む。
func (s *ProposalService) Create(ctx context.Context, user *models.User, req *types.ProposalCreateReq) (*types.ProposalItem, error) {
	proposal := &models.Proposal{
		Title:          req.Title,
		Description:    req.Description,
		Status:         models.StatusDraft,
		SupplierUserID: user.ID,
		SupplierOrgID:  user.OrganizationID,
		BuyerConfigID:  req.BuyerConfigID,
		PointsUsed:     s.Config.Points.ProposalCost,
	}
	if err := s.ProposalDAO.Create(ctx, proposal); err != nil {
		return nil, err
	}

	return &types.ProposalItem{
		ID:          proposal.ID,
		Title:       proposal.Title,
		Description: proposal.Description,
		Status:      string(proposal.Status),
		PointsUsed:  proposal.PointsUsed,
		CreatedAt:   proposal.CreatedAt.Format(timeLayout),
		UpdatedAt:   proposal.UpdatedAt.Format(timeLayout),
	}, nil
}

// ListBySupplier サプライヤー自身の提案一覧（コメント数付き）
func (s *ProposalService) ListBySupplier(ctx context.Context, userID uint64, status string, offset, limit int) ([]types.ProposalItem, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultProposalLimit
	}
	if limit > maxProposalLimit {
		limit = maxProposalLimit
	}

	filter := models.ProposalStatus(status)
	if status != "" && !filter.Valid() {
		return nil, apperr.NewValidation("不正なステータスです: " + status)
	}

	proposals, err := s.ProposalDAO.ListBySupplier(ctx, userID, filter, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]types.ProposalItem, 0, len(proposals))
	for _, p := range proposals {
		commentCount, err := s.CommentDAO.CountByProposal(ctx, p.ID)
		if err != nil {
			commentCount = 0
		}
		items = append(items, types.ProposalItem{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Status:       string(p.Status),
			PointsUsed:   s.pointsRequired(&p),
			CommentCount: commentCount,
			CreatedAt:    p.CreatedAt.Format(timeLayout),
			UpdatedAt:    p.UpdatedAt.Format(timeLayout),
		})
	}
	return items, nil
}

// GetDetail 提案詳細（評価があればサマリを同梱）
func (s *ProposalService) GetDetail(ctx context.Context, userID, proposalID uint64) (*types.ProposalDetailResp, error) {
	proposal, err := s.findOwned(ctx, proposalID, userID)
	if err != nil {
		return nil, err
	}

	resp := &types.ProposalDetailResp{
		ID:          proposal.ID,
		Title:       proposal.Title,
		Description: proposal.Description,
		Status:      string(proposal.Status),
		PointsUsed:  proposal.PointsUsed,
		CreatedAt:   proposal.CreatedAt.Format(timeLayout),
		UpdatedAt:   proposal.UpdatedAt.Format(timeLayout),
	}
	if len(proposal.ExtractedInfo) > 0 {
		resp.ExtractedInfo = json.RawMessage(proposal.ExtractedInfo)
	}

	var evaluation models.Evaluation
	err = s.DB.WithContext(ctx).Where("proposal_id = ?", proposal.ID).First(&evaluation).Error
	if err == nil {
		resp.Evaluation = &types.EvaluationBrief{
			TotalScore: evaluation.TotalScore,
			Summary:    evaluation.Summary,
			TrustRank:  string(evaluation.TrustRank),
			Rank:       string(evaluation.Rank),
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return resp, nil
}

// Submit 提案提出。ポイント消費・ステータス遷移・進捗追記を不可分に行う。
//
// デビット成功かつ遷移失敗（またはその逆）は台帳と提案の不整合を生むため、
// 3つの書き込みはすべて同一トランザクションでコミットする。
func (s *ProposalService) Submit(ctx context.Context, userID, proposalID uint64) (*types.SubmitResp, error) {
	proposal, err := s.findOwned(ctx, proposalID, userID)
	if err != nil {
		return nil, err
	}

	// 提出は冪等ではない。下書き以外の再提出は拒否する。
	if proposal.Status != models.StatusDraft {
		return nil, apperr.NewInvalidState(string(proposal.Status), string(models.StatusSubmitted))
	}

	required := s.pointsRequired(proposal)

	balance, err := s.PointDAO.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	if balance.Balance < required {
		return nil, apperr.NewInsufficientPoints(required, balance.Balance)
	}

	var remaining int64
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ステータス遷移は現在値を条件に含める。並行提出に負けた側はここで止まる。
		rows, err := s.ProposalDAO.UpdateStatusFrom(tx, proposal.ID, models.StatusDraft, models.StatusSubmitted)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.NewConflict("提案は既に提出されています")
		}

		newBalance, err := s.PointService.DebitTx(
			tx, userID, required,
			models.TxProposalSubmit,
			"提案提出: "+proposal.Title,
			proposal.ID,
		)
		if err != nil {
			return err
		}
		remaining = newBalance.Balance

		if err := s.ProgressDAO.CreateTx(tx, &models.ProposalProgress{
			ProposalID: proposal.ID,
			Status:     models.StatusSubmitted,
			ChangedBy:  userID,
			Note:       "提案を提出しました",
		}); err != nil {
			return err
		}

		return s.NotificationDAO.CreateTx(tx, &models.Notification{
			UserID:           userID,
			Title:            "提案を提出しました",
			Message:          "「" + proposal.Title + "」を提出し、" + formatPoints(required) + "を消費しました",
			NotificationType: models.NotifyPoint,
			ReferenceID:      proposal.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.Unread.Incr(ctx, userID)
	log.L.Info("proposal submitted",
		zap.Uint64("proposal_id", proposal.ID),
		zap.Uint64("user_id", userID),
		zap.Int64("points_used", required),
		zap.Int64("remaining", remaining),
	)

	return &types.SubmitResp{
		Success:          true,
		PointsUsed:       required,
		RemainingBalance: remaining,
		Status:           string(models.StatusSubmitted),
	}, nil
}

// ListProgress 進捗履歴（変更者名を解決して返す）
func (s *ProposalService) ListProgress(ctx context.Context, userID, proposalID uint64) ([]types.ProgressItem, error) {
	if _, err := s.findOwned(ctx, proposalID, userID); err != nil {
		return nil, err
	}

	records, err := s.ProgressDAO.ListByProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	items := make([]types.ProgressItem, 0, len(records))
	for _, r := range records {
		name := ""
		if user, err := s.UsersDAO.FindById(ctx, r.ChangedBy); err == nil {
			name = user.Name
		}
		items = append(items, types.ProgressItem{
			ID:            r.ID,
			Status:        string(r.Status),
			Note:          r.Note,
			ChangedByName: name,
			CreatedAt:     r.CreatedAt.Format(timeLayout),
		})
	}
	return items, nil
}

// Dashboard サプライヤーダッシュボード統計
func (s *ProposalService) Dashboard(ctx context.Context, userID uint64) (*types.DashboardResp, error) {
	stats, err := s.ProposalDAO.CountStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := s.PointDAO.GetOrCreateBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	unread := s.Unread.Get(ctx, userID)
	if unread == cache.CountMiss {
		unread, err = s.NotificationDAO.CountUnread(ctx, userID)
		if err != nil {
			unread = 0
		} else if err := s.Unread.Set(ctx, userID, unread); err != nil {
			log.L.Warn("unread cache set failed", zap.Error(err))
		}
	}

	return &types.DashboardResp{
		TotalProposals:      stats.Total,
		ActiveProposals:     stats.Active,
		AcceptedProposals:   stats.Accepted,
		RejectedProposals:   stats.Rejected,
		PointBalance:        balance.Balance,
		UnreadNotifications: unread,
	}, nil
}

func (s *ProposalService) findOwned(ctx context.Context, proposalID, userID uint64) (*models.Proposal, error) {
	proposal, err := s.ProposalDAO.FindOwned(ctx, proposalID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("提案", proposalID)
		}
		return nil, err
	}
	return proposal, nil
}

func formatPoints(n int64) string {
	return fmt.Sprintf("%dpt", n)
}

// pointsRequired 消費ポイントの解決。
// 下書き作成時に焼き込んだ値が正、0 の旧データのみ設定値へフォールバックする。
func (s *ProposalService) pointsRequired(p *models.Proposal) int64 {
	if p.PointsUsed > 0 {
		return p.PointsUsed
	}
	return s.Config.Points.ProposalCost
}
