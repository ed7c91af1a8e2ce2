package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao/cache"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/log"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IEvaluationService = (*EvaluationService)(nil)

type IEvaluationService interface {
	ListProposals(ctx context.Context, req *types.ListProposalsReq) (*types.ListProposalsResp, error)
	ListEvaluations(ctx context.Context, req *types.ListEvaluationsReq) (*types.ListEvaluationsResp, error)
	GetEvaluation(ctx context.Context, proposalID uint64) (*types.EvaluationItem, error)
	GetFactCheck(ctx context.Context, proposalID uint64) (*types.FactCheckResp, error)
	Decide(ctx context.Context, buyerUserID, proposalID uint64, req *types.DecisionReq) (*types.DecisionResp, error)
}

type EvaluationService struct {
	DB              *gorm.DB
	EvaluationDAO   *dao.Evaluation
	ProposalDAO     *dao.Proposal
	ProgressDAO     *dao.Progress
	NotificationDAO *dao.Notification
	Unread          *cache.UnreadStorage
}

// decisionStatus 採用判断とステータスの対応
var decisionStatus = map[string]models.ProposalStatus{
	"accept": models.StatusAccepted,
	"reject": models.StatusRejected,
	"hold":   models.StatusOnHold,
}

// ListProposals バイヤー向け提案一覧。下書きは含まない。
func (s *EvaluationService) ListProposals(ctx context.Context, req *types.ListProposalsReq) (*types.ListProposalsResp, error) {
	offset, limit := normalizePage(req.Offset, req.Limit, defaultProposalLimit, maxProposalLimit)

	filter := models.ProposalStatus(req.Status)
	if req.Status != "" && !filter.Valid() {
		return nil, apperr.NewValidation("不正なステータスです: " + req.Status)
	}

	proposals, total, err := s.ProposalDAO.ListForBuyer(ctx, filter, req.Search, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]types.ProposalItem, 0, len(proposals))
	for _, p := range proposals {
		items = append(items, types.ProposalItem{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			Status:      string(p.Status),
			PointsUsed:  p.PointsUsed,
			CreatedAt:   p.CreatedAt.Format(timeLayout),
			UpdatedAt:   p.UpdatedAt.Format(timeLayout),
		})
	}
	return &types.ListProposalsResp{Items: items, Total: total}, nil
}

// ListEvaluations 評価一覧。ランク・最低スコアで絞り込める。
func (s *EvaluationService) ListEvaluations(ctx context.Context, req *types.ListEvaluationsReq) (*types.ListEvaluationsResp, error) {
	offset, limit := normalizePage(req.Offset, req.Limit, defaultProposalLimit, maxProposalLimit)

	rank := models.EvaluationRank(req.Rank)
	if req.Rank != "" && !rank.Valid() {
		return nil, apperr.NewValidation("不正な評価ランクです: " + req.Rank)
	}

	evaluations, total, err := s.EvaluationDAO.List(ctx, rank, req.MinScore, offset, limit)
	if err != nil {
		return nil, err
	}

	items := make([]types.EvaluationItem, 0, len(evaluations))
	for _, e := range evaluations {
		items = append(items, toEvaluationItem(&e))
	}
	return &types.ListEvaluationsResp{Items: items, Total: total}, nil
}

// GetEvaluation 提案に紐づく評価の詳細
func (s *EvaluationService) GetEvaluation(ctx context.Context, proposalID uint64) (*types.EvaluationItem, error) {
	evaluation, err := s.findByProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	item := toEvaluationItem(evaluation)
	return &item, nil
}

// GetFactCheck ファクトチェック結果の取得
func (s *EvaluationService) GetFactCheck(ctx context.Context, proposalID uint64) (*types.FactCheckResp, error) {
	evaluation, err := s.findByProposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	resp := &types.FactCheckResp{
		EvaluationID: evaluation.ID,
		TrustScore:   evaluation.TrustScore,
		TrustRank:    string(evaluation.TrustRank),
	}
	if len(evaluation.FactCheckResults) > 0 {
		resp.Items = json.RawMessage(evaluation.FactCheckResults)
	}
	return resp, nil
}

// Decide 採用判断。ステータス遷移・進捗追記・サプライヤー通知を不可分に行う。
func (s *EvaluationService) Decide(ctx context.Context, buyerUserID, proposalID uint64, req *types.DecisionReq) (*types.DecisionResp, error) {
	target, ok := decisionStatus[req.Decision]
	if !ok {
		return nil, apperr.NewValidation("不正な判断です: " + req.Decision)
	}

	proposal, err := s.ProposalDAO.FindById(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("提案", proposalID)
		}
		return nil, err
	}
	if proposal.Status == models.StatusDraft {
		return nil, apperr.NewNotFound("提案", proposalID)
	}
	if !proposal.Status.CanTransitionTo(target) {
		return nil, apperr.NewInvalidState(string(proposal.Status), string(target))
	}

	note := req.Note
	if note == "" {
		note = decisionNote(target)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.ProposalDAO.UpdateStatusFrom(tx, proposal.ID, proposal.Status, target)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.NewConflict("提案のステータスが変更されています。再読み込みしてください")
		}

		if err := s.ProgressDAO.CreateTx(tx, &models.ProposalProgress{
			ProposalID: proposal.ID,
			Status:     target,
			ChangedBy:  buyerUserID,
			Note:       note,
		}); err != nil {
			return err
		}

		return s.NotificationDAO.CreateTx(tx, &models.Notification{
			UserID:           proposal.SupplierUserID,
			Title:            "提案のステータスが更新されました",
			Message:          "「" + proposal.Title + "」: " + decisionNote(target),
			NotificationType: models.NotifyStatusChange,
			ReferenceID:      proposal.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.Unread.Incr(ctx, proposal.SupplierUserID)
	log.L.Info("proposal decided",
		zap.Uint64("proposal_id", proposal.ID),
		zap.Uint64("buyer_user_id", buyerUserID),
		zap.String("decision", req.Decision),
	)

	return &types.DecisionResp{
		Success:    true,
		ProposalID: proposal.ID,
		Status:     string(target),
	}, nil
}

func (s *EvaluationService) findByProposal(ctx context.Context, proposalID uint64) (*models.Evaluation, error) {
	evaluation, err := s.EvaluationDAO.FindByProposal(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("評価", proposalID)
		}
		return nil, err
	}
	return evaluation, nil
}

func toEvaluationItem(e *models.Evaluation) types.EvaluationItem {
	item := types.EvaluationItem{
		ID:         e.ID,
		ProposalID: e.ProposalID,
		TotalScore: e.TotalScore,
		TrustScore: e.TrustScore,
		TrustRank:  string(e.TrustRank),
		Rank:       string(e.Rank),
		Summary:    e.Summary,
		CreatedAt:  e.CreatedAt.Format(timeLayout),
	}
	if len(e.CategoryScores) > 0 {
		item.CategoryScores = json.RawMessage(e.CategoryScores)
	}
	return item
}

func decisionNote(status models.ProposalStatus) string {
	switch status {
	case models.StatusAccepted:
		return "提案が採用されました"
	case models.StatusRejected:
		return "提案は不採用となりました"
	default:
		return "提案は保留となりました"
	}
}

// normalizePage ページング条件の正規化
func normalizePage(offset, limit, def, max int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	return offset, limit
}
