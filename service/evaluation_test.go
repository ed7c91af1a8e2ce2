package service

import (
	"context"
	"testing"

	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{
		DB:              db,
		EvaluationDAO:   dao.NewEvaluation(db),
		ProposalDAO:     dao.NewProposal(db),
		ProgressDAO:     dao.NewProgress(db),
		NotificationDAO: dao.NewNotification(db),
		Unread:          newTestUnread(),
	}
}

func createProposalWithStatus(t *testing.T, db *gorm.DB, supplierID uint64, title string, status models.ProposalStatus) *models.Proposal {
	t.Helper()

	proposal := &models.Proposal{
		Title:          title,
		Status:         status,
		SupplierUserID: supplierID,
		SupplierOrgID:  1,
		PointsUsed:     300,
	}
	require.NoError(t, db.Create(proposal).Error)
	return proposal
}

func createEvaluation(t *testing.T, db *gorm.DB, proposalID uint64, score float64, rank models.EvaluationRank) *models.Evaluation {
	t.Helper()

	evaluation := &models.Evaluation{
		ProposalID:       proposalID,
		TotalScore:       score,
		CategoryScores:   datatypes.JSON(`{"技術力": 80, "価格": 70}`),
		TrustScore:       75,
		TrustRank:        models.TrustB,
		FactCheckResults: datatypes.JSON(`[{"claim": "実績あり", "verified": true}]`),
		Rank:             rank,
		Summary:          "テスト評価",
	}
	require.NoError(t, db.Create(evaluation).Error)
	return evaluation
}

func TestListProposals_ExcludesDrafts(t *testing.T) {
	db := newTestDB(t)
	svc := newEvaluationService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)

	createProposalWithStatus(t, db, supplier.ID, "下書き提案", models.StatusDraft)
	createProposalWithStatus(t, db, supplier.ID, "提出済み提案", models.StatusSubmitted)

	resp, err := svc.ListProposals(context.Background(), &types.ListProposalsReq{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "提出済み提案", resp.Items[0].Title)
}

func TestListProposals_SearchByTitle(t *testing.T) {
	db := newTestDB(t)
	svc := newEvaluationService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)

	createProposalWithStatus(t, db, supplier.ID, "新素材の提案", models.StatusSubmitted)
	createProposalWithStatus(t, db, supplier.ID, "物流改善の提案", models.StatusSubmitted)

	resp, err := svc.ListProposals(context.Background(), &types.ListProposalsReq{Search: "素材"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
}

func TestListEvaluations_FilterByRankAndScore(t *testing.T) {
	db := newTestDB(t)
	svc := newEvaluationService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)

	p1 := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusEvaluated)
	p2 := createProposalWithStatus(t, db, supplier.ID, "提案B", models.StatusEvaluated)
	p3 := createProposalWithStatus(t, db, supplier.ID, "提案C", models.StatusEvaluated)
	createEvaluation(t, db, p1.ID, 85, models.RankCandidate)
	createEvaluation(t, db, p2.ID, 60, models.RankConsider)
	createEvaluation(t, db, p3.ID, 90, models.RankCandidate)

	resp, err := svc.ListEvaluations(context.Background(), &types.ListEvaluationsReq{
		Rank:     string(models.RankCandidate),
		MinScore: 88,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, p3.ID, resp.Items[0].ProposalID)

	_, err = svc.ListEvaluations(context.Background(), &types.ListEvaluationsReq{Rank: "unknown"})
	var validation *apperr.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestGetFactCheck(t *testing.T) {
	db := newTestDB(t)
	svc := newEvaluationService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)

	proposal := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusEvaluated)
	evaluation := createEvaluation(t, db, proposal.ID, 85, models.RankCandidate)

	resp, err := svc.GetFactCheck(context.Background(), proposal.ID)
	require.NoError(t, err)
	assert.Equal(t, evaluation.ID, resp.EvaluationID)
	assert.Equal(t, "B", resp.TrustRank)
	assert.NotEmpty(t, resp.Items)

	_, err = svc.GetFactCheck(context.Background(), 9999)
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDecide_AcceptFromEvaluated(t *testing.T) {
	db := newTestDB(t)
	svc := newEvaluationService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	buyer := createTestUser(t, db, "b1@example.com", models.RoleBuyer)

	proposal := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusEvaluated)

	resp, err := svc.Decide(context.Background(), buyer.ID, proposal.ID, &types.DecisionReq{Decision: "accept"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, string(models.StatusAccepted), resp.Status)

	var stored models.Proposal
	require.NoError(t, db.First(&stored, proposal.ID).Error)
	assert.Equal(t, models.StatusAccepted, stored.Status)

	// 進捗とサプライヤー通知が残ること
	progress, err := svc.ProgressDAO.ListByProposal(context.Background(), proposal.ID)
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, buyer.ID, progress[0].ChangedBy)

	var notifyCount int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", supplier.ID).Count(&notifyCount).Error)
	assert.Equal(t, int64(1), notifyCount)
}

func TestDecide_RejectsInvalidTransition(t *testing.T) {
	db := newTestDB(t)
	svc := newEvaluationService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	buyer := createTestUser(t, db, "b1@example.com", models.RoleBuyer)

	// 提出直後の採用判断は許可されない（評価完了まで待つ）
	proposal := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusSubmitted)

	_, err := svc.Decide(context.Background(), buyer.ID, proposal.ID, &types.DecisionReq{Decision: "accept"})
	var invalidState *apperr.InvalidStateError
	require.ErrorAs(t, err, &invalidState)

	var stored models.Proposal
	require.NoError(t, db.First(&stored, proposal.ID).Error)
	assert.Equal(t, models.StatusSubmitted, stored.Status)
}

func TestDecide_HoldThenAccept(t *testing.T) {
	db := newTestDB(t)
	svc := newEvaluationService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	buyer := createTestUser(t, db, "b1@example.com", models.RoleBuyer)

	proposal := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusEvaluated)

	resp, err := svc.Decide(context.Background(), buyer.ID, proposal.ID, &types.DecisionReq{Decision: "hold", Note: "次回の調達計画で再検討"})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusOnHold), resp.Status)

	// 保留からの採用は許可される
	resp, err = svc.Decide(context.Background(), buyer.ID, proposal.ID, &types.DecisionReq{Decision: "accept"})
	require.NoError(t, err)
	assert.Equal(t, string(models.StatusAccepted), resp.Status)

	// 決着後の再判断は拒否
	_, err = svc.Decide(context.Background(), buyer.ID, proposal.ID, &types.DecisionReq{Decision: "reject"})
	var invalidState *apperr.InvalidStateError
	require.ErrorAs(t, err, &invalidState)
}

func TestDecide_DraftIsHidden(t *testing.T) {
	db := newTestDB(t)
	svc := newEvaluationService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	buyer := createTestUser(t, db, "b1@example.com", models.RoleBuyer)

	proposal := createProposalWithStatus(t, db, supplier.ID, "下書き", models.StatusDraft)

	_, err := svc.Decide(context.Background(), buyer.ID, proposal.ID, &types.DecisionReq{Decision: "accept"})
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
