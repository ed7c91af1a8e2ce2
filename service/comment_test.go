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
	"gorm.io/gorm"
)

func newCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		DB:              db,
		CommentDAO:      dao.NewComment(db),
		ProposalDAO:     dao.NewProposal(db),
		UsersDAO:        dao.NewUsers(db),
		NotificationDAO: dao.NewNotification(db),
		Unread:          newTestUnread(),
	}
}

func TestComment_InternalHiddenFromSupplier(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	buyer := createTestUser(t, db, "b1@example.com", models.RoleBuyer)

	proposal := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusSubmitted)

	_, err := svc.Create(context.Background(), buyer, proposal.ID, &types.CommentCreateReq{
		Content: "価格の根拠を教えてください",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), buyer, proposal.ID, &types.CommentCreateReq{
		Content:    "社内メモ: 競合より2割高い",
		IsInternal: true,
	})
	require.NoError(t, err)

	// バイヤーには両方見える
	buyerView, err := svc.List(context.Background(), buyer, proposal.ID)
	require.NoError(t, err)
	assert.Len(t, buyerView, 2)

	// サプライヤーには内部コメントは見えない
	supplierView, err := svc.List(context.Background(), supplier, proposal.ID)
	require.NoError(t, err)
	require.Len(t, supplierView, 1)
	assert.Equal(t, "価格の根拠を教えてください", supplierView[0].Content)
	assert.Equal(t, string(models.RoleBuyer), supplierView[0].UserRole)
}

func TestComment_SupplierCannotMarkInternal(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)

	proposal := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusSubmitted)

	id, err := svc.Create(context.Background(), supplier, proposal.ID, &types.CommentCreateReq{
		Content:    "補足資料を追加しました",
		IsInternal: true, // サプライヤーの指定は無視される
	})
	require.NoError(t, err)

	var stored models.Comment
	require.NoError(t, db.First(&stored, id).Error)
	assert.False(t, stored.IsInternal)
}

func TestComment_BuyerCommentNotifiesSupplier(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	buyer := createTestUser(t, db, "b1@example.com", models.RoleBuyer)

	proposal := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusSubmitted)

	_, err := svc.Create(context.Background(), buyer, proposal.ID, &types.CommentCreateReq{
		Content: "質問があります",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ? AND notification_type = ?", supplier.ID, models.NotifyComment).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// 内部コメントは通知しない
	_, err = svc.Create(context.Background(), buyer, proposal.ID, &types.CommentCreateReq{
		Content:    "社内メモ",
		IsInternal: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", supplier.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestComment_RepliesOrderedOldestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	supplier := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	buyer := createTestUser(t, db, "b1@example.com", models.RoleBuyer)

	proposal := createProposalWithStatus(t, db, supplier.ID, "提案A", models.StatusSubmitted)

	parentID, err := svc.Create(context.Background(), buyer, proposal.ID, &types.CommentCreateReq{
		Content: "納期はどの程度ですか",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), supplier, proposal.ID, &types.CommentCreateReq{
		Content:  "3ヶ月を見込んでいます",
		ParentID: parentID,
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), buyer, proposal.ID, &types.CommentCreateReq{
		Content:  "承知しました",
		ParentID: parentID,
	})
	require.NoError(t, err)

	view, err := svc.List(context.Background(), buyer, proposal.ID)
	require.NoError(t, err)
	require.Len(t, view, 1)
	require.Len(t, view[0].Replies, 2)
	assert.Equal(t, "3ヶ月を見込んでいます", view[0].Replies[0].Content)
	assert.Equal(t, "承知しました", view[0].Replies[1].Content)
}

func TestComment_SupplierCannotSeeOthersProposal(t *testing.T) {
	db := newTestDB(t)
	svc := newCommentService(db)
	owner := createTestUser(t, db, "s1@example.com", models.RoleSupplier)
	other := createTestUser(t, db, "s2@example.com", models.RoleSupplier)

	proposal := createProposalWithStatus(t, db, owner.ID, "提案A", models.StatusSubmitted)

	_, err := svc.List(context.Background(), other, proposal.ID)
	var notFound *apperr.NotFoundError
	require.ErrorAs(t, err, &notFound)

	_, err = svc.Create(context.Background(), other, proposal.ID, &types.CommentCreateReq{Content: "横入り"})
	require.ErrorAs(t, err, &notFound)
}
