package service

import (
	"context"
	"errors"

	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao/cache"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	List(ctx context.Context, user *models.User, proposalID uint64) ([]types.CommentItem, error)
	Create(ctx context.Context, user *models.User, proposalID uint64, req *types.CommentCreateReq) (uint64, error)
}

type CommentService struct {
	DB              *gorm.DB
	CommentDAO      *dao.Comment
	ProposalDAO     *dao.Proposal
	UsersDAO        *dao.Users
	NotificationDAO *dao.Notification
	Unread          *cache.UnreadStorage
}

// List 提案のコメント一覧。サプライヤーには内部コメントを見せない。
func (s *CommentService) List(ctx context.Context, user *models.User, proposalID uint64) ([]types.CommentItem, error) {
	proposal, err := s.resolveProposal(ctx, user, proposalID)
	if err != nil {
		return nil, err
	}

	includeInternal := user.Role != models.RoleSupplier
	comments, err := s.CommentDAO.ListTopLevel(ctx, proposal.ID, includeInternal)
	if err != nil {
		return nil, err
	}

	items := make([]types.CommentItem, 0, len(comments))
	for _, c := range comments {
		item, err := s.toItem(ctx, &c)
		if err != nil {
			return nil, err
		}

		replies, err := s.CommentDAO.ListReplies(ctx, c.ID, includeInternal)
		if err != nil {
			return nil, err
		}
		item.Replies = make([]types.CommentItem, 0, len(replies))
		for _, r := range replies {
			reply, err := s.toItem(ctx, &r)
			if err != nil {
				return nil, err
			}
			item.Replies = append(item.Replies, *reply)
		}

		items = append(items, *item)
	}
	return items, nil
}

// Create コメント追加。バイヤーのコメントはサプライヤーへ通知する。
func (s *CommentService) Create(ctx context.Context, user *models.User, proposalID uint64, req *types.CommentCreateReq) (uint64, error) {
	proposal, err := s.resolveProposal(ctx, user, proposalID)
	if err != nil {
		return 0, err
	}

	// 内部コメントはバイヤー・管理者のみ
	isInternal := req.IsInternal && user.Role != models.RoleSupplier

	comment := &models.Comment{
		ProposalID: proposal.ID,
		UserID:     user.ID,
		Content:    req.Content,
		ParentID:   req.ParentID,
		IsInternal: isInternal,
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}

		// 相手に見えないコメントは通知しない
		if user.Role == models.RoleSupplier || isInternal {
			return nil
		}
		return s.NotificationDAO.CreateTx(tx, &models.Notification{
			UserID:           proposal.SupplierUserID,
			Title:            "新しいコメントがあります",
			Message:          "「" + proposal.Title + "」にコメントが追加されました",
			NotificationType: models.NotifyComment,
			ReferenceID:      proposal.ID,
		})
	})
	if err != nil {
		return 0, err
	}

	if user.Role != models.RoleSupplier && !isInternal {
		s.Unread.Incr(ctx, proposal.SupplierUserID)
	}
	return comment.ID, nil
}

// resolveProposal 閲覧権限の解決。サプライヤーは自身の提案のみ、
// バイヤー・管理者は下書き以外を参照できる。
func (s *CommentService) resolveProposal(ctx context.Context, user *models.User, proposalID uint64) (*models.Proposal, error) {
	proposal, err := s.ProposalDAO.FindById(ctx, proposalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewNotFound("提案", proposalID)
		}
		return nil, err
	}

	if user.Role == models.RoleSupplier && proposal.SupplierUserID != user.ID {
		return nil, apperr.NewNotFound("提案", proposalID)
	}
	if user.Role != models.RoleSupplier && proposal.Status == models.StatusDraft {
		return nil, apperr.NewNotFound("提案", proposalID)
	}
	return proposal, nil
}

func (s *CommentService) toItem(ctx context.Context, c *models.Comment) (*types.CommentItem, error) {
	name, role := "", ""
	if user, err := s.UsersDAO.FindById(ctx, c.UserID); err == nil {
		name, role = user.Name, string(user.Role)
	}
	return &types.CommentItem{
		ID:         c.ID,
		Content:    c.Content,
		UserName:   name,
		UserRole:   role,
		IsInternal: c.IsInternal,
		CreatedAt:  c.CreatedAt.Format(timeLayout),
		Replies:    []types.CommentItem{},
	}, nil
}
