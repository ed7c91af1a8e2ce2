package service

import (
	"context"
	"errors"
	"time"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/encrypt"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/jwt"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterReq) (*types.UserResp, error)
	Login(ctx context.Context, email, password string) (*types.TokenResp, error)
	Me(ctx context.Context, userID uint64) (*types.UserResp, error)
	FindUser(ctx context.Context, userID uint64) (*models.User, error)
}

type AuthService struct {
	Config          *config.Config
	DB              *gorm.DB
	UsersDAO        *dao.Users
	OrganizationDAO *dao.Organization
}

// Register ユーザー登録
func (s *AuthService) Register(ctx context.Context, req *types.RegisterReq) (*types.UserResp, error) {
	role := models.UserRole(req.Role)
	if req.Role == "" {
		role = models.RoleSupplier
	}
	if !role.Valid() {
		return nil, apperr.NewValidation("不正なロールです: " + req.Role)
	}

	if s.UsersDAO.IsEmailExist(ctx, req.Email) {
		return nil, apperr.NewConflict("このメールアドレスは既に登録されています")
	}

	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:          req.Email,
		HashedPassword: hashed,
		Name:           req.Name,
		Role:           role,
		IsActive:       true,
	}

	// 組織名が指定された場合はユーザーと同時に作成する
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if req.Company != "" {
			orgType := models.OrgSupplier
			if role == models.RoleBuyer {
				orgType = models.OrgBuyer
			}
			org := &models.Organization{
				Name: req.Company,
				Type: orgType,
			}
			if err := s.OrganizationDAO.CreateTx(tx, org); err != nil {
				return err
			}
			user.OrganizationID = org.ID
		}
		return tx.Create(user).Error
	})
	if err != nil {
		// 一意制約による同時登録の競合
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflict("このメールアドレスは既に登録されています")
		}
		return nil, err
	}

	return toUserResp(user), nil
}

// Login ログイン処理。成功時にアクセストークンを返す。
func (s *AuthService) Login(ctx context.Context, email, password string) (*types.TokenResp, error) {
	user, err := s.UsersDAO.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewUnauthorized("メールアドレスまたはパスワードが違います")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.HashedPassword, password) {
		return nil, apperr.NewUnauthorized("メールアドレスまたはパスワードが違います")
	}
	if !user.IsActive {
		return nil, apperr.NewPermissionDenied("アカウントが無効化されています")
	}

	expire := time.Duration(s.Config.Jwt.ExpireMinutes) * time.Minute
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, string(user.Role), "access", expire)
	if err != nil {
		return nil, err
	}

	return &types.TokenResp{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// Me 現在のユーザー情報取得
func (s *AuthService) Me(ctx context.Context, userID uint64) (*types.UserResp, error) {
	user, err := s.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResp(user), nil
}

// FindUser 他サービスから使う認証済みユーザーの取得
func (s *AuthService) FindUser(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NewUnauthorized("認証情報が無効です")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.NewPermissionDenied("アカウントが無効化されています")
	}
	return user, nil
}

func toUserResp(user *models.User) *types.UserResp {
	return &types.UserResp{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		Role:           string(user.Role),
		IsActive:       user.IsActive,
		OrganizationID: user.OrganizationID,
	}
}
