package service

import (
	"context"
	"testing"

	"github.com/edaha-kurose/Buyer-matchingSystem/dao"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/apperr"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/jwt"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		Config:          newTestConfig(),
		DB:              db,
		UsersDAO:        dao.NewUsers(db),
		OrganizationDAO: dao.NewOrganization(db),
	}
}

func TestRegister_DefaultsToSupplier(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(context.Background(), &types.RegisterReq{
		Email:    "s1@example.com",
		Password: "password123",
		Name:     "佐藤",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleSupplier), user.Role)
	assert.True(t, user.IsActive)
	assert.Zero(t, user.OrganizationID)
}

func TestRegister_CreatesOrganization(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(context.Background(), &types.RegisterReq{
		Email:    "b1@example.com",
		Password: "password123",
		Name:     "鈴木",
		Role:     "buyer",
		Company:  "株式会社テスト商事",
	})
	require.NoError(t, err)
	require.NotZero(t, user.OrganizationID)

	var org models.Organization
	require.NoError(t, db.First(&org, user.OrganizationID).Error)
	assert.Equal(t, "株式会社テスト商事", org.Name)
	assert.Equal(t, models.OrgBuyer, org.Type)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	req := &types.RegisterReq{
		Email:    "s1@example.com",
		Password: "password123",
		Name:     "佐藤",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	var conflict *apperr.ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestRegister_InvalidRole(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(context.Background(), &types.RegisterReq{
		Email:    "s1@example.com",
		Password: "password123",
		Name:     "佐藤",
		Role:     "superuser",
	})
	var validation *apperr.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestLogin_ReturnsValidToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	registered, err := svc.Register(context.Background(), &types.RegisterReq{
		Email:    "s1@example.com",
		Password: "password123",
		Name:     "佐藤",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "s1@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)

	claims, err := jwt.ParseToken([]byte(svc.Config.Jwt.Secret), "access", token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, string(models.RoleSupplier), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(context.Background(), &types.RegisterReq{
		Email:    "s1@example.com",
		Password: "password123",
		Name:     "佐藤",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "s1@example.com", "wrong-password")
	var unauthorized *apperr.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)

	// 存在しないユーザーでも同じエラー種別（情報を漏らさない）
	_, err = svc.Login(context.Background(), "nobody@example.com", "password123")
	require.ErrorAs(t, err, &unauthorized)
}

func TestLogin_InactiveAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(context.Background(), &types.RegisterReq{
		Email:    "s1@example.com",
		Password: "password123",
		Name:     "佐藤",
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err = svc.Login(context.Background(), "s1@example.com", "password123")
	var denied *apperr.PermissionDeniedError
	require.ErrorAs(t, err, &denied)
}
