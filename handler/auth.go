package handler

import (
	"net/http"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/middleware"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/context"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/response"
	"github.com/edaha-kurose/Buyer-matchingSystem/service"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	AuthService service.IAuthService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/register", context.Wrap(a.Register))
	auth.POST("/login", context.Wrap(a.Login))
	auth.GET("/me", middleware.Auth([]byte(a.Config.Jwt.Secret)), context.Wrap(a.Me))
	auth.POST("/logout", middleware.Auth([]byte(a.Config.Jwt.Secret)), context.Wrap(a.Logout))
}

func (a *Auth) Register(c *gin.Context) error {
	var req types.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := a.AuthService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}

func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	token, err := a.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	response.Success(c, token)
	return nil
}

// Logout トークンはステートレスなので破棄はクライアント側で行う
func (a *Auth) Logout(c *gin.Context) error {
	if _, err := context.GetUserID(c); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

func (a *Auth) Me(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	user, err := a.AuthService.Me(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, user)
	return nil
}
