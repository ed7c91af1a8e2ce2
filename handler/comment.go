package handler

import (
	"net/http"

	"github.com/edaha-kurose/Buyer-matchingSystem/config"
	"github.com/edaha-kurose/Buyer-matchingSystem/middleware"
	"github.com/edaha-kurose/Buyer-matchingSystem/models"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/context"
	"github.com/edaha-kurose/Buyer-matchingSystem/pkg/response"
	"github.com/edaha-kurose/Buyer-matchingSystem/service"
	"github.com/edaha-kurose/Buyer-matchingSystem/types"

	"github.com/gin-gonic/gin"
)

// Comment コメントはサプライヤー・バイヤー双方が使うため、ロール制限は
// ルートではなくサービス側の閲覧権限解決に任せる。
type Comment struct {
	Config         *config.Config
	AuthService    service.IAuthService
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	comments := r.Group("/v1/proposals/:id/comments", middleware.Auth([]byte(h.Config.Jwt.Secret)))
	comments.GET("", context.Wrap(h.List))
	comments.POST("", context.Wrap(h.Create))
}

func (h *Comment) List(c *gin.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	proposalID, err := parseID(c)
	if err != nil {
		return err
	}

	items, err := h.CommentService.List(c.Request.Context(), user, proposalID)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (h *Comment) Create(c *gin.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	proposalID, err := parseID(c)
	if err != nil {
		return err
	}

	var req types.CommentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	id, err := h.CommentService.Create(c.Request.Context(), user, proposalID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"id": id})
	return nil
}

func (h *Comment) currentUser(c *gin.Context) (*models.User, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return nil, err
	}
	return h.AuthService.FindUser(c.Request.Context(), uid)
}
