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

type Notification struct {
	Config              *config.Config
	NotificationService service.INotificationService
}

func (n *Notification) RegisterRouter(r gin.IRouter) {
	notifications := r.Group("/v1/notifications", middleware.Auth([]byte(n.Config.Jwt.Secret)))
	notifications.GET("", context.Wrap(n.List))
	notifications.GET("/unread-count", context.Wrap(n.UnreadCount))
	notifications.PUT("/:id/read", context.Wrap(n.MarkRead))
	notifications.PUT("/read-all", context.Wrap(n.MarkAllRead))
}

func (n *Notification) List(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	var req types.ListNotificationsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusUnprocessableEntity, err.Error())
	}

	items, err := n.NotificationService.List(c.Request.Context(), uid, req.UnreadOnly, req.Offset, req.Limit)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

func (n *Notification) UnreadCount(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	count, err := n.NotificationService.CountUnread(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"unread_count": count})
	return nil
}

func (n *Notification) MarkRead(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	notificationID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := n.NotificationService.MarkRead(c.Request.Context(), uid, notificationID); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}

func (n *Notification) MarkAllRead(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}

	if err := n.NotificationService.MarkAllRead(c.Request.Context(), uid); err != nil {
		return err
	}
	response.Success(c, gin.H{"success": true})
	return nil
}
