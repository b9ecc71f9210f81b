package controller

import (
	"classroom_backend/internal/service"
	"classroom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
	AuthService         *service.AuthService
}

func NewNotificationController(notificationService *service.NotificationService, authService *service.AuthService) *NotificationController {
	return &NotificationController{
		NotificationService: notificationService,
		AuthService:         authService,
	}
}

func (ctl *NotificationController) List(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	onlyUnread := c.Query("unread") == "true"
	notifications, err := ctl.NotificationService.ListMine(user, onlyUnread)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, notifications)
}

func (ctl *NotificationController) UnreadCount(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	count, err := ctl.NotificationService.UnreadCount(user)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"unread": count})
}

func (ctl *NotificationController) MarkAsRead(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	n, err := ctl.NotificationService.MarkAsRead(user, id)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, n)
}
