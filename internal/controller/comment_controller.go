package controller

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/service"
	"classroom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	CommentService *service.CommentService
	AuthService    *service.AuthService
}

func NewCommentController(commentService *service.CommentService, authService *service.AuthService) *CommentController {
	return &CommentController{
		CommentService: commentService,
		AuthService:    authService,
	}
}

func (ctl *CommentController) Create(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	comment, err := ctl.CommentService.CreateComment(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, comment)
}

func (ctl *CommentController) ListBySubject(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	subjectID, ok := parseID(c, "subjectId")
	if !ok {
		return
	}
	subjectType := model.SubjectType(c.Param("subjectType"))

	comments, err := ctl.CommentService.ListBySubject(user, subjectType, subjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, comments)
}

type commentUpdateRequest struct {
	Content string `json:"content" binding:"required"`
}

func (ctl *CommentController) Update(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req commentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	comment, err := ctl.CommentService.UpdateComment(user, commentID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, comment)
}

func (ctl *CommentController) Delete(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	commentID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctl.CommentService.DeleteComment(user, commentID); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"deleted": true})
}
