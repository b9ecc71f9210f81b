package controller

import (
	"classroom_backend/internal/service"
	"classroom_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	AnswerService *service.AnswerService
	AuthService   *service.AuthService
}

func NewAnswerController(answerService *service.AnswerService, authService *service.AuthService) *AnswerController {
	return &AnswerController{
		AnswerService: answerService,
		AuthService:   authService,
	}
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid "+param)
		return 0, false
	}
	return uint(id), true
}

// Open returns the caller's answer on a task, creating it on first
// access.
func (ctl *AnswerController) Open(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	taskID, ok := parseID(c, "taskId")
	if !ok {
		return
	}

	answer, err := ctl.AnswerService.GetOrCreate(user, taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, answer)
}

func (ctl *AnswerController) Progress(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	answerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	answer, err := ctl.AnswerService.Progress(user, answerID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, answer)
}

func (ctl *AnswerController) Submit(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	answerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	answer, err := ctl.AnswerService.Submit(user, answerID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, answer)
}

type gradeRequest struct {
	Score *int `json:"score" binding:"required"`
}

func (ctl *AnswerController) Grade(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	answerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req gradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	answer, err := ctl.AnswerService.Grade(user, answerID, *req.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, answer)
}

func (ctl *AnswerController) ListByTask(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	taskID, ok := parseID(c, "taskId")
	if !ok {
		return
	}

	answers, err := ctl.AnswerService.ListByTask(user, taskID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, answers)
}

func (ctl *AnswerController) AddSelection(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	answerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	link, err := ctl.AnswerService.AddSelection(user, answerID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, link)
}

func (ctl *AnswerController) ListSelections(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	answerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	links, err := ctl.AnswerService.ListSelections(user, answerID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, links)
}

func (ctl *AnswerController) UpdateSelection(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	linkID, ok := parseID(c, "selectionId")
	if !ok {
		return
	}

	var req service.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	link, err := ctl.AnswerService.UpdateSelection(user, linkID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, link)
}

func (ctl *AnswerController) RemoveSelection(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	linkID, ok := parseID(c, "selectionId")
	if !ok {
		return
	}

	if err := ctl.AnswerService.RemoveSelection(user, linkID); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"deleted": true})
}
