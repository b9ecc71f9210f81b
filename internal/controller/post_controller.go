package controller

import (
	"classroom_backend/internal/service"
	"classroom_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	PostService *service.PostService
	AuthService *service.AuthService
}

func NewPostController(postService *service.PostService, authService *service.AuthService) *PostController {
	return &PostController{
		PostService: postService,
		AuthService: authService,
	}
}

func (ctl *PostController) Create(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req service.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	post, err := ctl.PostService.CreatePost(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, post)
}

func (ctl *PostController) Get(c *gin.Context) {
	post, err := ctl.PostService.GetPost(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, post)
}

func (ctl *PostController) ListOwn(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	posts, err := ctl.PostService.ListOwn(user)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, posts)
}

func (ctl *PostController) Update(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req service.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	post, err := ctl.PostService.UpdatePost(user, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, post)
}

func (ctl *PostController) Delete(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctl.PostService.DeletePost(user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"deleted": true})
}

func (ctl *PostController) AddOption(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req service.QuestionOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	option, err := ctl.PostService.AddOption(user, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, option)
}

func (ctl *PostController) ListOptions(c *gin.Context) {
	options, err := ctl.PostService.ListOptions(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, options)
}

func (ctl *PostController) UpdateOption(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	optionID, err := strconv.ParseUint(c.Param("optionId"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid option id")
		return
	}

	var req service.QuestionOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	option, err := ctl.PostService.UpdateOption(user, uint(optionID), req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, option)
}

func (ctl *PostController) DeleteOption(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	optionID, err := strconv.ParseUint(c.Param("optionId"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid option id")
		return
	}

	if err := ctl.PostService.DeleteOption(user, uint(optionID)); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"deleted": true})
}

type attachToCourseRequest struct {
	CourseID string `json:"courseId" binding:"required"`
}

func (ctl *PostController) AttachToCourse(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req attachToCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	task, err := ctl.PostService.AttachToCourse(user, c.Param("id"), req.CourseID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, task)
}

func (ctl *PostController) GetTask(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid task id")
		return
	}

	task, err := ctl.PostService.GetTask(uint(taskID))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, task)
}

func (ctl *PostController) ListCourseTasks(c *gin.Context) {
	tasks, err := ctl.PostService.ListCourseTasks(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, tasks)
}
