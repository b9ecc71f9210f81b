package controller

import (
	"classroom_backend/internal/service"
	"classroom_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
	AuthService   *service.AuthService
}

func NewCourseController(courseService *service.CourseService, authService *service.AuthService) *CourseController {
	return &CourseController{
		CourseService: courseService,
		AuthService:   authService,
	}
}

func (ctl *CourseController) Create(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course, err := ctl.CourseService.CreateCourse(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, course)
}

func (ctl *CourseController) Get(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	course, membership, err := ctl.CourseService.GetCourse(user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"course": course, "membership": membership})
}

func (ctl *CourseController) List(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	courses, err := ctl.CourseService.ListMine(user, c.Query("created") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, courses)
}

func (ctl *CourseController) Update(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req service.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course, err := ctl.CourseService.UpdateCourse(user, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, course)
}

func (ctl *CourseController) Archive(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctl.CourseService.ArchiveCourse(user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"archived": true})
}

func (ctl *CourseController) Delete(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctl.CourseService.DeleteCourse(user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"deleted": true})
}

type inviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (ctl *CourseController) InviteTeacher(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	inv, err := ctl.CourseService.InviteTeacher(c.Request.Context(), user, c.Param("id"), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, inv)
}

func (ctl *CourseController) InviteStudent(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	inv, err := ctl.CourseService.InviteStudent(c.Request.Context(), user, c.Param("id"), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, inv)
}

type inviteResponse struct {
	Accept bool `json:"accept"`
}

func (ctl *CourseController) RespondTeacherInvite(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	inviteID, err := strconv.ParseUint(c.Param("inviteId"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid invite id")
		return
	}

	var req inviteResponse
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	inv, err := ctl.CourseService.RespondTeacherInvite(user, uint(inviteID), req.Accept)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, inv)
}

func (ctl *CourseController) RespondStudentInvite(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	inviteID, err := strconv.ParseUint(c.Param("inviteId"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid invite id")
		return
	}

	var req inviteResponse
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	inv, err := ctl.CourseService.RespondStudentInvite(user, uint(inviteID), req.Accept)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, inv)
}

type enrollRequest struct {
	Code string `json:"code" binding:"required"`
}

func (ctl *CourseController) Enroll(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	course, err := ctl.CourseService.EnrollByCode(user, req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, course)
}

func (ctl *CourseController) AddTheme(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req service.ThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	theme, err := ctl.CourseService.AddTheme(user, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, theme)
}

func (ctl *CourseController) ListThemes(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	themes, err := ctl.CourseService.ListThemes(user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, themes)
}

func (ctl *CourseController) ListMembers(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	teachers, students, err := ctl.CourseService.ListMembers(user, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"teachers": teachers, "students": students})
}
