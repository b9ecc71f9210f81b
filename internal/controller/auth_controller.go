package controller

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/service"
	"classroom_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type registerRequest struct {
	FirstName  string     `json:"firstName" binding:"required"`
	SecondName string     `json:"secondName" binding:"required"`
	LastName   *string    `json:"lastName"`
	Email      string     `json:"email" binding:"required,email"`
	Password   string     `json:"password" binding:"required,min=8"`
	Role       model.Role `json:"role"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	role := req.Role
	if role != model.Student && role != model.Teacher {
		role = model.Student
	}

	user := &model.User{
		FirstName:  req.FirstName,
		SecondName: req.SecondName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Role:       role,
	}

	if err := ctl.AuthService.Register(c.Request.Context(), user); err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, user)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	token, err := ctl.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"token": token})
}

func (ctl *AuthController) Verify(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		util.BadRequest(c, "token is required")
		return
	}

	if err := ctl.AuthService.Verify(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"verified": true})
}

type resendRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (ctl *AuthController) ResendVerification(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	if err := ctl.AuthService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"sent": true})
}

func (ctl *AuthController) Me(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}
	util.Success(c, user)
}
