package app

import (
	"classroom_backend/internal/middleware"
	"classroom_backend/internal/model"
	"classroom_backend/pkg/monitoring"
	"classroom_backend/pkg/security"
	"classroom_backend/pkg/tracing"
	"time"

	"github.com/gin-gonic/gin"
)

func (a *App) buildRouter() *gin.Engine {
	gin.SetMode(a.Config.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(security.CORS(a.Config.CORS.AllowedOrigins))
	r.Use(security.Secure())
	if a.Config.RateLimit.MaxRequests > 0 {
		window := time.Duration(a.Config.RateLimit.WindowMinutes) * time.Minute
		r.Use(security.RateLimiter(a.Config.RateLimit.MaxRequests, window))
	}
	r.Use(monitoring.MetricsMiddleware())
	if a.Config.Tracing.Enabled {
		r.Use(tracing.GinMiddleware())
	}

	r.GET("/health", a.Controllers.Health.Health)
	r.GET("/metrics", monitoring.PrometheusHandler())

	if a.Config.Storage.Type == "local" {
		r.Static("/uploads", a.Config.Storage.LocalPath)
	}

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/register", a.Controllers.Auth.Register)
		auth.POST("/login", a.Controllers.Auth.Login)
		auth.GET("/verify", a.Controllers.Auth.Verify)
		auth.POST("/verify/resend", a.Controllers.Auth.ResendVerification)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(a.Config))
	{
		authed.GET("/auth/me", a.Controllers.Auth.Me)
	}

	verified := api.Group("")
	verified.Use(middleware.AuthMiddleware(a.Config), middleware.VerifiedMiddleware())

	courses := verified.Group("/courses")
	{
		courses.POST("", middleware.RoleMiddleware(model.Teacher), a.Controllers.Course.Create)
		courses.GET("", a.Controllers.Course.List)
		courses.GET("/:id", a.Controllers.Course.Get)
		courses.PUT("/:id", a.Controllers.Course.Update)
		courses.POST("/:id/archive", a.Controllers.Course.Archive)
		courses.DELETE("/:id", a.Controllers.Course.Delete)

		courses.POST("/:id/teachers", a.Controllers.Course.InviteTeacher)
		courses.POST("/:id/students", a.Controllers.Course.InviteStudent)
		courses.GET("/:id/members", a.Controllers.Course.ListMembers)

		courses.POST("/:id/themes", a.Controllers.Course.AddTheme)
		courses.GET("/:id/themes", a.Controllers.Course.ListThemes)

		courses.GET("/:id/tasks", a.Controllers.Post.ListCourseTasks)
	}

	verified.POST("/enroll", middleware.RoleMiddleware(model.Student), a.Controllers.Course.Enroll)
	verified.POST("/invites/teacher/:inviteId", a.Controllers.Course.RespondTeacherInvite)
	verified.POST("/invites/student/:inviteId", a.Controllers.Course.RespondStudentInvite)

	posts := verified.Group("/posts")
	{
		posts.POST("", a.Controllers.Post.Create)
		posts.GET("", a.Controllers.Post.ListOwn)
		posts.GET("/:id", a.Controllers.Post.Get)
		posts.PUT("/:id", a.Controllers.Post.Update)
		posts.DELETE("/:id", a.Controllers.Post.Delete)

		posts.POST("/:id/options", a.Controllers.Post.AddOption)
		posts.GET("/:id/options", a.Controllers.Post.ListOptions)
		posts.PUT("/:id/options/:optionId", a.Controllers.Post.UpdateOption)
		posts.DELETE("/:id/options/:optionId", a.Controllers.Post.DeleteOption)

		posts.POST("/:id/courses", a.Controllers.Post.AttachToCourse)
	}

	tasks := verified.Group("/tasks")
	{
		tasks.GET("/:taskId", a.Controllers.Post.GetTask)
		tasks.POST("/:taskId/answer", middleware.RoleMiddleware(model.Student), a.Controllers.Answer.Open)
		tasks.GET("/:taskId/answers", middleware.RoleMiddleware(model.Teacher), a.Controllers.Answer.ListByTask)
	}

	answers := verified.Group("/answers")
	{
		answers.POST("/:id/progress", middleware.RoleMiddleware(model.Student), a.Controllers.Answer.Progress)
		answers.POST("/:id/submit", middleware.RoleMiddleware(model.Student), a.Controllers.Answer.Submit)
		answers.POST("/:id/grade", middleware.RoleMiddleware(model.Teacher), a.Controllers.Answer.Grade)

		answers.POST("/:id/selections", middleware.RoleMiddleware(model.Student), a.Controllers.Answer.AddSelection)
		answers.GET("/:id/selections", middleware.RoleMiddleware(model.Student), a.Controllers.Answer.ListSelections)
	}

	selections := verified.Group("/selections")
	selections.Use(middleware.RoleMiddleware(model.Student))
	{
		selections.PUT("/:selectionId", a.Controllers.Answer.UpdateSelection)
		selections.DELETE("/:selectionId", a.Controllers.Answer.RemoveSelection)
	}

	comments := verified.Group("/comments")
	{
		comments.POST("", a.Controllers.Comment.Create)
		comments.GET("/:subjectType/:subjectId", a.Controllers.Comment.ListBySubject)
		comments.PUT("/:id", a.Controllers.Comment.Update)
		comments.DELETE("/:id", a.Controllers.Comment.Delete)
	}

	attachments := verified.Group("/attachments")
	{
		attachments.POST("/link", a.Controllers.Attachment.AttachLink)
		attachments.POST("/file", a.Controllers.Attachment.AttachFile)
		attachments.GET("/:subjectType/:subjectId", a.Controllers.Attachment.ListBySubject)
		attachments.DELETE("/:id", a.Controllers.Attachment.Delete)
	}

	notifications := verified.Group("/notifications")
	{
		notifications.GET("", a.Controllers.Notification.List)
		notifications.GET("/unread", a.Controllers.Notification.UnreadCount)
		notifications.POST("/:id/read", a.Controllers.Notification.MarkAsRead)
	}

	return r
}
