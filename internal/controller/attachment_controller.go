package controller

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/service"
	"classroom_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type AttachmentController struct {
	AttachmentService *service.AttachmentService
	AuthService       *service.AuthService
}

func NewAttachmentController(attachmentService *service.AttachmentService, authService *service.AuthService) *AttachmentController {
	return &AttachmentController{
		AttachmentService: attachmentService,
		AuthService:       authService,
	}
}

func (ctl *AttachmentController) AttachLink(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	var req service.LinkAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.BadRequest(c, err.Error())
		return
	}

	attachment, err := ctl.AttachmentService.AttachLink(user, req)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, attachment)
}

// AttachFile handles multipart uploads. Subject and kind come as form
// fields alongside the file part.
func (ctl *AttachmentController) AttachFile(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.BadRequest(c, "file is required")
		return
	}

	subjectID, err := strconv.ParseUint(c.PostForm("subjectId"), 10, 64)
	if err != nil {
		util.BadRequest(c, "invalid subjectId")
		return
	}
	subjectType := model.SubjectType(c.PostForm("subjectType"))

	attachmentType := model.AttachmentType(c.PostForm("type"))
	if attachmentType == "" {
		attachmentType = model.AttachmentFile
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(c, err)
		return
	}
	defer file.Close()

	attachment, err := ctl.AttachmentService.AttachFile(c.Request.Context(), user, service.FileAttachmentRequest{
		FileName:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Reader:      file,
		Type:        attachmentType,
		SubjectType: subjectType,
		SubjectID:   uint(subjectID),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	util.Created(c, attachment)
}

func (ctl *AttachmentController) ListBySubject(c *gin.Context) {
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

	attachments, err := ctl.AttachmentService.ListBySubject(user, subjectType, subjectID)
	if err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, attachments)
}

func (ctl *AttachmentController) Delete(c *gin.Context) {
	user := ctl.AuthService.GetCurrentUser(c)
	if user == nil {
		util.Unauthorized(c)
		return
	}

	if err := ctl.AttachmentService.DeleteAttachment(c.Request.Context(), user, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	util.Success(c, gin.H{"deleted": true})
}
