package service

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/repository"
	"classroom_backend/internal/util"
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttachmentService struct {
	AttachmentRepo *repository.AttachmentRepository
	CourseRepo     *repository.CourseRepository
	Subjects       *repository.SubjectResolver
	Storage        *StorageService
}

func NewAttachmentService(attachmentRepo *repository.AttachmentRepository, courseRepo *repository.CourseRepository, subjects *repository.SubjectResolver, storage *StorageService) *AttachmentService {
	return &AttachmentService{
		AttachmentRepo: attachmentRepo,
		CourseRepo:     courseRepo,
		Subjects:       subjects,
		Storage:        storage,
	}
}

type LinkAttachmentRequest struct {
	Link        string            `json:"link" binding:"required"`
	SubjectType model.SubjectType `json:"subjectType" binding:"required"`
	SubjectID   uint              `json:"subjectId" binding:"required"`
}

// AttachLink pins an external URL to a subject.
func (s *AttachmentService) AttachLink(loader *model.User, req LinkAttachmentRequest) (*model.Attachment, error) {
	subject, err := s.Subjects.Resolve(req.SubjectType, req.SubjectID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAttachAccess(loader, subject); err != nil {
		return nil, err
	}

	attachment := &model.Attachment{
		Link:           req.Link,
		AttachmentType: model.AttachmentLink,
		SubjectID:      req.SubjectID,
		SubjectType:    req.SubjectType,
		LoaderID:       loader.ID,
	}
	if err := attachment.Validate(); err != nil {
		return nil, err
	}

	if err := s.AttachmentRepo.Create(attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

type FileAttachmentRequest struct {
	FileName    string
	Size        int64
	ContentType string
	Reader      io.Reader
	Type        model.AttachmentType
	SubjectType model.SubjectType
	SubjectID   uint
}

// AttachFile uploads the blob under a random object name, then records
// the attachment row pointing at it.
func (s *AttachmentService) AttachFile(ctx context.Context, loader *model.User, req FileAttachmentRequest) (*model.Attachment, error) {
	if req.Size > model.MaxAttachmentSize {
		return nil, util.ErrFileTooLarge
	}

	subject, err := s.Subjects.Resolve(req.SubjectType, req.SubjectID)
	if err != nil {
		return nil, err
	}
	if err := s.checkAttachAccess(loader, subject); err != nil {
		return nil, err
	}

	objectName := uuid.New().String() + filepath.Ext(req.FileName)
	link, err := s.Storage.Upload(ctx, objectName, req.Reader, req.Size, req.ContentType)
	if err != nil {
		return nil, err
	}

	attachment := &model.Attachment{
		Link:           link,
		ObjectName:     objectName,
		AttachmentType: req.Type,
		SubjectID:      req.SubjectID,
		SubjectType:    req.SubjectType,
		LoaderID:       loader.ID,
	}
	if err := attachment.Validate(); err != nil {
		s.Storage.Delete(ctx, objectName)
		return nil, err
	}

	if err := s.AttachmentRepo.Create(attachment); err != nil {
		s.Storage.Delete(ctx, objectName)
		return nil, err
	}
	return attachment, nil
}

// checkAttachAccess requires course membership; students may only attach
// to their own answers.
func (s *AttachmentService) checkAttachAccess(user *model.User, subject *repository.Subject) error {
	course, err := s.CourseRepo.FindByID(subject.CourseID())
	if err != nil {
		return util.ErrCourseNotFound
	}

	membership, err := s.CourseRepo.MembershipFor(user, course)
	if err != nil {
		return err
	}
	if !user.IsAdmin() && !membership.OnCourse() {
		return model.ErrPermissionDenied
	}

	if subject.Answer != nil && user.IsStudent() && subject.Answer.StudentID != user.ID {
		return model.ErrPermissionDenied
	}
	if subject.CoursePost != nil && user.IsStudent() {
		return model.ErrPermissionDenied
	}
	return nil
}

func (s *AttachmentService) ListBySubject(user *model.User, subjectType model.SubjectType, subjectID uint) ([]model.Attachment, error) {
	subject, err := s.Subjects.Resolve(subjectType, subjectID)
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(subject.CourseID())
	if err != nil {
		return nil, util.ErrCourseNotFound
	}
	membership, err := s.CourseRepo.MembershipFor(user, course)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() && !membership.OnCourse() {
		return nil, model.ErrPermissionDenied
	}

	return s.AttachmentRepo.ListBySubject(subjectType, subjectID)
}

// DeleteAttachment removes the row and, for uploaded files, the blob.
func (s *AttachmentService) DeleteAttachment(ctx context.Context, actor *model.User, id string) error {
	attachment, err := s.AttachmentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrSubjectNotFound
	}
	if err != nil {
		return err
	}
	if attachment.LoaderID != actor.ID && !actor.IsAdmin() {
		return model.ErrPermissionDenied
	}

	if err := s.AttachmentRepo.Delete(id); err != nil {
		return err
	}
	if attachment.ObjectName != "" {
		s.Storage.Delete(ctx, attachment.ObjectName)
	}
	return nil
}
