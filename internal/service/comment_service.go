package service

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/repository"
	"classroom_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

type CommentService struct {
	CommentRepo *repository.CommentRepository
	CourseRepo  *repository.CourseRepository
	Subjects    *repository.SubjectResolver
}

func NewCommentService(commentRepo *repository.CommentRepository, courseRepo *repository.CourseRepository, subjects *repository.SubjectResolver) *CommentService {
	return &CommentService{
		CommentRepo: commentRepo,
		CourseRepo:  courseRepo,
		Subjects:    subjects,
	}
}

type CommentRequest struct {
	Content     string            `json:"content" binding:"required"`
	SubjectType model.SubjectType `json:"subjectType" binding:"required"`
	SubjectID   uint              `json:"subjectId" binding:"required"`
}

// CreateComment resolves the polymorphic subject, then applies the
// course comment policy plus the post's own can_comment switch.
func (s *CommentService) CreateComment(author *model.User, req CommentRequest) (*model.Comment, error) {
	subject, err := s.Subjects.Resolve(req.SubjectType, req.SubjectID)
	if err != nil {
		return nil, err
	}

	if err := s.checkCommentAccess(author, subject); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Content:     req.Content,
		AuthorID:    author.ID,
		SubjectID:   req.SubjectID,
		SubjectType: req.SubjectType,
	}
	if err := s.CommentRepo.Create(comment); err != nil {
		return nil, err
	}
	comment.Author = author
	return comment, nil
}

func (s *CommentService) checkCommentAccess(user *model.User, subject *repository.Subject) error {
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
	if !course.CanUserComment(user, membership) {
		return model.ErrPermissionDenied
	}

	// Answers are only discussed between the student and the staff.
	if subject.Answer != nil && user.IsStudent() && subject.Answer.StudentID != user.ID {
		return model.ErrPermissionDenied
	}

	// A post can close its comment thread for students.
	if subject.CoursePost != nil && subject.CoursePost.Post != nil &&
		!subject.CoursePost.Post.CanComment && user.IsStudent() {
		return model.ErrPermissionDenied
	}
	return nil
}

func (s *CommentService) ListBySubject(user *model.User, subjectType model.SubjectType, subjectID uint) ([]model.Comment, error) {
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

	return s.CommentRepo.ListBySubject(subjectType, subjectID)
}

func (s *CommentService) UpdateComment(actor *model.User, id uint, content string) (*model.Comment, error) {
	comment, err := s.CommentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubjectNotFound
	}
	if err != nil {
		return nil, err
	}
	if !comment.CanEdit(actor) {
		return nil, model.ErrPermissionDenied
	}

	comment.Content = content
	if err := s.CommentRepo.Save(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) DeleteComment(actor *model.User, id uint) error {
	comment, err := s.CommentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrSubjectNotFound
	}
	if err != nil {
		return err
	}
	if !comment.CanDelete(actor) {
		return model.ErrPermissionDenied
	}
	return s.CommentRepo.Delete(id)
}
