package service

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/repository"
	"classroom_backend/internal/util"
	"classroom_backend/pkg/logger"
	"classroom_backend/pkg/monitoring"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PostService struct {
	PostRepo   *repository.PostRepository
	CourseRepo *repository.CourseRepository
	UserRepo   *repository.UserRepository
}

func NewPostService(postRepo *repository.PostRepository, courseRepo *repository.CourseRepository, userRepo *repository.UserRepository) *PostService {
	return &PostService{
		PostRepo:   postRepo,
		CourseRepo: courseRepo,
		UserRepo:   userRepo,
	}
}

type PostRequest struct {
	Name         string             `json:"name" binding:"required"`
	Description  *string            `json:"description"`
	PostType     model.PostType     `json:"postType" binding:"required"`
	ThemeID      *uint              `json:"themeId"`
	IsPublished  bool               `json:"isPublished"`
	MaxScore     *int               `json:"maxScore"`
	Deadline     *time.Time         `json:"deadline"`
	QuestionType model.QuestionType `json:"questionType"`
	CanChange    bool               `json:"canChange"`
	CanComment   bool               `json:"canComment"`
}

// CreatePost validates the shape for the author's role before anything
// is written. The post id is generated collision-checked on insert.
func (s *PostService) CreatePost(author *model.User, req PostRequest) (*model.Post, error) {
	post := &model.Post{
		Name:         req.Name,
		Description:  req.Description,
		PostType:     req.PostType,
		ThemeID:      req.ThemeID,
		AuthorID:     &author.ID,
		Author:       author,
		IsPublished:  req.IsPublished,
		MaxScore:     req.MaxScore,
		Deadline:     req.Deadline,
		QuestionType: req.QuestionType,
		CanChange:    req.CanChange,
		CanComment:   req.CanComment,
	}

	if err := post.Validate(author); err != nil {
		return nil, err
	}

	if err := s.PostRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) GetPost(id string) (*model.Post, error) {
	post, err := s.PostRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPostNotFound
	}
	return post, err
}

// UpdatePost re-validates the full entity, then persists through the
// reconciling save: an incompatible question_type edit purges dependent
// selections and reopens answers atomically with the field update.
func (s *PostService) UpdatePost(actor *model.User, id string, req PostRequest) (*model.Post, error) {
	post, err := s.GetPost(id)
	if err != nil {
		return nil, err
	}

	if !s.canEditPost(actor, post) {
		return nil, model.ErrPermissionDenied
	}

	post.Name = req.Name
	post.Description = req.Description
	post.PostType = req.PostType
	post.ThemeID = req.ThemeID
	post.IsPublished = req.IsPublished
	post.MaxScore = req.MaxScore
	post.Deadline = req.Deadline
	post.QuestionType = req.QuestionType
	post.CanChange = req.CanChange
	post.CanComment = req.CanComment

	author := actor
	if post.AuthorID != nil && *post.AuthorID != actor.ID {
		author, err = s.UserRepo.FindByID(*post.AuthorID)
		if err != nil {
			author = nil
		}
	}
	if err := post.Validate(author); err != nil {
		return nil, err
	}

	reconciled, err := s.PostRepo.SaveReconciling(post)
	if err != nil {
		monitoring.ReconcileCounter.WithLabelValues("failed").Inc()
		return nil, err
	}
	if reconciled {
		monitoring.ReconcileCounter.WithLabelValues("purged").Inc()
		logger.Log.Info("answers reopened after question type change",
			zap.String("postId", post.ID),
			zap.String("questionType", string(post.QuestionType)))
	}

	return post, nil
}

func (s *PostService) ListOwn(author *model.User) ([]model.Post, error) {
	return s.PostRepo.ListByAuthor(author.ID)
}

func (s *PostService) canEditPost(actor *model.User, post *model.Post) bool {
	if actor.IsAdmin() {
		return true
	}
	if post.AuthorID != nil && *post.AuthorID == actor.ID {
		return true
	}
	return actor.IsTeacher()
}

func (s *PostService) DeletePost(actor *model.User, id string) error {
	post, err := s.GetPost(id)
	if err != nil {
		return err
	}
	if !s.canEditPost(actor, post) {
		return model.ErrPermissionDenied
	}
	return s.PostRepo.Delete(id)
}

type QuestionOptionRequest struct {
	Title   string `json:"title" binding:"required"`
	IsRight *bool  `json:"isRight"`
}

func (s *PostService) AddOption(actor *model.User, postID string, req QuestionOptionRequest) (*model.QuestionOption, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if !s.canEditPost(actor, post) {
		return nil, model.ErrPermissionDenied
	}

	option := &model.QuestionOption{
		PostID:  post.ID,
		Title:   req.Title,
		IsRight: req.IsRight,
	}
	if err := option.Validate(post); err != nil {
		return nil, err
	}

	if err := s.PostRepo.CreateOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *PostService) UpdateOption(actor *model.User, optionID uint, req QuestionOptionRequest) (*model.QuestionOption, error) {
	option, err := s.PostRepo.FindOptionByID(optionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	if !s.canEditPost(actor, option.Post) {
		return nil, model.ErrPermissionDenied
	}

	option.Title = req.Title
	option.IsRight = req.IsRight
	if err := option.Validate(option.Post); err != nil {
		return nil, err
	}

	if err := s.PostRepo.SaveOption(option); err != nil {
		return nil, err
	}
	return option, nil
}

func (s *PostService) ListOptions(postID string) ([]model.QuestionOption, error) {
	return s.PostRepo.ListOptions(postID)
}

func (s *PostService) DeleteOption(actor *model.User, optionID uint) error {
	option, err := s.PostRepo.FindOptionByID(optionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrPostNotFound
	}
	if err != nil {
		return err
	}
	if !s.canEditPost(actor, option.Post) {
		return model.ErrPermissionDenied
	}
	return s.PostRepo.DeleteOption(optionID)
}

// AttachToCourse links a post into a course, creating the task students
// answer. Publishing into a course follows the course's publish policy.
func (s *PostService) AttachToCourse(actor *model.User, postID, courseID string) (*model.CoursePost, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}

	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	membership, err := s.CourseRepo.MembershipFor(actor, course)
	if err != nil {
		return nil, err
	}
	if !course.CanUserPublish(actor, membership) {
		return nil, model.ErrPermissionDenied
	}

	link := &model.CoursePost{
		PostID:   post.ID,
		CourseID: course.ID,
	}
	if err := s.CourseRepo.CreateCoursePost(link); err != nil {
		return nil, err
	}
	link.Post = post
	link.Course = course
	return link, nil
}

func (s *PostService) GetTask(taskID uint) (*model.CoursePost, error) {
	task, err := s.CourseRepo.FindTaskByID(taskID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTaskNotFound
	}
	return task, err
}

func (s *PostService) ListCourseTasks(courseID string) ([]model.CoursePost, error) {
	return s.CourseRepo.ListTasks(courseID)
}
